package sample

import (
	"math/rand"
	"os"
	"strings"

	"statsmc/errs"
)

// LoadModel splits a combined probabilistic-model file into its random
// variable table and its deterministic-model template, returning a
// Sampler/ModelWriter pair built from them.
//
// Lines of the form "RV <name> uniform <lo> <hi>" or
// "RV <name> discrete <v1> <v2> ..." declare a sampled parameter; every
// other line is template text containing the {{name}} placeholders those
// parameters substitute. This single-file convention is a deliberately
// small stand-in for a real distribution-definition language and model
// templating pipeline, kept just complex enough to make the CLI runnable
// end-to-end.
func LoadModel(path string, seed int64, outDir string) (*TableSampler, *TemplateWriter, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &errs.CannotOpenFile{Path: path, Err: err}
	}

	var vars []variable
	var templateLines []string
	for _, line := range strings.Split(string(contents), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "RV ") {
			v, err := parseVariable(strings.TrimSpace(strings.TrimPrefix(trimmed, "RV ")))
			if err != nil {
				return nil, nil, err
			}
			vars = append(vars, v)
			continue
		}
		templateLines = append(templateLines, line)
	}

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.name
	}

	sampler := &TableSampler{vars: vars, rng: rand.New(rand.NewSource(seed))}
	writer := &TemplateWriter{
		template: strings.Join(templateLines, "\n"),
		names:    names,
		dir:      outDir,
	}
	return sampler, writer, nil
}
