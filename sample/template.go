package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TemplateWriter instantiates a deterministic model by substituting
// {{name}} placeholders in a template file with sampled assignment
// values, in the same order as a TableSampler's Names(). It implements
// oracle.ModelWriter.
type TemplateWriter struct {
	template string
	names    []string
	dir      string
}

// NewTemplateWriter reads the template file once and pairs it with the
// variable names, in sampled-value order, it should substitute.
func NewTemplateWriter(templatePath string, names []string, dir string) (*TemplateWriter, error) {
	contents, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("sample: reading model template %q: %w", templatePath, err)
	}
	return &TemplateWriter{template: string(contents), names: names, dir: dir}, nil
}

// Write substitutes assignment into the template and writes
// "numodel_<workerID>.drh" into dir, returning its path. Each worker owns
// its own path: no two workers share a model file.
func (w *TemplateWriter) Write(workerID int, assignment []string) (string, error) {
	if len(assignment) != len(w.names) {
		return "", fmt.Errorf("sample: assignment has %d values, template expects %d", len(assignment), len(w.names))
	}

	out := w.template
	for i, name := range w.names {
		out = strings.ReplaceAll(out, "{{"+name+"}}", assignment[i])
	}

	path := filepath.Join(w.dir, fmt.Sprintf("numodel_%d.drh", workerID))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("sample: writing model file %q: %w", path, err)
	}
	return path, nil
}
