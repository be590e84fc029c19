// Package sample provides the Sampler and ModelWriter collaborators that
// draw sampled parameter assignments from a distribution table and write
// them into a deterministic model.
//
// Parsing a full probabilistic modeling language and its substitution
// conventions is out of scope here. What's here is a deliberately small
// stand-in — a flat table of independent uniform/discrete variables and
// literal {{name}} substitution — sufficient to make the CLI runnable
// end-to-end without reimplementing a whole modeling-language frontend.
package sample

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"
)

type variable struct {
	name    string
	uniform bool
	lo, hi  float64
	choices []float64
}

// TableSampler draws one assignment per call from a fixed table of
// independent variables. It is safe for concurrent use by multiple
// worker goroutines.
type TableSampler struct {
	mu   sync.Mutex
	vars []variable
	rng  *rand.Rand
}

// LoadTable parses a distribution table file, one variable per line:
//
//	name uniform <lo> <hi>
//	name discrete <v1> <v2> ...
//
// Blank lines and lines starting with '#' are ignored.
func LoadTable(path string, seed int64) (*TableSampler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample: opening distribution table %q: %w", path, err)
	}
	defer f.Close()

	var vars []variable
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseVariable(line)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sample: reading distribution table %q: %w", path, err)
	}

	return &TableSampler{vars: vars, rng: rand.New(rand.NewSource(seed))}, nil
}

func parseVariable(line string) (variable, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return variable{}, fmt.Errorf("sample: malformed distribution line: %q", line)
	}

	v := variable{name: fields[0]}
	switch strings.ToLower(fields[1]) {
	case "uniform":
		if len(fields) != 4 {
			return variable{}, fmt.Errorf("sample: uniform %q wants <lo> <hi>", v.name)
		}
		lo, errLo := strconv.ParseFloat(fields[2], 64)
		hi, errHi := strconv.ParseFloat(fields[3], 64)
		if errLo != nil || errHi != nil || lo >= hi {
			return variable{}, fmt.Errorf("sample: invalid uniform bounds for %q", v.name)
		}
		v.uniform = true
		v.lo, v.hi = lo, hi
	case "discrete":
		for _, f := range fields[2:] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return variable{}, fmt.Errorf("sample: invalid discrete value %q for %q", f, v.name)
			}
			v.choices = append(v.choices, c)
		}
		if len(v.choices) == 0 {
			return variable{}, fmt.Errorf("sample: discrete %q has no values", v.name)
		}
	default:
		return variable{}, fmt.Errorf("sample: unknown distribution kind %q for %q", fields[1], v.name)
	}
	return v, nil
}

// Sample draws one value per configured variable and renders each to
// fixed-precision text. Equality of two samples is exact on this text,
// which is what the cache keys off of.
func (s *TableSampler) Sample() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.vars))
	for i, v := range s.vars {
		var val float64
		if v.uniform {
			val = v.lo + s.rng.Float64()*(v.hi-v.lo)
		} else {
			val = v.choices[s.rng.Intn(len(v.choices))]
		}
		out[i] = strconv.FormatFloat(val, 'f', 6, 64)
	}
	return out, nil
}

// Names returns the variable names in declaration order, matching the
// order Sample returns their values in.
func (s *TableSampler) Names() []string {
	names := make([]string, len(s.vars))
	for i, v := range s.vars {
		names[i] = v.name
	}
	return names
}
