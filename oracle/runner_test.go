package oracle

import (
	"os"
	"path/filepath"
	"testing"

	"statsmc/trial"
)

func TestLargestExploredDepthWalksDownward(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "numodel_0_2_0.output"), "unsat")

	r := &Runner{cfg: Config{MaxDepth: 5}}
	depth, err := r.largestExploredDepth(dir, "numodel_0")
	if err != nil {
		t.Fatalf("largestExploredDepth: unexpected error: %v", err)
	}
	if depth != 2 {
		t.Errorf("depth = %d, want 2", depth)
	}
}

func TestLargestExploredDepthNoneFound(t *testing.T) {
	dir := t.TempDir()
	r := &Runner{cfg: Config{MaxDepth: 3}}
	if _, err := r.largestExploredDepth(dir, "numodel_0"); err == nil {
		t.Errorf("expected error when no output file exists")
	}
}

func TestLargestPathIndexPicksHighest(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "numodel_0_2_0.output"), "unsat")
	touch(t, filepath.Join(dir, "numodel_0_2_1.output"), "unsat")
	touch(t, filepath.Join(dir, "numodel_0_2_2.output"), "delta-sat")

	r := &Runner{cfg: Config{MaxDepth: 5}}
	path, err := r.largestPathIndex(dir, "numodel_0", 2)
	if err != nil {
		t.Fatalf("largestPathIndex: unexpected error: %v", err)
	}
	if filepath.Base(path) != "numodel_0_2_2.output" {
		t.Errorf("path = %q, want the i=2 file", path)
	}
}

func TestReadFirstLineVerdictUnsat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.output")
	touch(t, path, "unsat")

	v, err := readFirstLineVerdict(path)
	if err != nil {
		t.Fatalf("readFirstLineVerdict: unexpected error: %v", err)
	}
	if v != trial.Unsat {
		t.Errorf("verdict = %v, want Unsat", v)
	}
}

func TestReadFirstLineVerdictSat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.output")
	touch(t, path, "delta-sat within 0.001")

	v, err := readFirstLineVerdict(path)
	if err != nil {
		t.Fatalf("readFirstLineVerdict: unexpected error: %v", err)
	}
	if v != trial.Sat {
		t.Errorf("verdict = %v, want Sat", v)
	}
}

func TestReadFirstLineVerdictEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.output")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture file %q: %v", path, err)
	}

	if _, err := readFirstLineVerdict(path); err == nil {
		t.Errorf("expected error for empty output file")
	}
}

func TestReadVerdictEndToEndDiscovery(t *testing.T) {
	dir := t.TempDir()
	// k can go up to 5, but only depth 3 was actually explored.
	touch(t, filepath.Join(dir, "numodel_0_3_0.output"), "unsat")
	touch(t, filepath.Join(dir, "numodel_0_3_1.output"), "delta-sat")

	r := &Runner{cfg: Config{MaxDepth: 5}}
	v, err := r.readVerdict(dir, "numodel_0", "fake-command")
	if err != nil {
		t.Fatalf("readVerdict: unexpected error: %v", err)
	}
	if v != trial.Sat {
		t.Errorf("verdict = %v, want Sat (from the i=1 file, the largest index at the deepest explored depth)", v)
	}
}

func touch(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents+"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture file %q: %v", path, err)
	}
}
