package dimacs

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cdclgo/solver/internal/sat"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAssumptionBatches(t *testing.T) {
	path := writeFile(t, "batches.asm", "c a comment\na 1 -2 0\n\na -1 0\n")

	got, err := LoadAssumptionBatches(path, false)
	if err != nil {
		t.Fatalf("LoadAssumptionBatches: %v", err)
	}

	want := [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.NegativeLiteral(0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("batches mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAssumptionBatches_Gzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batches.asm.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("a 1 0\n")); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := LoadAssumptionBatches(path, true)
	if err != nil {
		t.Fatalf("LoadAssumptionBatches: %v", err)
	}
	want := [][]sat.Literal{{sat.PositiveLiteral(0)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("batches mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAssumptionBatches_RejectsNonAssumptionLine(t *testing.T) {
	path := writeFile(t, "bad.asm", "p cnf 1 1\n")

	if _, err := LoadAssumptionBatches(path, false); err == nil {
		t.Errorf("LoadAssumptionBatches did not reject a non-assumption line")
	}
}

func TestLoadAssumptionBatches_MissingFile(t *testing.T) {
	if _, err := LoadAssumptionBatches(filepath.Join(t.TempDir(), "missing.asm"), false); err == nil {
		t.Errorf("LoadAssumptionBatches did not report an error for a missing file")
	}
}
