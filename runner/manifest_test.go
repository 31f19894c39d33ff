package runner

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `
inputs = "in"
database = "records.db"

[[puzzle]]
year = 2019
day = 2
part = 1
expected = 4714701

[[puzzle]]
year = 2019
day = 9
part = 1
input = "boost.txt"
`

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Inputs != "in" || m.Database != "records.db" {
		t.Errorf("inputs/database = %q/%q", m.Inputs, m.Database)
	}
	if len(m.Puzzles) != 2 {
		t.Fatalf("puzzles = %d, want 2", len(m.Puzzles))
	}

	first := m.Puzzles[0]
	if first.Expected == nil || *first.Expected != 4714701 {
		t.Errorf("first expected = %v, want 4714701", first.Expected)
	}
	second := m.Puzzles[1]
	if second.Expected != nil {
		t.Error("second expected should be nil")
	}

	if got, want := m.InputPath(first), filepath.Join(m.Dir, "in", "day2.txt"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
	if got, want := m.InputPath(second), filepath.Join(m.Dir, "in", "boost.txt"); got != want {
		t.Errorf("InputPath override = %q, want %q", got, want)
	}
	if got, want := m.DatabasePath(), filepath.Join(m.Dir, "records.db"); got != want {
		t.Errorf("DatabasePath = %q, want %q", got, want)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Inputs != "inputs" {
		t.Errorf("default inputs = %q, want %q", m.Inputs, "inputs")
	}
	if m.Database != "intcode.db" {
		t.Errorf("default database = %q, want %q", m.Database, "intcode.db")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if m == nil {
		t.Fatal("FindManifest found nothing")
	}
	if len(m.Puzzles) != 2 {
		t.Errorf("puzzles = %d, want 2", len(m.Puzzles))
	}
}

func TestFindManifestMissing(t *testing.T) {
	m, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if m != nil {
		t.Error("FindManifest should return nil when nothing is found")
	}
}
