// Package runner executes the puzzle drivers against local input files,
// verifies answers against the intcode.toml manifest, and keeps a record of
// every run.
package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the runner looks for.
const ManifestName = "intcode.toml"

// Manifest is an intcode.toml configuration.
type Manifest struct {
	Inputs   string       `toml:"inputs"`   // directory of puzzle input files
	Database string       `toml:"database"` // sqlite run-record database
	Puzzles  []PuzzleSpec `toml:"puzzle"`

	// Dir is the directory containing the intcode.toml file (set at load
	// time).
	Dir string `toml:"-"`
}

// PuzzleSpec declares one puzzle the runner knows how to check.
type PuzzleSpec struct {
	Year     int    `toml:"year"`
	Day      int    `toml:"day"`
	Part     int    `toml:"part"`
	Expected *int64 `toml:"expected"` // nil: run but do not verify
	Input    string `toml:"input"`    // optional input filename override
}

// LoadManifest parses an intcode.toml file from the given directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Inputs == "" {
		m.Inputs = "inputs"
	}
	if m.Database == "" {
		m.Database = "intcode.db"
	}

	return &m, nil
}

// FindManifest walks up from startDir to find an intcode.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindManifest(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(path); err == nil {
			return LoadManifest(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// InputPath resolves the input file for a puzzle: the spec's override if
// given, otherwise day<N>.txt inside the inputs directory.
func (m *Manifest) InputPath(ps PuzzleSpec) string {
	name := ps.Input
	if name == "" {
		name = fmt.Sprintf("day%d.txt", ps.Day)
	}
	return filepath.Join(m.Dir, m.Inputs, name)
}

// DatabasePath resolves the run-record database location.
func (m *Manifest) DatabasePath() string {
	if filepath.IsAbs(m.Database) {
		return m.Database
	}
	return filepath.Join(m.Dir, m.Database)
}
