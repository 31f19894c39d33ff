package runner

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/puzzle"
)

var log = commonlog.GetLogger("intcode.runner")

// Runner drives the puzzle solvers described by a manifest and records
// results in the store.
type Runner struct {
	manifest *Manifest
	store    *Store
}

// New opens a runner over the given manifest and its database.
func New(manifest *Manifest) (*Runner, error) {
	store, err := OpenStore(manifest.DatabasePath())
	if err != nil {
		return nil, err
	}
	return &Runner{manifest: manifest, store: store}, nil
}

// Close releases the record store.
func (r *Runner) Close() error {
	return r.store.Close()
}

// Store exposes the record store for history queries.
func (r *Runner) Store() *Store {
	return r.store
}

// RunPuzzle executes one manifest entry: load its input, solve, verify
// against the expected answer if one is declared, and persist the record.
func (r *Runner) RunPuzzle(ps PuzzleSpec) (*RunRecord, error) {
	path := r.manifest.InputPath(ps)
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("day %d part %d: %w", ps.Day, ps.Part, err)
	}

	rec := NewRunRecord(ps.Year, ps.Day, ps.Part)
	log.Infof("running day %d part %d", ps.Day, ps.Part)

	answer, err := puzzle.Solve(ps.Day, ps.Part, string(input))
	if err != nil {
		return nil, fmt.Errorf("day %d part %d: %w", ps.Day, ps.Part, err)
	}
	rec.Finish(answer, ps.Expected)

	switch rec.Status {
	case StatusPass:
		log.Infof("day %d part %d: %d (pass, %s)", ps.Day, ps.Part, answer, rec.Elapsed)
	case StatusFail:
		log.Errorf("day %d part %d: got %d, expected %d", ps.Day, ps.Part, answer, *ps.Expected)
	default:
		log.Infof("day %d part %d: %d (unverified, %s)", ps.Day, ps.Part, answer, rec.Elapsed)
	}

	if err := r.store.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RunAll executes every manifest entry in order. It keeps going past failed
// verifications but stops at the first solver or I/O error, returning the
// records completed so far.
func (r *Runner) RunAll() ([]*RunRecord, error) {
	records := make([]*RunRecord, 0, len(r.manifest.Puzzles))
	for _, ps := range r.manifest.Puzzles {
		rec, err := r.RunPuzzle(ps)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}
