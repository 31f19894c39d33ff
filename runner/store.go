package runner

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrRecordNotFound indicates no run record matches the query.
var ErrRecordNotFound = errors.New("run record not found")

// Store persists run records in a sqlite database. Record payloads are
// stored as CBOR blobs; the indexed columns exist only for querying.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenStore opens (creating if needed) the run-record database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		status TEXT NOT NULL,
		started_at_ns INTEGER NOT NULL,
		record BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists a run record.
func (s *Store) Save(r *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := MarshalRecord(r)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO runs (id, year, day, part, status, started_at_ns, record)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Year, r.Day, r.Part, string(r.Status), r.StartedAt.UnixNano(), blob,
	)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Latest returns the most recent record for a puzzle, or ErrRecordNotFound.
func (s *Store) Latest(year, day, part int) (*RunRecord, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT record FROM runs WHERE year = ? AND day = ? AND part = ?
		 ORDER BY started_at_ns DESC LIMIT 1`,
		year, day, part,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading record: %w", err)
	}
	return UnmarshalRecord(blob)
}

// History returns every record for a puzzle, newest first.
func (s *Store) History(year, day, part int) ([]*RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT record FROM runs WHERE year = ? AND day = ? AND part = ?
		 ORDER BY started_at_ns DESC`,
		year, day, part,
	)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r, err := UnmarshalRecord(blob)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
