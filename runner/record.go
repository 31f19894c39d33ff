package runner

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Run records
// ---------------------------------------------------------------------------

// RunStatus classifies the outcome of one puzzle run.
type RunStatus string

const (
	StatusPass       RunStatus = "pass"       // answer matched the expected value
	StatusFail       RunStatus = "fail"       // answer differed from the expected value
	StatusUnverified RunStatus = "unverified" // no expected value to check against
)

// RunRecord is the persisted result of one puzzle run.
type RunRecord struct {
	ID        string        `cbor:"id"`
	Year      int           `cbor:"year"`
	Day       int           `cbor:"day"`
	Part      int           `cbor:"part"`
	Answer    int64         `cbor:"answer"`
	Expected  *int64        `cbor:"expected,omitempty"`
	Status    RunStatus     `cbor:"status"`
	Elapsed   time.Duration `cbor:"elapsed"`
	StartedAt time.Time     `cbor:"started-at"`
}

// NewRunRecord starts a record for a run beginning now.
func NewRunRecord(year, day, part int) *RunRecord {
	return &RunRecord{
		ID:        uuid.NewString(),
		Year:      year,
		Day:       day,
		Part:      part,
		StartedAt: time.Now().UTC(),
	}
}

// Finish fills in the answer, elapsed time, and verification status.
func (r *RunRecord) Finish(answer int64, expected *int64) {
	r.Answer = answer
	r.Expected = expected
	r.Elapsed = time.Since(r.StartedAt)
	switch {
	case expected == nil:
		r.Status = StatusUnverified
	case answer == *expected:
		r.Status = StatusPass
	default:
		r.Status = StatusFail
	}
}

// ---------------------------------------------------------------------------
// CBOR encoding
// ---------------------------------------------------------------------------

// cborEncMode uses canonical options for deterministic encoding of stored
// records.
var cborEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("runner: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalRecord serializes a RunRecord to CBOR bytes.
func MarshalRecord(r *RunRecord) ([]byte, error) {
	return cborEncMode.Marshal(r)
}

// UnmarshalRecord deserializes a RunRecord from CBOR bytes.
func UnmarshalRecord(data []byte) (*RunRecord, error) {
	var r RunRecord
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("runner: unmarshal record: %w", err)
	}
	return &r, nil
}
