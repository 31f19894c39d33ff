package puzzle

import (
	"strings"
	"testing"
)

// The larger TEST example: outputs 999, 1000, or 1001 for input below,
// equal to, or above 8.
const day5Compare = `3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,
1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,
999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99`

func TestDiagnosticEqualsPositionMode(t *testing.T) {
	program := "3,9,8,9,10,9,4,9,99,-1,8"

	got, err := diagnostic(program, 8)
	if err != nil {
		t.Fatalf("diagnostic(8): %v", err)
	}
	if got != 1 {
		t.Errorf("diagnostic(8) = %d, want 1", got)
	}

	got, err = diagnostic(program, 7)
	if err != nil {
		t.Fatalf("diagnostic(7): %v", err)
	}
	if got != 0 {
		t.Errorf("diagnostic(7) = %d, want 0", got)
	}
}

func TestDiagnosticJumpImmediateMode(t *testing.T) {
	program := "3,3,1105,-1,9,1101,0,0,12,4,12,99,1"

	got, err := diagnostic(program, 0)
	if err != nil {
		t.Fatalf("diagnostic(0): %v", err)
	}
	if got != 0 {
		t.Errorf("diagnostic(0) = %d, want 0", got)
	}

	got, err = diagnostic(program, 12345)
	if err != nil {
		t.Fatalf("diagnostic(12345): %v", err)
	}
	if got != 1 {
		t.Errorf("diagnostic(12345) = %d, want 1", got)
	}
}

func TestDiagnosticCompareProgram(t *testing.T) {
	program := strings.ReplaceAll(day5Compare, "\n", "")
	tests := []struct {
		input int64
		want  int64
	}{
		{7, 999},
		{8, 1000},
		{9, 1001},
	}
	for _, tc := range tests {
		got, err := diagnostic(program, tc.input)
		if err != nil {
			t.Fatalf("diagnostic(%d): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("diagnostic(%d) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestDiagnosticRejectsFailedSelfTest(t *testing.T) {
	// Outputs 7 then 0: the non-zero self-test output must be reported.
	if _, err := diagnostic("104,7,104,0,99", 1); err == nil {
		t.Error("diagnostic should reject a failed self-test")
	}
}
