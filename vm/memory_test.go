package vm

import (
	"errors"
	"testing"
)

func TestMemoryReadWithinProgram(t *testing.T) {
	m := NewMemory([]int64{10, 20, 30})
	v, err := m.Read(1)
	if err != nil {
		t.Fatalf("Read(1): %v", err)
	}
	if v != 20 {
		t.Errorf("Read(1) = %d, want 20", v)
	}
}

func TestMemoryImplicitZeroBeyondEnd(t *testing.T) {
	m := NewMemory([]int64{1, 2, 3})
	v, err := m.Read(1000)
	if err != nil {
		t.Fatalf("Read(1000): %v", err)
	}
	if v != 0 {
		t.Errorf("Read(1000) = %d, want 0", v)
	}
	if m.Len() < 1001 {
		t.Errorf("Len() = %d after Read(1000), want >= 1001", m.Len())
	}
}

func TestMemoryWriteExtends(t *testing.T) {
	m := NewMemory(nil)
	if err := m.Write(50, 7); err != nil {
		t.Fatalf("Write(50): %v", err)
	}
	v, err := m.Read(50)
	if err != nil {
		t.Fatalf("Read(50): %v", err)
	}
	if v != 7 {
		t.Errorf("Read(50) = %d, want 7", v)
	}
	// Cells between the old end and the write stay zero.
	v, _ = m.Read(49)
	if v != 0 {
		t.Errorf("Read(49) = %d, want 0", v)
	}
}

func TestMemoryNegativeAddress(t *testing.T) {
	m := NewMemory([]int64{1})
	if _, err := m.Read(-1); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("Read(-1) err = %v, want ErrInvalidAddress", err)
	}
	if err := m.Write(-5, 1); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("Write(-5) err = %v, want ErrInvalidAddress", err)
	}
}

func TestMemoryLoadCopies(t *testing.T) {
	prog := []int64{1, 2, 3}
	m := NewMemory(prog)
	m.Write(0, 99)
	if prog[0] != 1 {
		t.Error("writing memory mutated the source program")
	}
}

func TestMemorySnapshotIsCopy(t *testing.T) {
	m := NewMemory([]int64{5, 6})
	snap := m.Snapshot()
	snap[0] = 0
	v, _ := m.Read(0)
	if v != 5 {
		t.Error("mutating a snapshot changed memory")
	}
}
