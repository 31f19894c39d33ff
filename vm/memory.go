package vm

// ---------------------------------------------------------------------------
// Memory: growable zero-filled store
// ---------------------------------------------------------------------------

// Memory is the store of a single Intcode machine. Addresses are
// non-negative; the first access past the current end extends the backing
// array with zeros, so untouched addresses always read as zero. A negative
// address is an ErrInvalidAddress fault.
//
// Memory is owned by exactly one machine and is not safe for concurrent use.
type Memory struct {
	cells []int64
}

// NewMemory creates a memory pre-loaded with a copy of program at addresses
// 0..len(program)-1.
func NewMemory(program []int64) *Memory {
	cells := make([]int64, len(program))
	copy(cells, program)
	return &Memory{cells: cells}
}

// Read returns the value at addr, extending the store if addr is past the
// current end.
func (m *Memory) Read(addr int64) (int64, error) {
	if addr < 0 {
		return 0, newFault(ErrInvalidAddress, addr)
	}
	m.grow(addr + 1)
	return m.cells[addr], nil
}

// Write stores value at addr, extending the store if addr is past the
// current end.
func (m *Memory) Write(addr, value int64) error {
	if addr < 0 {
		return newFault(ErrInvalidAddress, addr)
	}
	m.grow(addr + 1)
	m.cells[addr] = value
	return nil
}

// Len returns the number of addressable cells touched so far.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Snapshot returns a copy of the touched cells. Mutating the returned slice
// does not affect the machine.
func (m *Memory) Snapshot() []int64 {
	out := make([]int64, len(m.cells))
	copy(out, m.cells)
	return out
}

// grow extends the store to at least n cells. Capacity at least doubles so
// sequential extension is amortized O(1).
func (m *Memory) grow(n int64) {
	if n <= int64(len(m.cells)) {
		return
	}
	if n <= int64(cap(m.cells)) {
		m.cells = m.cells[:n]
		return
	}
	newCap := 2 * cap(m.cells)
	if int64(newCap) < n {
		newCap = int(n)
	}
	cells := make([]int64, n, newCap)
	copy(cells, m.cells)
	m.cells = cells
}
