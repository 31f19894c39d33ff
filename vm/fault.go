package vm

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Fault taxonomy
// ---------------------------------------------------------------------------

// Sentinel errors for the four fatal fault classes. Every fault returned by
// the engine wraps exactly one of these, so callers can classify with
// errors.Is without inspecting the Fault struct.
var (
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidOpcode        = errors.New("invalid opcode")
	ErrInvalidWriteMode     = errors.New("invalid write mode")
	ErrUnknownParameterMode = errors.New("unknown parameter mode")
)

// Fault is a fatal execution error. It is never recovered internally: the
// faulting machine's Run returns it and the machine stays un-halted with its
// state as of the faulting fetch.
type Fault struct {
	Err         error // one of the sentinel fault errors above
	IP          int64 // instruction pointer at the fault, -1 outside execution
	Instruction int64 // raw instruction value at IP, 0 outside execution
	Detail      int64 // offending address, opcode, or mode digit
}

func (f *Fault) Error() string {
	if f.IP < 0 {
		return fmt.Sprintf("%s %d", f.Err, f.Detail)
	}
	return fmt.Sprintf("%s %d at ip=%d (instruction %d)", f.Err, f.Detail, f.IP, f.Instruction)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// newFault builds a fault with no execution context. The engine fills IP and
// Instruction via at before propagating.
func newFault(sentinel error, detail int64) *Fault {
	return &Fault{Err: sentinel, IP: -1, Detail: detail}
}

// at attaches execution context to a fault raised below the engine (memory
// access, parameter resolution). Context already present is kept.
func (f *Fault) at(ip, instruction int64) *Fault {
	if f.IP < 0 {
		f.IP = ip
		f.Instruction = instruction
	}
	return f
}
