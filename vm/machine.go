package vm

import (
	"sync/atomic"
)

// ---------------------------------------------------------------------------
// Machine: one memory + execution state + I/O channels
// ---------------------------------------------------------------------------

// Machine is a single Intcode computer: one memory pre-loaded from a
// program, one execution state, one input channel, and one output channel.
// Machines never share memory or execution state; channels are the only
// point of cross-machine interaction.
//
// A machine is single-threaded internally. Run (or Go) drives it on one
// goroutine; Halted may be read from any goroutine.
type Machine struct {
	mem     *Memory
	in      *Channel
	out     *Channel
	ip      int64
	relBase int64
	halted  atomic.Bool
}

// NewMachine creates a machine over a copy of program. Channels may be nil
// only if the program performs no I/O.
func NewMachine(program []int64, in, out *Channel) *Machine {
	return &Machine{
		mem: NewMemory(program),
		in:  in,
		out: out,
	}
}

// Memory exposes the machine's memory for loading (noun/verb patching) and
// for reading results after halt. Access while Run is in flight races the
// engine and is the caller's bug.
func (m *Machine) Memory() *Memory {
	return m.mem
}

// Input returns the machine's input channel.
func (m *Machine) Input() *Channel {
	return m.in
}

// Output returns the machine's output channel.
func (m *Machine) Output() *Channel {
	return m.out
}

// Halted reports whether the machine has executed HALT. It stays false after
// a fault.
func (m *Machine) Halted() bool {
	return m.halted.Load()
}

// Run executes until HALT or a fault. It returns nil on halt; on a fault it
// returns the *Fault with instruction pointer and opcode context, leaving
// execution state as of the faulting fetch. An INPUT instruction with no
// producer ever supplying a value blocks forever (caller topology error, not
// a fault).
func (m *Machine) Run() error {
	for !m.halted.Load() {
		if err := m.step(); err != nil {
			return err
		}
	}
	return nil
}

// Go schedules Run on its own goroutine and returns a buffered channel that
// receives Run's result exactly once.
func (m *Machine) Go() <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- m.Run()
	}()
	return done
}

// step fetches, decodes, and executes one instruction.
func (m *Machine) step() error {
	raw, err := m.mem.Read(m.ip)
	if err != nil {
		return err.(*Fault).at(m.ip, 0)
	}
	in, err := Decode(raw)
	if err != nil {
		return err.(*Fault).at(m.ip, raw)
	}

	switch in.Op {
	case OpAdd:
		a, b, err := m.readPair(in)
		if err != nil {
			return err
		}
		return m.store(in, 3, a+b)

	case OpMul:
		a, b, err := m.readPair(in)
		if err != nil {
			return err
		}
		return m.store(in, 3, a*b)

	case OpInput:
		addr, err := m.writeAddr(in, 1)
		if err != nil {
			return err
		}
		if err := m.mem.Write(addr, m.in.Take()); err != nil {
			return err.(*Fault).at(m.ip, in.Raw)
		}
		m.ip += in.Op.Width()

	case OpOutput:
		a, err := m.readParam(in, 1)
		if err != nil {
			return err
		}
		m.out.Put(a)
		m.ip += in.Op.Width()

	case OpJumpIfTrue:
		return m.jump(in, func(cond int64) bool { return cond != 0 })

	case OpJumpIfFalse:
		return m.jump(in, func(cond int64) bool { return cond == 0 })

	case OpLessThan:
		a, b, err := m.readPair(in)
		if err != nil {
			return err
		}
		return m.store(in, 3, boolToInt(a < b))

	case OpEquals:
		a, b, err := m.readPair(in)
		if err != nil {
			return err
		}
		return m.store(in, 3, boolToInt(a == b))

	case OpAdjustRelBase:
		a, err := m.readParam(in, 1)
		if err != nil {
			return err
		}
		m.relBase += a
		m.ip += in.Op.Width()

	case OpHalt:
		m.halted.Store(true)
	}
	return nil
}

// jump evaluates a two-parameter jump: ip becomes the target when taken
// applied to the condition is true, otherwise advances past the instruction.
func (m *Machine) jump(in Instruction, taken func(int64) bool) error {
	cond, err := m.readParam(in, 1)
	if err != nil {
		return err
	}
	target, err := m.readParam(in, 2)
	if err != nil {
		return err
	}
	if taken(cond) {
		m.ip = target
	} else {
		m.ip += in.Op.Width()
	}
	return nil
}

// store writes value through parameter i and advances past the instruction.
func (m *Machine) store(in Instruction, i int, value int64) error {
	addr, err := m.writeAddr(in, i)
	if err != nil {
		return err
	}
	if err := m.mem.Write(addr, value); err != nil {
		return err.(*Fault).at(m.ip, in.Raw)
	}
	m.ip += in.Op.Width()
	return nil
}

// readPair resolves the two read parameters of an arithmetic or compare
// instruction.
func (m *Machine) readPair(in Instruction) (int64, int64, error) {
	a, err := m.readParam(in, 1)
	if err != nil {
		return 0, 0, err
	}
	b, err := m.readParam(in, 2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// readParam resolves read parameter i of the current instruction.
func (m *Machine) readParam(in Instruction, i int) (int64, error) {
	mode, err := in.Mode(i)
	if err != nil {
		return 0, err.(*Fault).at(m.ip, in.Raw)
	}
	raw, err := m.mem.Read(m.ip + int64(i))
	if err != nil {
		return 0, err.(*Fault).at(m.ip, in.Raw)
	}
	var value int64
	switch mode {
	case ModeImmediate:
		return raw, nil
	case ModePosition:
		value, err = m.mem.Read(raw)
	case ModeRelative:
		value, err = m.mem.Read(m.relBase + raw)
	}
	if err != nil {
		return 0, err.(*Fault).at(m.ip, in.Raw)
	}
	return value, nil
}

// writeAddr resolves write parameter i of the current instruction to an
// effective address. Immediate mode is invalid for write targets.
func (m *Machine) writeAddr(in Instruction, i int) (int64, error) {
	mode, err := in.Mode(i)
	if err != nil {
		return 0, err.(*Fault).at(m.ip, in.Raw)
	}
	raw, err := m.mem.Read(m.ip + int64(i))
	if err != nil {
		return 0, err.(*Fault).at(m.ip, in.Raw)
	}
	switch mode {
	case ModePosition:
		return raw, nil
	case ModeRelative:
		return m.relBase + raw, nil
	}
	return 0, newFault(ErrInvalidWriteMode, int64(mode)).at(m.ip, in.Raw)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
