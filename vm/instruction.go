package vm

// ---------------------------------------------------------------------------
// Opcode definitions
// ---------------------------------------------------------------------------

// Opcode is the low two decimal digits of an instruction value.
type Opcode int64

const (
	OpAdd           Opcode = 1  // dest = a + b
	OpMul           Opcode = 2  // dest = a * b
	OpInput         Opcode = 3  // dest = blocking take from input channel
	OpOutput        Opcode = 4  // put a onto output channel
	OpJumpIfTrue    Opcode = 5  // if a != 0 then ip = b
	OpJumpIfFalse   Opcode = 6  // if a == 0 then ip = b
	OpLessThan      Opcode = 7  // dest = 1 if a < b else 0
	OpEquals        Opcode = 8  // dest = 1 if a == b else 0
	OpAdjustRelBase Opcode = 9  // relative base += a
	OpHalt          Opcode = 99 // stop
)

var opcodeNames = map[Opcode]string{
	OpAdd:           "ADD",
	OpMul:           "MUL",
	OpInput:         "INPUT",
	OpOutput:        "OUTPUT",
	OpJumpIfTrue:    "JUMP-IF-TRUE",
	OpJumpIfFalse:   "JUMP-IF-FALSE",
	OpLessThan:      "LESS-THAN",
	OpEquals:        "EQUALS",
	OpAdjustRelBase: "ADJUST-RELATIVE-BASE",
	OpHalt:          "HALT",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// Width returns the instruction width in cells, opcode included. For jumps
// this is the advance when the jump is not taken.
func (op Opcode) Width() int64 {
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 4
	case OpInput, OpOutput, OpAdjustRelBase:
		return 2
	case OpJumpIfTrue, OpJumpIfFalse:
		return 3
	case OpHalt:
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// Parameter modes
// ---------------------------------------------------------------------------

// Mode is the addressing interpretation of one instruction parameter.
type Mode int64

const (
	ModePosition  Mode = 0 // operand is an address
	ModeImmediate Mode = 1 // operand is the value; invalid as a write target
	ModeRelative  Mode = 2 // operand is an offset from the relative base
)

// ---------------------------------------------------------------------------
// Decode
// ---------------------------------------------------------------------------

// Instruction is one decoded instruction: the opcode plus the addressing
// mode digit of each of its (up to three) parameters.
type Instruction struct {
	Raw   int64
	Op    Opcode
	modes [3]int64
}

// Decode splits an instruction value into opcode and mode digits. The opcode
// is validated here; mode digits are validated lazily when the parameter is
// resolved, so junk digits above unused parameters never fault.
func Decode(value int64) (Instruction, error) {
	in := Instruction{
		Raw: value,
		Op:  Opcode(value % 100),
	}
	if _, ok := opcodeNames[in.Op]; !ok {
		return in, newFault(ErrInvalidOpcode, int64(in.Op))
	}
	digits := value / 100
	for i := 0; i < 3; i++ {
		in.modes[i] = digits % 10
		digits /= 10
	}
	return in, nil
}

// Mode returns the validated mode of parameter i (1-indexed after the
// opcode). A digit outside {0,1,2} is an ErrUnknownParameterMode fault.
func (in Instruction) Mode(i int) (Mode, error) {
	digit := in.modes[i-1]
	switch Mode(digit) {
	case ModePosition, ModeImmediate, ModeRelative:
		return Mode(digit), nil
	}
	return 0, newFault(ErrUnknownParameterMode, digit)
}
