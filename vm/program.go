package vm

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Program: parsed Intcode source
// ---------------------------------------------------------------------------

// Program is an ordered sequence of integers, the initial memory contents of
// a machine. Machines load a copy, so one Program can seed any number of
// independent machines.
type Program []int64

// ParseProgram parses comma-separated integers. Whitespace around values and
// a trailing newline are tolerated.
func ParseProgram(text string) (Program, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("parse program: empty input")
	}
	fields := strings.Split(text, ",")
	prog := make(Program, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse program: value %d: %w", i, err)
		}
		prog[i] = v
	}
	return prog, nil
}

// NewMachine creates a machine over a copy of the program.
func (p Program) NewMachine(in, out *Channel) *Machine {
	return NewMachine(p, in, out)
}
