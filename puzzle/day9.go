package puzzle

import (
	"fmt"

	"github.com/chazu/intcode/vm"
)

// Day 9: Sensor Boost.
//
// The BOOST program exercises relative mode and large-number arithmetic. In
// test mode (input 1) it reports any malfunctioning opcodes before the
// keycode; in sensor boost mode (input 2) it outputs the distress signal
// coordinates. A correct run produces exactly one output either way.

func init() {
	register(9, 1, Day9Part1)
	register(9, 2, Day9Part2)
}

func Day9Part1(input string) (int64, error) {
	return boost(input, 1)
}

func Day9Part2(input string) (int64, error) {
	return boost(input, 2)
}

func boost(input string, mode int64) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	m := prog.NewMachine(vm.NewChannel(mode), vm.NewChannel())
	if err := m.Run(); err != nil {
		return 0, err
	}
	outputs := m.Output().Drain()
	switch len(outputs) {
	case 0:
		return 0, fmt.Errorf("day 9: program produced no output")
	case 1:
		return outputs[0], nil
	}
	// Everything before the keycode names a malfunctioning opcode.
	return 0, fmt.Errorf("day 9: malfunctioning opcodes: %v", outputs[:len(outputs)-1])
}
