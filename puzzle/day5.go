package puzzle

import (
	"fmt"

	"github.com/chazu/intcode/vm"
)

// Day 5: Sunny with a Chance of Asteroids.
//
// The TEST program takes a system ID as its single input, runs a series of
// self-tests that each output 0 on success, and finishes by outputting the
// diagnostic code. Part 1 tests system 1 (air conditioner), part 2 system 5
// (thermal radiator controller).

func init() {
	register(5, 1, Day5Part1)
	register(5, 2, Day5Part2)
}

func Day5Part1(input string) (int64, error) {
	return diagnostic(input, 1)
}

func Day5Part2(input string) (int64, error) {
	return diagnostic(input, 5)
}

// diagnostic runs the TEST program with the given system ID and returns its
// diagnostic code (the final output). Any non-zero output before the last
// one is a failed self-test.
func diagnostic(input string, systemID int64) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	m := prog.NewMachine(vm.NewChannel(systemID), vm.NewChannel())
	if err := m.Run(); err != nil {
		return 0, err
	}
	outputs := m.Output().Drain()
	if len(outputs) == 0 {
		return 0, fmt.Errorf("day 5: program produced no diagnostic code")
	}
	for i, v := range outputs[:len(outputs)-1] {
		if v != 0 {
			return 0, fmt.Errorf("day 5: self-test %d failed with %d", i, v)
		}
	}
	return outputs[len(outputs)-1], nil
}
