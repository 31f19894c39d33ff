package puzzle

import (
	"fmt"

	"github.com/chazu/intcode/vm"
)

// Day 2: 1202 Program Alarm.
//
// Part 1 restores the "1202 program alarm" state (noun 12, verb 2) and
// reports memory[0] after halt. Part 2 searches for the noun/verb pair that
// makes the program output 19690720.

const day2Target = 19690720

func init() {
	register(2, 1, Day2Part1)
	register(2, 2, Day2Part2)
}

func Day2Part1(input string) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	return runNounVerb(prog, 12, 2)
}

func Day2Part2(input string) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	return searchNounVerb(prog, day2Target)
}

// runNounVerb patches addresses 1 and 2, runs to halt, and returns
// memory[0].
func runNounVerb(prog vm.Program, noun, verb int64) (int64, error) {
	m := prog.NewMachine(vm.NewChannel(), vm.NewChannel())
	mem := m.Memory()
	if err := mem.Write(1, noun); err != nil {
		return 0, err
	}
	if err := mem.Write(2, verb); err != nil {
		return 0, err
	}
	if err := m.Run(); err != nil {
		return 0, err
	}
	return mem.Read(0)
}

// searchNounVerb finds the first noun/verb pair in [0,99] whose run leaves
// target at memory[0], and returns 100*noun + verb.
func searchNounVerb(prog vm.Program, target int64) (int64, error) {
	for noun := int64(0); noun <= 99; noun++ {
		for verb := int64(0); verb <= 99; verb++ {
			result, err := runNounVerb(prog, noun, verb)
			if err != nil {
				// A bad pair can drive the program into a fault;
				// keep searching.
				continue
			}
			if result == target {
				return 100*noun + verb, nil
			}
		}
	}
	return 0, fmt.Errorf("day 2: no noun/verb pair produces %d", target)
}
