package puzzle

import (
	"github.com/chazu/intcode/vm"
)

// Day 7: Amplification Circuit.
//
// Five copies of the amplifier controller software run in a chain. Each
// amplifier first reads its phase setting, then repeatedly reads a signal
// and writes an amplified one. Part 1 wires the amplifiers in series with
// phases 0-4; part 2 loops amplifier E's output back to amplifier A with
// phases 5-9, and the amplifiers cycle signals until they all halt.

const amplifiers = 5

func init() {
	register(7, 1, Day7Part1)
	register(7, 2, Day7Part2)
}

func Day7Part1(input string) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	return maxSignal(prog, []int64{0, 1, 2, 3, 4}, false)
}

func Day7Part2(input string) (int64, error) {
	prog, err := vm.ParseProgram(input)
	if err != nil {
		return 0, err
	}
	return maxSignal(prog, []int64{5, 6, 7, 8, 9}, true)
}

// maxSignal tries every ordering of phases over a fresh amplifier chain and
// returns the highest terminal signal. The first permutation seeds the
// maximum, so an all-negative signal set is handled correctly.
func maxSignal(prog vm.Program, phases []int64, feedback bool) (int64, error) {
	var best int64
	seeded := false
	var firstErr error
	permutations(phases, func(order []int64) {
		if firstErr != nil {
			return
		}
		signal, err := runAmplifiers(prog, order, feedback)
		if err != nil {
			firstErr = err
			return
		}
		if !seeded || signal > best {
			best = signal
			seeded = true
		}
	})
	return best, firstErr
}

// runAmplifiers runs one chain with the given phase order, seeded with
// signal 0, and returns the value left on the terminal channel after every
// amplifier halts.
func runAmplifiers(prog vm.Program, order []int64, feedback bool) (int64, error) {
	var chain *vm.Chain
	if feedback {
		chain = vm.FeedbackLoop(prog, amplifiers)
	} else {
		chain = vm.Pipeline(prog, amplifiers)
	}
	for i, phase := range order {
		chain.Channels[i].Put(phase)
	}
	chain.In().Put(0)
	if err := chain.Run(); err != nil {
		return 0, err
	}
	return chain.Out().Take(), nil
}
