// Package puzzle contains the Advent of Code 2019 drivers built on the
// Intcode machine. Each driver is a thin consumer of the VM's input and
// output streams: it parses the day's program, seeds inputs, and reads
// outputs until the machine halts.
package puzzle

import (
	"fmt"
	"sort"
)

// Solver computes one puzzle answer from the day's raw input text.
type Solver func(input string) (int64, error)

type key struct {
	day  int
	part int
}

var solvers = map[key]Solver{}

// register is called from each day file's init.
func register(day, part int, fn Solver) {
	solvers[key{day, part}] = fn
}

// Lookup returns the solver for a day and part.
func Lookup(day, part int) (Solver, bool) {
	fn, ok := solvers[key{day, part}]
	return fn, ok
}

// Solve runs the solver for a day and part over input.
func Solve(day, part int, input string) (int64, error) {
	fn, ok := Lookup(day, part)
	if !ok {
		return 0, fmt.Errorf("no solver for day %d part %d", day, part)
	}
	return fn(input)
}

// Days lists the days with at least one registered solver, ascending.
func Days() []int {
	seen := map[int]bool{}
	for k := range solvers {
		seen[k.day] = true
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// permutations generates every ordering of values, invoking visit with a
// slice that is reused between calls.
func permutations(values []int64, visit func([]int64)) {
	var recurse func(k int)
	recurse = func(k int) {
		if k == len(values) {
			visit(values)
			return
		}
		for i := k; i < len(values); i++ {
			values[k], values[i] = values[i], values[k]
			recurse(k + 1)
			values[k], values[i] = values[i], values[k]
		}
	}
	recurse(0)
}
