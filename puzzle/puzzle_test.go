package puzzle

import (
	"testing"

	"github.com/chazu/intcode/vm"
)

func mustParse(t *testing.T, text string) vm.Program {
	t.Helper()
	prog, err := vm.ParseProgram(text)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return prog
}

func TestRegistryHasAllDrivers(t *testing.T) {
	for _, tc := range []struct{ day, part int }{
		{2, 1}, {2, 2},
		{5, 1}, {5, 2},
		{7, 1}, {7, 2},
		{9, 1}, {9, 2},
	} {
		if _, ok := Lookup(tc.day, tc.part); !ok {
			t.Errorf("no solver registered for day %d part %d", tc.day, tc.part)
		}
	}

	days := Days()
	want := []int{2, 5, 7, 9}
	if len(days) != len(want) {
		t.Fatalf("Days() = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("Days() = %v, want %v", days, want)
		}
	}
}

func TestSolveUnknownDay(t *testing.T) {
	if _, err := Solve(25, 1, "99"); err == nil {
		t.Error("Solve should fail for an unregistered day")
	}
}

func TestPermutationsCount(t *testing.T) {
	seen := map[[3]int64]bool{}
	permutations([]int64{1, 2, 3}, func(order []int64) {
		seen[[3]int64{order[0], order[1], order[2]}] = true
	})
	if len(seen) != 6 {
		t.Errorf("distinct permutations = %d, want 6", len(seen))
	}
}
