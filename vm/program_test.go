package vm

import (
	"testing"
)

func TestParseProgram(t *testing.T) {
	prog, err := ParseProgram("1,-2, 3 ,4\n")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	want := Program{1, -2, 3, 4}
	if len(prog) != len(want) {
		t.Fatalf("parsed %v, want %v", prog, want)
	}
	for i := range want {
		if prog[i] != want[i] {
			t.Fatalf("parsed %v, want %v", prog, want)
		}
	}
}

func TestParseProgramErrors(t *testing.T) {
	for _, text := range []string{"", "   \n", "1,x,3", "1,,3", "1,2.5"} {
		if _, err := ParseProgram(text); err == nil {
			t.Errorf("ParseProgram(%q) should fail", text)
		}
	}
}

func TestProgramSeedsIndependentMachines(t *testing.T) {
	prog := Program{1, 0, 0, 0, 99}
	m1 := prog.NewMachine(NewChannel(), NewChannel())
	m2 := prog.NewMachine(NewChannel(), NewChannel())
	if err := m1.Run(); err != nil {
		t.Fatalf("m1.Run: %v", err)
	}
	// m1's self-modification must not leak into the program or m2.
	if prog[0] != 1 {
		t.Error("running a machine mutated the Program")
	}
	if err := m2.Run(); err != nil {
		t.Fatalf("m2.Run: %v", err)
	}
	v, _ := m2.Memory().Read(0)
	if v != 2 {
		t.Errorf("m2 memory[0] = %d, want 2", v)
	}
}
