// Intcode CLI - run Intcode programs and the Advent of Code 2019 drivers
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/intcode/puzzle"
	"github.com/chazu/intcode/runner"
	"github.com/chazu/intcode/vm"
)

func main() {
	programPath := flag.String("program", "", "Run the Intcode program in this file")
	inputs := flag.String("inputs", "", "Comma-separated input values for -program")
	day := flag.Int("day", 0, "Run a puzzle day driver")
	part := flag.Int("part", 1, "Puzzle part (used with -day)")
	inputPath := flag.String("input", "", "Puzzle input file (used with -day; default from manifest)")
	check := flag.Bool("check", false, "Run every manifest puzzle and verify answers")
	manifestDir := flag.String("manifest", ".", "Directory to search for intcode.toml")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: intcode [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs Intcode programs directly or through the puzzle drivers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  intcode -program quine.txt            # Run a program, print its outputs\n")
		fmt.Fprintf(os.Stderr, "  intcode -program test.txt -inputs 1,5 # Run with input values\n")
		fmt.Fprintf(os.Stderr, "  intcode -day 7 -part 2 -input amp.txt # Run one puzzle driver\n")
		fmt.Fprintf(os.Stderr, "  intcode -check                        # Verify every manifest puzzle\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	var err error
	switch {
	case *programPath != "":
		err = runProgramFile(*programPath, *inputs)
	case *check:
		err = runCheck(*manifestDir)
	case *day != 0:
		err = runDay(*manifestDir, *day, *part, *inputPath)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runProgramFile runs one program to halt and prints every output value.
func runProgramFile(path, inputs string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := vm.ParseProgram(string(text))
	if err != nil {
		return err
	}

	in := vm.NewChannel()
	if inputs != "" {
		values, err := vm.ParseProgram(inputs)
		if err != nil {
			return fmt.Errorf("bad -inputs: %w", err)
		}
		for _, v := range values {
			in.Put(v)
		}
	}

	m := prog.NewMachine(in, vm.NewChannel())
	runErr := m.Run()
	for _, v := range m.Output().Drain() {
		fmt.Println(v)
	}
	return runErr
}

// runDay runs a single puzzle driver and prints the answer.
func runDay(manifestDir string, day, part int, inputPath string) error {
	if inputPath == "" {
		m, err := runner.FindManifest(manifestDir)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("no %s found and no -input given", runner.ManifestName)
		}
		inputPath = m.InputPath(runner.PuzzleSpec{Day: day, Part: part})
	}
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	answer, err := puzzle.Solve(day, part, string(text))
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

// runCheck runs every puzzle the manifest declares and reports verification
// results, failing the process if any answer is wrong.
func runCheck(manifestDir string) error {
	m, err := runner.FindManifest(manifestDir)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no %s found", runner.ManifestName)
	}

	r, err := runner.New(m)
	if err != nil {
		return err
	}
	defer r.Close()

	records, runErr := r.RunAll()
	failed := 0
	for _, rec := range records {
		line := fmt.Sprintf("day %d part %d: %d (%s, %s)",
			rec.Day, rec.Part, rec.Answer, rec.Status, rec.Elapsed)
		if rec.Status == runner.StatusFail {
			line += fmt.Sprintf(" expected %d", *rec.Expected)
			failed++
		}
		fmt.Println(line)
	}
	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed verification", failed, len(records))
	}
	fmt.Printf("%d puzzles checked\n", len(records))
	return nil
}
