// Package puzzle defines the contract every daily solver implements.
package puzzle

import (
	"strings"
)

// Solver computes both answers of a daily puzzle from its raw input.
type Solver interface {
	// Part1 returns the answer to the first half of the puzzle.
	Part1(input string) (int, error)

	// Part2 returns the answer to the second half of the puzzle.
	Part2(input string) (int, error)
}

// Puzzle binds a solver to its day and its embedded input.
type Puzzle struct {
	Day    int
	Solver Solver
	Input  string
}

// Lines trims surrounding whitespace from input and splits it into rows.
// A trailing carriage return on a row is dropped so CRLF inputs parse the
// same as LF inputs.
func Lines(input string) []string {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
