// Package solvers is the registry of every implemented day.
package solvers

import (
	"github.com/praetorian-inc/aoc2023/pkg/day01"
	"github.com/praetorian-inc/aoc2023/pkg/day02"
	"github.com/praetorian-inc/aoc2023/pkg/day03"
	"github.com/praetorian-inc/aoc2023/pkg/day04"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
)

// All returns every registered puzzle in day order.
func All() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		{Day: day01.Day, Solver: day01.Solver{}, Input: day01.Input},
		{Day: day02.Day, Solver: day02.Solver{}, Input: day02.Input},
		{Day: day03.Day, Solver: day03.Solver{}, Input: day03.Input},
		{Day: day04.Day, Solver: day04.Solver{}, Input: day04.Input},
	}
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (puzzle.Puzzle, bool) {
	for _, p := range All() {
		if p.Day == day {
			return p, true
		}
	}
	return puzzle.Puzzle{}, false
}
