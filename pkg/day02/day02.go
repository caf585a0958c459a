// Package day02 solves "Cube Conundrum".
package day02

import _ "embed"

// Day is the puzzle day this package solves.
const Day = 2

// Input is the embedded puzzle input.
//
//go:embed input/input.txt
var Input string

// bag is the cube load part 1 asks about.
var bag = Handful{Red: 12, Green: 13, Blue: 14}

// Solver implements puzzle.Solver for day 2.
type Solver struct{}

// Part1 sums the ids of games that are possible with the part 1 bag.
func (Solver) Part1(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of the minimum bag of every game.
func (Solver) Part2(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimumBag().Power()
	}
	return sum, nil
}
