// Package day04 solves "Scratchcards".
package day04

import _ "embed"

// Day is the puzzle day this package solves.
const Day = 4

// Input is the embedded puzzle input.
//
//go:embed input/input.txt
var Input string

// Solver implements puzzle.Solver for day 4.
type Solver struct{}

// Part1 sums the scores of all cards.
func (Solver) Part1(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Score()
	}
	return sum, nil
}

// Part2 counts the cards held once every won copy has been processed.
// A card with k matches wins one copy of each of the next k cards.
func (Solver) Part2(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
