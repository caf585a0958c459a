// Package day03 solves "Gear Ratios": summing the part numbers and gear
// ratios of an engine schematic.
package day03

import _ "embed"

// Day is the puzzle day this package solves.
const Day = 3

// Input is the embedded puzzle input.
//
//go:embed input/input.txt
var Input string

// Solver implements puzzle.Solver for day 3.
type Solver struct{}

// Part1 returns the sum of all part numbers.
func (Solver) Part1(input string) (int, error) {
	e, err := ParseEngine(input)
	if err != nil {
		return 0, err
	}
	return e.PartNumberSum(), nil
}

// Part2 returns the sum of all gear ratios.
func (Solver) Part2(input string) (int, error) {
	e, err := ParseEngine(input)
	if err != nil {
		return 0, err
	}
	return e.GearRatioSum(), nil
}
