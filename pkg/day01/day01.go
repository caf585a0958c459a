// Package day01 solves "Trebuchet?!": recovering calibration values from
// the first and last digit on every line.
package day01

import (
	_ "embed"
)

// Day is the puzzle day this package solves.
const Day = 1

// Input is the embedded puzzle input.
//
//go:embed input/input.txt
var Input string

// Solver implements puzzle.Solver for day 1.
type Solver struct{}

// Part1 sums the calibration values built from numeric digits only.
func (Solver) Part1(input string) (int, error) {
	return calibrate(input, numericDigits)
}

// Part2 sums the calibration values built from numeric and spelled digits.
func (Solver) Part2(input string) (int, error) {
	return calibrate(input, spelledDigits)
}
