package day01

import (
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
)

// digitFinder returns the first and last digit on a line.
type digitFinder func(line string) (first, last int, ok bool, err error)

func calibrate(input string, find digitFinder) (int, error) {
	sum := 0
	for i, line := range puzzle.Lines(input) {
		first, last, ok, err := find(line)
		if err != nil {
			return 0, puzzle.Wrap(i+1, line, "scanning for digits", err)
		}
		if !ok {
			return 0, puzzle.Errorf(i+1, line, "no digits found in line")
		}
		sum += first*10 + last
	}
	return sum, nil
}

func numericDigits(line string) (first, last int, ok bool, err error) {
	first, last = -1, -1
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			if first < 0 {
				first = int(c - '0')
			}
			last = int(c - '0')
		}
	}
	return first, last, first >= 0, nil
}
