package types

import "time"

// Part identifies which half of a daily puzzle an answer belongs to.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Answer is one solved part of one day.
type Answer struct {
	Day     int           `json:"day"`
	Part    Part          `json:"part"`
	Value   int           `json:"value"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// ID returns the puzzle identifier for the answer's day, e.g. "day03".
func (a Answer) ID() string {
	return DayID(a.Day)
}
