package types

import "time"

// SampleResult is the outcome of running one published sample through a
// solver part.
type SampleResult struct {
	PuzzleID string        `json:"puzzle_id"`
	Sample   string        `json:"sample"`
	Part     Part          `json:"part"`
	Want     int           `json:"want"`
	Got      int           `json:"got"`
	Err      error         `json:"-"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Passed reports whether the solver produced the expected answer.
func (r SampleResult) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}
