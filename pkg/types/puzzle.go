package types

import "fmt"

// PuzzleInfo describes a daily puzzle in the catalog.
type PuzzleInfo struct {
	ID          string   `json:"id"`                    // e.g., "day03"
	Day         int      `json:"day"`                   // 1-based day of the event
	Name        string   `json:"name"`                  // puzzle title
	Description string   `json:"description,omitempty"` // optional
	URL         string   `json:"url,omitempty"`         // puzzle page
	Samples     []Sample `json:"samples"`               // published examples with expected answers
}

// Sample is a published example input together with the answers it is
// expected to produce. A nil answer means the sample does not apply to
// that part.
type Sample struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Part1 *int   `json:"part1,omitempty"`
	Part2 *int   `json:"part2,omitempty"`
}

// Want returns the expected answer for the given part, if any.
func (s Sample) Want(part Part) (int, bool) {
	var want *int
	switch part {
	case Part1:
		want = s.Part1
	case Part2:
		want = s.Part2
	}
	if want == nil {
		return 0, false
	}
	return *want, true
}

// DayID formats the canonical puzzle identifier for a day.
func DayID(day int) string {
	return fmt.Sprintf("day%02d", day)
}
