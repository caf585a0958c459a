package runner

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/praetorian-inc/aoc2023/pkg/types"
)

// InputName is the file name a day's input is read from, e.g. "day03.txt".
func InputName(day int) string {
	return types.DayID(day) + ".txt"
}

// ResolveInputs replaces each puzzle's embedded input with the matching
// file from fsys. A missing file is an error.
func ResolveInputs(puzzles []puzzle.Puzzle, fsys fs.FS) ([]puzzle.Puzzle, error) {
	out := make([]puzzle.Puzzle, 0, len(puzzles))
	for _, p := range puzzles {
		name := InputName(p.Day)
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no input for day %d: %s not found", p.Day, name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		p.Input = string(data)
		out = append(out, p)
	}
	return out, nil
}
