package report

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/aoc2023/pkg/types"
)

// CheckWriter prints the outcome of sample checks, one line per sample part.
type CheckWriter struct {
	out    io.Writer
	styles *styles
}

// NewCheckWriter creates a CheckWriter writing to out.
func NewCheckWriter(out io.Writer, colorEnabled bool) *CheckWriter {
	return &CheckWriter{
		out:    out,
		styles: newStyles(colorEnabled),
	}
}

// Write prints every result and returns how many failed.
func (w *CheckWriter) Write(results []types.SampleResult) (int, error) {
	failed := 0
	for _, r := range results {
		var line string
		switch {
		case r.Err != nil:
			failed++
			line = w.styles.fail.Sprintf("❌ %s %q part %d: %v", r.PuzzleID, r.Sample, r.Part, r.Err)
		case !r.Passed():
			failed++
			line = w.styles.fail.Sprintf("❌ %s %q part %d: got %d, want %d", r.PuzzleID, r.Sample, r.Part, r.Got, r.Want)
		default:
			line = w.styles.pass.Sprintf("✅ %s %q part %d: %d", r.PuzzleID, r.Sample, r.Part, r.Got)
		}
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return failed, err
		}
	}

	if _, err := fmt.Fprintf(w.out, "\n%d checked, %d failed\n", len(results), failed); err != nil {
		return failed, err
	}
	return failed, nil
}
