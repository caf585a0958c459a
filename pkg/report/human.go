// Package report renders solver answers and sample checks for people and
// for machines.
package report

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/aoc2023/pkg/types"
)

// Title is printed once at the top of human output.
const Title = "Advent of Code 2023"

// Human writes answers in the classic layout:
//
//	Day 03
//	Part 1: 4361
//	(elapsed: 41.2µs)
//
//	Part 2: 467835
//	(elapsed: 38.9µs)
type Human struct {
	out    io.Writer
	styles *styles
	days   int
}

// NewHuman creates a human sink writing to out.
func NewHuman(out io.Writer, colorEnabled bool) *Human {
	return &Human{
		out:    out,
		styles: newStyles(colorEnabled),
	}
}

// Header prints the title line.
func (h *Human) Header() error {
	_, err := h.styles.title.Fprintln(h.out, Title)
	return err
}

// BeginDay prints the day heading, separated from the previous day by a
// blank line.
func (h *Human) BeginDay(day int) error {
	if h.days > 0 {
		if _, err := fmt.Fprintln(h.out); err != nil {
			return err
		}
	}
	h.days++
	_, err := h.styles.day.Fprintf(h.out, "Day %02d\n", day)
	return err
}

// Answer prints one part and its elapsed time.
func (h *Human) Answer(a types.Answer) error {
	if a.Part == types.Part2 {
		if _, err := fmt.Fprintln(h.out); err != nil {
			return err
		}
	}

	label := h.styles.label.Sprintf("Part %d:", a.Part)
	value := h.styles.value.Sprint(a.Value)
	elapsed := h.styles.elapsed.Sprintf("(elapsed: %v)", a.Elapsed)
	_, err := fmt.Fprintf(h.out, "%s %s\n%s\n", label, value, elapsed)
	return err
}
