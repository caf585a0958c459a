package day03

import (
	"strconv"

	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
)

// Coord is a zero-indexed grid cell.
type Coord struct {
	X int // column
	Y int // row
}

// Number is a maximal horizontal run of digits in the schematic.
type Number struct {
	Start Coord
	End   Coord // inclusive, same row as Start
	Value int
}

// AdjacentTo reports whether c lies inside the number's bounding box grown
// by one cell in every direction.
func (n Number) AdjacentTo(c Coord) bool {
	return c.X >= max(n.Start.X-1, 0) &&
		c.X <= n.End.X+1 &&
		c.Y >= max(n.Start.Y-1, 0) &&
		c.Y <= n.End.Y+1
}

// Engine holds the symbols and numbers extracted from one schematic.
type Engine struct {
	Symbols []Coord
	Numbers []Number
}

// ParseEngine scans the schematic row by row, left to right.
func ParseEngine(input string) (*Engine, error) {
	e := &Engine{}
	for y, line := range puzzle.Lines(input) {
		start := -1
		for x := 0; x < len(line); x++ {
			c := line[x]
			if isDigit(c) {
				if start < 0 {
					start = x
				}
				continue
			}
			if c != '.' {
				e.Symbols = append(e.Symbols, Coord{X: x, Y: y})
			}
			if start >= 0 {
				n, err := newNumber(line, y, start, x-1)
				if err != nil {
					return nil, err
				}
				e.Numbers = append(e.Numbers, n)
				start = -1
			}
		}
		// run touching the right edge
		if start >= 0 {
			n, err := newNumber(line, y, start, len(line)-1)
			if err != nil {
				return nil, err
			}
			e.Numbers = append(e.Numbers, n)
		}
	}
	return e, nil
}

// PartNumberSum sums every number adjacent to at least one symbol.
func (e *Engine) PartNumberSum() int {
	sum := 0
	for _, n := range e.Numbers {
		for _, s := range e.Symbols {
			if n.AdjacentTo(s) {
				sum += n.Value
				break
			}
		}
	}
	return sum
}

// GearRatioSum sums the products of the two numbers around every symbol
// that touches exactly two numbers.
func (e *Engine) GearRatioSum() int {
	sum := 0
	for _, s := range e.Symbols {
		adjacent := e.adjacentNumbers(s)
		if len(adjacent) == 2 {
			sum += adjacent[0].Value * adjacent[1].Value
		}
	}
	return sum
}

func (e *Engine) adjacentNumbers(c Coord) []Number {
	var out []Number
	for _, n := range e.Numbers {
		if n.AdjacentTo(c) {
			out = append(out, n)
		}
	}
	return out
}

func newNumber(line string, y, start, end int) (Number, error) {
	text := line[start : end+1]
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return Number{}, puzzle.Wrap(y+1, line, "invalid part number "+strconv.Quote(text), err)
	}
	return Number{
		Start: Coord{X: start, Y: y},
		End:   Coord{X: end, Y: y},
		Value: int(v),
	}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
