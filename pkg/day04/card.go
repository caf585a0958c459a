package day04

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
)

// maxWinning keeps Score within an int: k matches score 1<<(k-1).
const maxWinning = strconv.IntSize - 1

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning *hashset.Set // winning numbers
	Numbers *hashset.Set // numbers you have
}

// Matches counts the numbers you have that are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, v := range c.Numbers.Values() {
		if c.Winning.Contains(v) {
			n++
		}
	}
	return n
}

// Score is 1 for the first match, doubled for every further match.
func (c Card) Score() int {
	k := c.Matches()
	if k == 0 {
		return 0
	}
	return 1 << (k - 1)
}

// ParseCards parses one card per input line.
func ParseCards(input string) ([]Card, error) {
	lines := puzzle.Lines(input)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := parseCard(i+1, line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(lineNo int, line string) (Card, error) {
	head, rest, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: no ':' found")
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: no number found")
	}
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Card{}, puzzle.Wrap(lineNo, line, "invalid card id", err)
	}

	if strings.TrimSpace(rest) == "" {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: nothing after ':' found")
	}
	winning, have, found := strings.Cut(rest, "|")
	if !found {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: no '|' found")
	}
	if strings.TrimSpace(have) == "" {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: nothing after '|' found")
	}

	c := Card{ID: id}
	if c.Winning, err = parseNumbers(lineNo, line, winning); err != nil {
		return Card{}, err
	}
	if c.Winning.Size() > maxWinning {
		return Card{}, puzzle.Errorf(lineNo, line, "invalid card: more than %d winning numbers", maxWinning)
	}
	if c.Numbers, err = parseNumbers(lineNo, line, have); err != nil {
		return Card{}, err
	}
	return c, nil
}

func parseNumbers(lineNo int, line, s string) (*hashset.Set, error) {
	set := hashset.New()
	for _, field := range strings.Fields(s) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, puzzle.Wrap(lineNo, line, "invalid card number", err)
		}
		set.Add(n)
	}
	return set, nil
}
