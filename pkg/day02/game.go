package day02

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
)

// Handful is one set of cubes revealed from the bag.
type Handful struct {
	Red   int
	Green int
	Blue  int
}

// Game is a numbered sequence of handfuls.
type Game struct {
	ID       int
	Handfuls []Handful
}

// Possible reports whether every handful fits within the given bag.
func (g Game) Possible(bag Handful) bool {
	for _, h := range g.Handfuls {
		if h.Red > bag.Red || h.Green > bag.Green || h.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// MinimumBag returns the fewest cubes of each colour that make the game
// possible.
func (g Game) MinimumBag() Handful {
	var bag Handful
	for _, h := range g.Handfuls {
		bag.Red = max(bag.Red, h.Red)
		bag.Green = max(bag.Green, h.Green)
		bag.Blue = max(bag.Blue, h.Blue)
	}
	return bag
}

// Power is the product of the three cube counts.
func (h Handful) Power() int {
	return h.Red * h.Green * h.Blue
}

// cubePattern matches one "<count> <colour>" entry of a handful.
var cubePattern = regexp2.MustCompile(`^(?<count>\S+)\s+(?<colour>\S+)$`, regexp2.None)

// ParseGames parses one game per input line.
func ParseGames(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(i+1, line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(lineNo int, line string) (Game, error) {
	head, rest, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return Game{}, puzzle.Errorf(lineNo, line, "invalid game line: no ':' found")
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return Game{}, puzzle.Errorf(lineNo, line, "invalid game line: no number found")
	}
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Game{}, puzzle.Wrap(lineNo, line, "invalid game id", err)
	}

	if strings.TrimSpace(rest) == "" {
		return Game{}, puzzle.Errorf(lineNo, line, "invalid game line: nothing after ':' found")
	}

	g := Game{ID: id}
	for _, part := range strings.Split(rest, ";") {
		h, err := parseHandful(lineNo, line, part)
		if err != nil {
			return Game{}, err
		}
		g.Handfuls = append(g.Handfuls, h)
	}
	return g, nil
}

func parseHandful(lineNo int, line, s string) (Handful, error) {
	var h Handful
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		m, err := cubePattern.FindStringMatch(entry)
		if err != nil {
			return Handful{}, puzzle.Wrap(lineNo, line, "invalid handful", err)
		}
		if m == nil {
			return Handful{}, puzzle.Errorf(lineNo, line, "invalid handful %q", entry)
		}

		n, err := strconv.Atoi(m.GroupByName("count").String())
		if err != nil {
			return Handful{}, puzzle.Wrap(lineNo, line, "invalid cube count", err)
		}
		switch colour := m.GroupByName("colour").String(); colour {
		case "red":
			h.Red = n
		case "green":
			h.Green = n
		case "blue":
			h.Blue = n
		default:
			return Handful{}, puzzle.Errorf(lineNo, line, "invalid handful: unknown colour %q", colour)
		}
	}
	return h, nil
}
