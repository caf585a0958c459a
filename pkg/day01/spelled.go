package day01

import (
	"slices"
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
	"github.com/dlclark/regexp2"
)

// digitValues maps every digit token, spelled or numeric, to its value.
var digitValues = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
	"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
}

// digitTokens is the key set of digitValues in sorted order. Matcher hits
// index into it.
var digitTokens = sortedTokens()

var tokenMatcher = ahocorasick.NewStringMatcher(digitTokens)

var patterns = &patternCache{patterns: make(map[string]*regexp2.Regexp)}

func sortedTokens() []string {
	tokens := make([]string, 0, len(digitValues))
	for token := range digitValues {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)
	return tokens
}

// tokensIn returns the digit tokens that occur somewhere in line, in
// digitTokens order.
func tokensIn(line string) []string {
	hits := tokenMatcher.MatchThreadSafe([]byte(line))
	slices.Sort(hits)
	hits = slices.Compact(hits)

	tokens := make([]string, len(hits))
	for i, hit := range hits {
		tokens[i] = digitTokens[hit]
	}
	return tokens
}

// patternCache holds one compiled pattern per distinct token set.
type patternCache struct {
	mu       sync.Mutex
	patterns map[string]*regexp2.Regexp
}

// get returns a pattern that matches at every position where one of
// tokens starts. Spelled digits overlap ("eightwo"), so the pattern is a
// zero-width lookahead.
func (c *patternCache) get(tokens []string) (*regexp2.Regexp, error) {
	escaped := make([]string, len(tokens))
	for i, token := range tokens {
		escaped[i] = regexp2.Escape(token)
	}
	key := strings.Join(escaped, "|")

	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.patterns[key]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(`(?=(?<digit>`+key+`))`, regexp2.None)
	if err != nil {
		return nil, err
	}
	c.patterns[key] = re
	return re, nil
}

// spelledDigits finds the first and last digit token on line. The regex
// only scans for the tokens the matcher found in the line.
func spelledDigits(line string) (first, last int, ok bool, err error) {
	tokens := tokensIn(line)
	if len(tokens) == 0 {
		return 0, 0, false, nil
	}

	re, err := patterns.get(tokens)
	if err != nil {
		return 0, 0, false, err
	}

	first, last = -1, -1
	m, err := re.FindStringMatch(line)
	for m != nil && err == nil {
		v := digitValues[m.GroupByName("digit").String()]
		if first < 0 {
			first = v
		}
		last = v
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return 0, 0, false, err
	}
	return first, last, first >= 0, nil
}
