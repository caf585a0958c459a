package day01

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sample1.txt
var sample1 string

//go:embed testdata/sample2.txt
var sample2 string

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(sample1)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(sample1)
	require.NoError(t, err)
	assert.Equal(t, 142, got)

	got, err = Solver{}.Part2(sample2)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestPart1_NoDigits(t *testing.T) {
	_, err := Solver{}.Part1(sample2)
	require.Error(t, err)

	var parseErr *puzzle.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "eightwothree", parseErr.Text)
}

func TestPart2_NoDigits(t *testing.T) {
	_, err := Solver{}.Part2("one\nxyz\n")
	require.Error(t, err)

	var parseErr *puzzle.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}

func TestSpelledDigits(t *testing.T) {
	tests := []struct {
		line  string
		first int
		last  int
	}{
		{line: "two1nine", first: 2, last: 9},
		{line: "eightwothree", first: 8, last: 3},
		{line: "eightwo", first: 8, last: 2},
		{line: "xtwone3four", first: 2, last: 4},
		{line: "zoneight234", first: 1, last: 4},
		{line: "7pqrstsixteen", first: 7, last: 6},
		{line: "twone", first: 2, last: 1},
		{line: "zero5", first: 0, last: 5},
		{line: "oneight", first: 1, last: 8},
		{line: "9", first: 9, last: 9},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			first, last, ok, err := spelledDigits(tt.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestSpelledDigits_NoToken(t *testing.T) {
	for _, line := range []string{"", "abc", "on e", "nin"} {
		_, _, ok, err := spelledDigits(line)
		require.NoError(t, err)
		assert.False(t, ok, "line %q", line)
	}
}

func TestNumericDigits(t *testing.T) {
	first, last, ok, err := numericDigits("treb7uchet")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, first)
	assert.Equal(t, 7, last)

	_, _, ok, _ = numericDigits("sevenine")
	assert.False(t, ok)
}

func TestTokensIn(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: "eightwo", want: []string{"eight", "two"}},
		{line: "xtwone3four", want: []string{"3", "four", "one", "two"}},
		{line: "ninine", want: []string{"nine"}},
		{line: "1abc1", want: []string{"1"}},
		{line: "nin", want: []string{}},
		{line: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, tokensIn(tt.line))
		})
	}
}

func TestPatternCache(t *testing.T) {
	cache := &patternCache{patterns: make(map[string]*regexp2.Regexp)}

	re, err := cache.get([]string{"eight", "two"})
	require.NoError(t, err)
	assert.Equal(t, `(?=(?<digit>eight|two))`, re.String())

	again, err := cache.get([]string{"eight", "two"})
	require.NoError(t, err)
	assert.Same(t, re, again)

	other, err := cache.get([]string{"1"})
	require.NoError(t, err)
	assert.NotSame(t, re, other)
	assert.Len(t, cache.patterns, 2)
}

func TestSpelledDigits_OnlyScansPresentTokens(t *testing.T) {
	_, _, ok, err := spelledDigits("sixteen")
	require.NoError(t, err)
	require.True(t, ok)

	key := "six"
	_, cached := patterns.patterns[key]
	assert.True(t, cached, "pattern for the tokens in the line is compiled")
}

func TestCalibrate_FinderError(t *testing.T) {
	boom := errors.New("match timeout")
	failing := func(string) (int, int, bool, error) {
		return 0, 0, false, boom
	}

	_, err := calibrate("1abc2\n", failing)
	require.Error(t, err)

	var parseErr *puzzle.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "scanning for digits", parseErr.Reason)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, err.Error(), "no digits found")
}
