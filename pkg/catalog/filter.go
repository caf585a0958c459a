package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/praetorian-inc/aoc2023/pkg/types"
)

// FilterConfig selects puzzles by day number and by id patterns.
type FilterConfig struct {
	Days    []int    // explicit days; empty means every day
	Include []string // Regex patterns - only matching ids included
	Exclude []string // Regex patterns - matching ids excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies the day list, then include, then exclude patterns.
// Returns error if any pattern is invalid regex.
func Filter(puzzles []*types.PuzzleInfo, config FilterConfig) ([]*types.PuzzleInfo, error) {
	if len(puzzles) == 0 {
		return puzzles, nil
	}

	includeRegexes, err := compilePatterns(config.Include)
	if err != nil {
		return nil, err
	}
	excludeRegexes, err := compilePatterns(config.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := puzzles
	if len(config.Days) > 0 {
		filtered = applyDays(filtered, config.Days)
	}
	if len(includeRegexes) > 0 {
		filtered = applyPatterns(filtered, includeRegexes, true)
	}
	if len(excludeRegexes) > 0 {
		filtered = applyPatterns(filtered, excludeRegexes, false)
	}

	return filtered, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var regexes []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		regexes = append(regexes, re)
	}
	return regexes, nil
}

func applyDays(puzzles []*types.PuzzleInfo, days []int) []*types.PuzzleInfo {
	want := make(map[int]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	result := make([]*types.PuzzleInfo, 0)
	for _, p := range puzzles {
		if want[p.Day] {
			result = append(result, p)
		}
	}
	return result
}

func applyPatterns(puzzles []*types.PuzzleInfo, regexes []*regexp.Regexp, keep bool) []*types.PuzzleInfo {
	result := make([]*types.PuzzleInfo, 0)
	for _, p := range puzzles {
		if matchesAny(p.ID, regexes) == keep {
			result = append(result, p)
		}
	}
	return result
}

func matchesAny(id string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}
