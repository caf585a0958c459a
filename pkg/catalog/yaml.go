package catalog

// yamlSample is one published example of a puzzle.
type yamlSample struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Part1 *int   `yaml:"part1,omitempty"`
	Part2 *int   `yaml:"part2,omitempty"`
}

// yamlPuzzle is the intermediate struct for parsing catalog entries.
// Maps YAML fields to types.PuzzleInfo.
type yamlPuzzle struct {
	ID          string       `yaml:"id"`
	Day         int          `yaml:"day"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	URL         string       `yaml:"url,omitempty"`
	Samples     []yamlSample `yaml:"samples,omitempty"`
}

// yamlPuzzlesFile represents the top-level structure of a catalog file.
type yamlPuzzlesFile struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}
