package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	loader := NewLoader()

	validYAML := `puzzles:
  - id: day03
    day: 3
    name: Gear Ratios
    description: Engine schematic
    url: https://adventofcode.com/2023/day/3
    samples:
      - name: tiny
        part1: 4
        part2: 0
        input: |
          4..
          .*.
`

	puzzles, err := loader.Load([]byte(validYAML))
	require.NoError(t, err)
	require.Len(t, puzzles, 1)

	p := puzzles[0]
	assert.Equal(t, "day03", p.ID)
	assert.Equal(t, 3, p.Day)
	assert.Equal(t, "Gear Ratios", p.Name)
	assert.Equal(t, "Engine schematic", p.Description)
	require.Len(t, p.Samples, 1)
	assert.Equal(t, "4..\n.*.\n", p.Samples[0].Input)
	require.NotNil(t, p.Samples[0].Part1)
	assert.Equal(t, 4, *p.Samples[0].Part1)
	require.NotNil(t, p.Samples[0].Part2)
	assert.Equal(t, 0, *p.Samples[0].Part2)
}

func TestLoad_DefaultID(t *testing.T) {
	loader := NewLoader()

	puzzles, err := loader.Load([]byte("puzzles:\n  - day: 7\n    name: Camel Cards\n"))
	require.NoError(t, err)
	assert.Equal(t, "day07", puzzles[0].ID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "invalid YAML", yaml: `this is not valid yaml: [[[`},
		{name: "no puzzles", yaml: `puzzles: []`},
		{name: "day out of range", yaml: "puzzles:\n  - day: 26\n    name: Nope\n"},
		{name: "sample without answers", yaml: "puzzles:\n  - day: 1\n    samples:\n      - name: empty\n        input: abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadBuiltin(t *testing.T) {
	puzzles, err := NewLoader().LoadBuiltin()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(puzzles), 4)

	for i, p := range puzzles {
		assert.Equal(t, i+1, p.Day, "catalog is sorted by day")
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Samples, "%s has no samples", p.ID)
	}
	assert.Equal(t, "Gear Ratios", puzzles[2].Name)
}

func TestLoadBuiltin_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"puzzles/b.yml":     {Data: []byte("puzzles:\n  - day: 2\n    name: Two\n")},
		"puzzles/a.yml":     {Data: []byte("puzzles:\n  - day: 1\n    name: One\n")},
		"puzzles/notes.txt": {Data: []byte("ignored")},
	}

	puzzles, err := NewLoaderWithFS(fsys).LoadBuiltin()
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
	assert.Equal(t, "One", puzzles[0].Name)
	assert.Equal(t, "Two", puzzles[1].Name)
}

func TestLoadBuiltin_DuplicateDay(t *testing.T) {
	fsys := fstest.MapFS{
		"puzzles/a.yml": {Data: []byte("puzzles:\n  - day: 1\n    name: One\n")},
		"puzzles/b.yml": {Data: []byte("puzzles:\n  - day: 1\n    name: Again\n")},
	}

	_, err := NewLoaderWithFS(fsys).LoadBuiltin()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFile("/nonexistent/catalog.yml")
	assert.Error(t, err)
}
