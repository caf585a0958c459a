// Package catalog loads puzzle metadata and published samples from YAML.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/praetorian-inc/aoc2023/pkg/types"
	"gopkg.in/yaml.v3"
)

// Loader handles loading puzzle catalogs from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for the built-in catalog
}

// NewLoader creates a loader over the built-in catalog.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinPuzzlesFS,
	}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// Load parses every puzzle in a catalog document.
// Returns error if YAML is invalid, empty, or an entry is incomplete.
func (l *Loader) Load(data []byte) ([]*types.PuzzleInfo, error) {
	var yamlFile yamlPuzzlesFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Puzzles) == 0 {
		return nil, fmt.Errorf("no puzzles found in YAML")
	}

	puzzles := make([]*types.PuzzleInfo, 0, len(yamlFile.Puzzles))
	for _, yp := range yamlFile.Puzzles {
		p, err := convertYAMLPuzzle(yp)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

// LoadFile loads a catalog from a YAML file path.
func (l *Loader) LoadFile(path string) ([]*types.PuzzleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}

// LoadBuiltin loads every catalog file from the loader's filesystem,
// sorted by day.
func (l *Loader) LoadBuiltin() ([]*types.PuzzleInfo, error) {
	var puzzles []*types.PuzzleInfo
	seen := make(map[int]string)

	err := fs.WalkDir(l.fs, "puzzles", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded, err := l.Load(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, p := range loaded {
			if prev, dup := seen[p.Day]; dup {
				return fmt.Errorf("%s: day %d already defined in %s", path, p.Day, prev)
			}
			seen[p.Day] = path
			puzzles = append(puzzles, p)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].Day < puzzles[j].Day
	})
	return puzzles, nil
}

// convertYAMLPuzzle converts yamlPuzzle to types.PuzzleInfo, filling in the
// id from the day when it is omitted.
func convertYAMLPuzzle(yp yamlPuzzle) (*types.PuzzleInfo, error) {
	if yp.Day < 1 || yp.Day > 25 {
		return nil, fmt.Errorf("puzzle %q: day %d out of range", yp.Name, yp.Day)
	}

	p := &types.PuzzleInfo{
		ID:          yp.ID,
		Day:         yp.Day,
		Name:        yp.Name,
		Description: yp.Description,
		URL:         yp.URL,
	}
	if p.ID == "" {
		p.ID = types.DayID(yp.Day)
	}

	for _, ys := range yp.Samples {
		if ys.Part1 == nil && ys.Part2 == nil {
			return nil, fmt.Errorf("puzzle %s: sample %q has no expected answers", p.ID, ys.Name)
		}
		p.Samples = append(p.Samples, types.Sample{
			Name:  ys.Name,
			Input: ys.Input,
			Part1: ys.Part1,
			Part2: ys.Part2,
		})
	}
	return p, nil
}
