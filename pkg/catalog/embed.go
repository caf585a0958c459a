package catalog

import "embed"

// builtinPuzzlesFS embeds the built-in puzzle catalog.
// One file per event year, each listing its days and published samples.
//
//go:embed puzzles/*.yml
var builtinPuzzlesFS embed.FS
