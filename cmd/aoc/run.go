package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/praetorian-inc/aoc2023/pkg/catalog"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/praetorian-inc/aoc2023/pkg/report"
	"github.com/praetorian-inc/aoc2023/pkg/runner"
	"github.com/praetorian-inc/aoc2023/pkg/solvers"
	"github.com/praetorian-inc/aoc2023/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runInclude  string
	runExclude  string
	runFormat   string
	runColor    string
	runInputDir string
)

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve selected days",
	Long: `Solve the given days, or every implemented day when none are given.

Days can also be selected with --include and --exclude, comma-separated
regular expressions matched against puzzle ids such as "day03".`,
	Example: `  aoc run 3
  aoc run --exclude 'day0[12]'
  aoc run --input-dir ~/aoc/2023 --format json`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInclude, "include", "", "Only run puzzles whose id matches these regex patterns (comma-separated)")
	runCmd.Flags().StringVar(&runExclude, "exclude", "", "Skip puzzles whose id matches these regex patterns (comma-separated)")
	runCmd.Flags().StringVar(&runFormat, "format", "human", "Output format: human, json")
	runCmd.Flags().StringVar(&runColor, "color", "auto", "Color output: auto, always, never")
	runCmd.Flags().StringVar(&runInputDir, "input-dir", "", "Read dayNN.txt inputs from this directory instead of the embedded ones")
}

func runRun(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	infos, err := selectPuzzles(days, runInclude, runExclude)
	if err != nil {
		return err
	}
	return solve(cmd, infos, runFormat, runColor, runInputDir)
}

// =============================================================================
// HELPERS
// =============================================================================

// solve runs the puzzles described by infos, or every registered puzzle when
// infos is nil.
func solve(cmd *cobra.Command, infos []*types.PuzzleInfo, format, colorMode, inputDir string) error {
	puzzles := solvers.All()
	if infos != nil {
		var err error
		puzzles, err = puzzlesFor(infos)
		if err != nil {
			return err
		}
	}

	if inputDir != "" {
		var err error
		puzzles, err = runner.ResolveInputs(puzzles, os.DirFS(inputDir))
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	var sink runner.Sink
	switch format {
	case "json":
		sink = report.NewJSON(out)
	case "human":
		enabled, err := report.ColorEnabled(colorMode, outputFile(out))
		if err != nil {
			return err
		}
		human := report.NewHuman(out, enabled)
		if err := human.Header(); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		sink = human
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	logger.Debug("running puzzles", zap.Int("count", len(puzzles)))
	return runner.New(runner.Config{Logger: logger}).Run(puzzles, sink)
}

// selectPuzzles loads the catalog and narrows it to the requested days and
// id patterns.
func selectPuzzles(days []int, include, exclude string) ([]*types.PuzzleInfo, error) {
	infos, err := catalog.NewLoader().LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("loading puzzle catalog: %w", err)
	}

	known := make(map[int]bool, len(infos))
	for _, info := range infos {
		known[info.Day] = true
	}
	for _, d := range days {
		if !known[d] {
			return nil, fmt.Errorf("unknown day %d", d)
		}
	}

	infos, err = catalog.Filter(infos, catalog.FilterConfig{
		Days:    days,
		Include: catalog.ParsePatterns(include),
		Exclude: catalog.ParsePatterns(exclude),
	})
	if err != nil {
		return nil, fmt.Errorf("filtering puzzles: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no puzzles selected")
	}
	return infos, nil
}

func puzzlesFor(infos []*types.PuzzleInfo) ([]puzzle.Puzzle, error) {
	puzzles := make([]puzzle.Puzzle, 0, len(infos))
	for _, info := range infos {
		p, ok := solvers.Lookup(info.Day)
		if !ok {
			return nil, fmt.Errorf("no solver registered for %s", info.ID)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q: must be a number from 1 to 25", arg)
		}
		days = append(days, d)
	}
	return days, nil
}

// outputFile returns w as a file when it is one, so colour detection can
// inspect it.
func outputFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
