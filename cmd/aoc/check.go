package main

import (
	"fmt"

	"github.com/praetorian-inc/aoc2023/pkg/report"
	"github.com/praetorian-inc/aoc2023/pkg/runner"
	"github.com/praetorian-inc/aoc2023/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkColor string

var checkCmd = &cobra.Command{
	Use:   "check [day...]",
	Short: "Verify solvers against the published samples",
	Long: `Run every sample from the puzzle catalog through its solver and compare
the result with the expected answer. Fails if any sample does not match.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
}

func runCheck(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	infos, err := selectPuzzles(days, "", "")
	if err != nil {
		return err
	}
	puzzles, err := puzzlesFor(infos)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{Logger: logger})
	var results []types.SampleResult
	for i, info := range infos {
		results = append(results, r.CheckSamples(puzzles[i], info)...)
	}

	enabled, err := report.ColorEnabled(checkColor, outputFile(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	failed, err := report.NewCheckWriter(cmd.OutOrStdout(), enabled).Write(results)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("samples checked", zap.Int("total", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d sample checks failed", failed, len(results))
	}
	return nil
}
