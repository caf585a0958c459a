package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/aoc2023/pkg/catalog"
	"github.com/praetorian-inc/aoc2023/pkg/types"
	"github.com/spf13/cobra"
)

var daysFormat string

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Inspect the puzzle catalog",
	Long:  "Commands for listing the implemented puzzles",
}

var daysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List implemented puzzles",
	Long:  "Display every implemented puzzle with its day, id, name and sample count",
	RunE:  runDaysList,
}

func init() {
	daysCmd.AddCommand(daysListCmd)
	daysListCmd.Flags().StringVar(&daysFormat, "format", "table", "Output format: table, json")
}

func runDaysList(cmd *cobra.Command, args []string) error {
	infos, err := catalog.NewLoader().LoadBuiltin()
	if err != nil {
		return fmt.Errorf("loading puzzle catalog: %w", err)
	}

	switch daysFormat {
	case "json":
		return outputDaysJSON(cmd, infos)
	case "table":
		return outputDaysTable(cmd, infos)
	default:
		return fmt.Errorf("unknown output format: %s", daysFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputDaysJSON(cmd *cobra.Command, infos []*types.PuzzleInfo) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

func outputDaysTable(cmd *cobra.Command, infos []*types.PuzzleInfo) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tID\tName\tSamples\n")
	fmt.Fprintf(w, "---\t--\t----\t-------\n")

	for _, info := range infos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", info.Day, info.ID, info.Name, len(info.Samples))
	}

	return nil
}
