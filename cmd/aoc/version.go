package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/praetorian-inc/aoc2023/pkg/solvers"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the build version, the toolchain and the implemented days",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	v, rev, modified := buildVersion()
	if modified {
		rev += " (modified)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "AoC 2023 %s\n", v)
	fmt.Fprintf(out, "Commit: %s\n", rev)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Days: %s\n", implementedDays())
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// buildVersion prefers values injected at link time and falls back to the
// module version and VCS stamp recorded by the go command.
func buildVersion() (v, rev string, modified bool) {
	v, rev = version, commit

	info, ok := readBuildInfo()
	if !ok {
		return v, rev, false
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if rev == "unknown" {
				rev = s.Value
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return v, rev, modified
}

func implementedDays() string {
	all := solvers.All()
	days := make([]string, len(all))
	for i, p := range all {
		days[i] = strconv.Itoa(p.Day)
	}
	return strings.Join(days, ", ")
}
