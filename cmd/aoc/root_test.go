package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	defer func() { verbose, quiet = false, false }()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{name: "default", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{name: "verbose", verbose: true, enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{name: "quiet", quiet: true, enabled: zapcore.ErrorLevel, muted: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbose, quiet = tt.verbose, tt.quiet
			require.NoError(t, initLogger(&cobra.Command{}, nil))
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestInitLogger_Conflict(t *testing.T) {
	defer func() { verbose, quiet = false, false }()

	verbose, quiet = true, true
	err := initLogger(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "days", "check", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
