//go:build integration

package integration

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the path to the module root
func getProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	// tests/integration/cli_test.go -> project root
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// buildAoc compiles the CLI into dist/aoc and returns its path.
func buildAoc(t *testing.T) string {
	t.Helper()
	projectRoot := getProjectRoot()

	buildCmd := exec.Command("go", "build", "-o", "dist/aoc", "./cmd/aoc")
	buildCmd.Dir = projectRoot
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))

	return filepath.Join(projectRoot, "dist", "aoc")
}

func TestCLIIntegration_DefaultRun(t *testing.T) {
	bin := buildAoc(t)

	output, err := exec.Command(bin).Output()
	require.NoError(t, err)

	lines := strings.Split(string(output), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Advent of Code 2023", lines[0])
	assert.Equal(t, "Day 01", lines[1])
	assert.Equal(t, "Part 1: 142", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "(elapsed: "))

	assert.Contains(t, string(output), "Part 2: 467835")
}

func TestCLIIntegration_JSONOutput(t *testing.T) {
	bin := buildAoc(t)

	output, err := exec.Command(bin, "run", "--format", "json", "3").Output()
	require.NoError(t, err)

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	var values []float64
	for scanner.Scan() {
		var answer map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &answer))
		assert.Equal(t, float64(3), answer["day"])
		values = append(values, answer["value"].(float64))
	}
	assert.Equal(t, []float64{4361, 467835}, values)
}

func TestCLIIntegration_ParseFailureExitCode(t *testing.T) {
	bin := buildAoc(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day04.txt"), []byte("Card 1 41 48\n"), 0o644))

	cmd := exec.Command(bin, "run", "--input-dir", dir, "4")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "day 04 part 1")
	assert.Contains(t, string(output), "no ':' found")
}

func TestCLIIntegration_Check(t *testing.T) {
	bin := buildAoc(t)

	output, err := exec.Command(bin, "check", "--color", "never").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "0 failed")
}
