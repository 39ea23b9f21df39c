package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/clock"
	"github.com/katalvlaran/statespace/internal/cli"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/search"
)

const fixtures = "../../jam/testdata/"

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestClock(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "clock", "12", "6", "12")
	require.NoError(t, err)
	assert.Equal(t, `Hours: 12, Start: 6, End: 12

Total configs: 22
Unique configs: 11
Step 0: 6
Step 1: 5
Step 2: 4
Step 3: 3
Step 4: 2
Step 5: 1
Step 6: 12
`, out)
}

func TestClockStandalone(t *testing.T) {
	out, _, err := execute(t, cli.NewClockCmd(), "", "4", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Hours: 4, Start: 1, End: 1\n\nTotal configs: 0\nUnique configs: 0\nStep 0: 1\n", out)
}

func TestClockNoSolution(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "clock", "12", "6", "13")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Unique configs: 11\nNo Solution!\n"), out)
}

func TestWater(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "water", "0", "5", "3")
	require.NoError(t, err)
	assert.Equal(t, "Amount: 0, Buckets: [5, 3]\n\nTotal configs: 0\nUnique configs: 0\nStep 0: [0, 0]\n", out)

	out, _, err = execute(t, cli.NewWaterCmd(), "", "4", "5", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Amount: 4, Buckets: [5, 3]\n")
	assert.Contains(t, out, "Step 6: ")
	assert.NotContains(t, out, "Step 7: ")

	out, _, err = execute(t, cli.NewRootCmd(), "", "water", "9", "5", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Unique configs: 15\nNo Solution!\n")
}

func TestJam(t *testing.T) {
	path := fixtures + "solved.txt"
	out, _, err := execute(t, cli.NewRootCmd(), "", "--color", "never", "jam", path)
	require.NoError(t, err)
	assert.Equal(t, "File: "+path+"\nX X\nTotal configs: 0\nUnique configs: 0\nStep 0:\nX X\n\n", out)

	out, _, err = execute(t, cli.NewJamCmd(), "", "--color", "never", fixtures+"stuck.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Total configs: 0\nUnique configs: 0\nNo Solution!\n"), out)

	out, _, err = execute(t, cli.NewRootCmd(), "", "--color", "never", "jam", fixtures+"blocker.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 4:\n")
	assert.NotContains(t, out, "Step 5:")
}

func TestJamColor(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "--color", "always", "jam", fixtures+"solved.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, _, err = execute(t, cli.NewRootCmd(), "", "--color", "auto", "jam", fixtures+"solved.txt")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestUsageErrors(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "clock", "12", "6")
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Contains(t, out, "Usage:")

	out, _, err = execute(t, cli.NewRootCmd(), "", "clock", "12", "x", "3")
	require.ErrorIs(t, err, clock.ErrMalformedInput)
	assert.Contains(t, out, "Usage:")
	assert.NotContains(t, out, "Hours:")

	_, _, err = execute(t, cli.NewRootCmd(), "", "water", "4")
	require.ErrorIs(t, err, cli.ErrUsage)

	out, _, err = execute(t, cli.NewRootCmd(), "", "jam", fixtures+"missing.txt")
	require.Error(t, err)
	assert.NotContains(t, out, "Usage:")
}

func TestBudgetAndConfig(t *testing.T) {
	_, _, err := execute(t, cli.NewRootCmd(), "", "--max-expansions", "1", "clock", "12", "6", "12")
	require.ErrorIs(t, err, search.ErrBudgetExceeded)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "statespace.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_expansions: 1\n"), 0o600))
	_, _, err = execute(t, cli.NewRootCmd(), "", "--config", cfg, "clock", "12", "6", "12")
	require.ErrorIs(t, err, search.ErrBudgetExceeded)

	// flags win over the file
	_, _, err = execute(t, cli.NewRootCmd(), "", "--config", cfg, "--max-expansions", "0", "clock", "12", "6", "12")
	require.NoError(t, err)

	_, _, err = execute(t, cli.NewRootCmd(), "", "--telemetry", "bogus", "clock", "12", "6", "12")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLogging(t *testing.T) {
	_, logs, err := execute(t, cli.NewRootCmd(), "", "--log-level", "info", "clock", "4", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=solved")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "outcome=found")

	_, logs, err = execute(t, cli.NewRootCmd(), "", "clock", "4", "1", "3")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestTelemetryStdout(t *testing.T) {
	_, logs, err := execute(t, cli.NewRootCmd(), "", "--telemetry", "stdout", "clock", "4", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, logs, "search.Solve")
	assert.Contains(t, logs, "search_solve_total")
}

func TestBatch(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "",
		"batch", "--workers", "2",
		fixtures+"solved.txt", fixtures+"stuck.txt", fixtures+"missing.txt", fixtures+"blocker.txt")
	require.ErrorIs(t, err, cli.ErrBatchFailed)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, fixtures+"solved.txt: steps=0 total=0 unique=0", lines[0])
	assert.Equal(t, fixtures+"stuck.txt: No Solution! total=0 unique=0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], fixtures+"missing.txt: error: "), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], fixtures+"blocker.txt: steps=4 "), lines[3])

	out, _, err = execute(t, cli.NewRootCmd(), "", "batch", fixtures+"solved.txt")
	require.NoError(t, err)
	assert.Equal(t, fixtures+"solved.txt: steps=0 total=0 unique=0\n", out)
}

func TestPlay(t *testing.T) {
	input := strings.Join([]string{
		"s 0 0",
		"s 1 1",
		"s 1 2",
		"h",
		"x",
		"l " + fixtures + "missing.txt",
		"r",
		"q",
	}, "\n")
	out, _, err := execute(t, cli.NewRootCmd(), input, "--color", "never", "jam", "play", fixtures+"blocker.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "   0 1 2 3\n  --------\n")
	assert.Contains(t, out, "No car at (0, 0)")
	assert.Contains(t, out, "Selected (1, 1)")
	assert.Contains(t, out, "Can't move from (1, 1) to (1, 2)")
	assert.Contains(t, out, "Next step!")
	assert.Contains(t, out, "h(int)")
	assert.Contains(t, out, "Failed to load: "+fixtures+"missing.txt")
	assert.Contains(t, out, "Puzzle reset!")

	_, _, err = execute(t, cli.NewRootCmd(), "", "jam", "play", fixtures+"missing.txt")
	require.Error(t, err)

	// end of input ends the session
	_, _, err = execute(t, cli.NewRootCmd(), "h\n", "jam", "play", fixtures+"blocker.txt")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, cli.NewRootCmd(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "puzzles version "+cli.Version), out)
}
