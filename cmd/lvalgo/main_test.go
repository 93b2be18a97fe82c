package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/sched"
	"github.com/katalvlaran/lvalgo/sequence"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err := app.Run(append([]string{"lvalgo"}, args...))

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMergeCommand_Args(t *testing.T) {
	out, _, err := run(t, "merge", "1,4,5", "1,3,4", "2,6")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 2 3 4 4 5 6]\n", out)
}

func TestMergeCommand_EmptyLists(t *testing.T) {
	out, _, err := run(t, "merge", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMergeCommand_PairwiseAndStable(t *testing.T) {
	out, _, err := run(t, "merge", "--pairwise", "5", "5")
	require.NoError(t, err)
	assert.Equal(t, "[5 5]\n", out)

	out, _, err = run(t, "merge", "--stable", "7")
	require.NoError(t, err)
	assert.Equal(t, "[7]\n", out)
}

func TestMergeCommand_File(t *testing.T) {
	path := writeFile(t, "lists.yaml", "lists:\n  - [1, 4, 5]\n  - []\n  - [2, 6]\n")
	out, _, err := run(t, "merge", "--file", path, "3")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3 4 5 6]\n", out)
}

func TestMergeCommand_Errors(t *testing.T) {
	_, stderr, err := run(t, "merge", "3,1")
	assert.ErrorIs(t, err, errUnsorted)
	assert.Contains(t, stderr, "command failed")
	assert.Contains(t, stderr, "command=merge")

	_, _, err = run(t, "merge", "1,x")
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "lists: [[1]]\nextra: true\n")
	_, _, err = run(t, "merge", "--file", path)
	assert.Error(t, err)
}

func TestArrayCommands(t *testing.T) {
	out, _, err := run(t, "rotate", "--by", "2", "1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, "[3 4 5 1 2]\n", out)

	out, _, err = run(t, "csort", "3,-1,2,-1")
	require.NoError(t, err)
	assert.Equal(t, "[-1 -1 2 3]\n", out)

	out, _, err = run(t, "tsearch", "--target", "8", "1,3,8,13")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "tsearch", "--target", "4", "1,3,8,13")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	_, _, err = run(t, "tsearch", "--target", "4", "3,1")
	assert.ErrorIs(t, err, errUnsorted)
}

func TestJugglerCommand(t *testing.T) {
	out, _, err := run(t, "juggler", "3")
	require.NoError(t, err)
	assert.Equal(t, "[3 5 11 36 6 2 1]\n", out)

	_, _, err = run(t, "juggler", "0")
	assert.Error(t, err)
}

func TestNatoCommand(t *testing.T) {
	out, _, err := run(t, "nato", "SOS", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sierra Oscar Sierra One\n", out)

	out, _, err = run(t, "nato", "--decode", "Golf Oscar", "niner")
	require.NoError(t, err)
	assert.Equal(t, "GO9\n", out)

	_, _, err = run(t, "nato", "a?")
	assert.Error(t, err)

	out, _, err = run(t, "nato", "--skip-unknown", "a?")
	require.NoError(t, err)
	assert.Equal(t, "Alfa\n", out)
}

func TestTraverseCommand(t *testing.T) {
	out, _, err := run(t, "traverse", "--order", "pre", "1,2,3,null,4")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 4 3]\n", out)

	out, _, err = run(t, "traverse", "--order", "level", "1,2,3,null,4")
	require.NoError(t, err)
	assert.Equal(t, "[[1] [2 3] [4]]\n", out)

	_, _, err = run(t, "traverse", "--order", "zigzag", "1")
	assert.Error(t, err)
}

func TestScheduleCommand_Aging(t *testing.T) {
	path := writeFile(t, "jobs.yaml", `
algorithm: aging
aging:
  step: 0
processes:
  - {id: P1, arrival: 0, burst: 4, priority: 3}
  - {id: P2, arrival: 1, burst: 3, priority: 1}
  - {id: P3, arrival: 2, burst: 1, priority: 2}
`)
	out, _, err := run(t, "schedule", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "order: P1 P2 P3\n")
	assert.Contains(t, out, "P2 start=4 finish=7 waiting=3 turnaround=6\n")
	assert.Contains(t, out, "avg waiting=2.67 turnaround=5.33\n")
	assert.NotContains(t, out, "timeline")
}

func TestScheduleCommand_LeastSlack(t *testing.T) {
	path := writeFile(t, "jobs.yaml", `
tasks:
  - {id: A, arrival: 0, exec: 3, deadline: 10}
  - {id: B, arrival: 1, exec: 1, deadline: 2}
`)
	out, _, err := run(t, "schedule", "--algorithm", "lst", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "order: B A\n")
	assert.Contains(t, out, "timeline: A B A A\n")
}

func TestScheduleCommand_Errors(t *testing.T) {
	path := writeFile(t, "jobs.yaml", "algorithm: fifo\n")
	_, _, err := run(t, "schedule", "--file", path)
	assert.Error(t, err)

	path = writeFile(t, "empty.yaml", "algorithm: aging\n")
	_, _, err = run(t, "schedule", "--file", path)
	assert.ErrorIs(t, err, sched.ErrNoWork)
}

func TestRunSchedule_RejectsBadTuning(t *testing.T) {
	step := -1
	_, err := runSchedule(scheduleFile{Aging: agingConfig{Step: &step}})
	assert.Error(t, err)

	_, err = runSchedule(scheduleFile{Algorithm: "lst", Horizon: -3})
	assert.Error(t, err)
}

func TestLogLevelFlag(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-json", "merge", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"merged lists"`)

	_, _, err = run(t, "--log-level", "loud", "merge", "1")
	assert.Error(t, err)
}

func TestCommandErrors_ReturnedAndLoggedOnce(t *testing.T) {
	out, stderr, err := run(t, "merge", "2,1", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnsorted)
	assert.Empty(t, out)
	assert.Equal(t, 1, strings.Count(stderr, "command failed"))

	_, stderr, err = run(t, "juggler", "0")
	assert.ErrorIs(t, err, sequence.ErrZeroStart)
	assert.Equal(t, 1, strings.Count(stderr, "command=juggler"))
}
