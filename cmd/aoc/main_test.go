package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/internal/runner"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func inputDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"input02.txt": "A Y\nB X\nC Z\n",
		"input06.txt": "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n",
		"input12.txt": "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dir
}

func TestRunCmd_SelectedDays(t *testing.T) {
	out, logs, err := execute(t, "run", "--inputs", inputDir(t), "-v", "day12", "2", "6")
	require.NoError(t, err)
	assert.Equal(t, "day02: 15, 12\nday06: 7, 19\nday12: 31, 29\n", out)
	assert.Contains(t, logs, "solved")
	assert.Contains(t, logs, "running")
}

func TestRunCmd_MissingInput(t *testing.T) {
	_, _, err := execute(t, "run", "--inputs", inputDir(t), "--workers", "1", "1")
	assert.ErrorIs(t, err, runner.ErrInputUnavailable)
}

func TestRunCmd_BadArgs(t *testing.T) {
	for _, arg := range []string{"0", "26", "dayx", "twelve"} {
		_, _, err := execute(t, "run", arg)
		assert.ErrorContains(t, err, "invalid day", "arg %q", arg)
	}

	_, _, err := execute(t, "run", "--workers", "0", "1")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "day01  Calorie Counting\n"+
		"day02  Rock Paper Scissors\n"+
		"day03  Rucksack Reorganization\n"+
		"day04  Camp Cleanup\n"+
		"day05  Supply Stacks\n"+
		"day06  Tuning Trouble\n"+
		"day12  Hill Climbing Algorithm\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := inputDir(t)
	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\nworkers: 1\n"), 0o644))

	out, _, err := execute(t, "--config", cfgPath, "run", "12")
	require.NoError(t, err)
	assert.Equal(t, "day12: 31, 29\n", out)
}

func TestConfigFile_InputPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day6.in"), []byte("bvwbjplbgvbhsrlpgdmjqwftvncz\n"), 0o644))
	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\ninput_pattern: day%d.in\n"), 0o644))

	out, _, err := execute(t, "--config", cfgPath, "run", "6")
	require.NoError(t, err)
	assert.Equal(t, "day06: 5, 23\n", out)
}
