package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const squareGraph = `4
0 0
3 0
3 3
0 3
0 1 1
1 2 1
2 3 1
0 3 10
`

func writeGraphFile(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestRunSucceedsOnSquareGraph(t *testing.T) {
	dir := chdirTemp(t)
	path := writeGraphFile(t, dir, squareGraph)

	code := run([]string{"run", path, "0", "1", "1", "--workers", "2"})
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(filepath.Join(dir, "AstarReport.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "hdastar-mp")
}

func TestRunWithMetricsAndTracingEnabled(t *testing.T) {
	dir := chdirTemp(t)
	path := writeGraphFile(t, dir, squareGraph)

	code := run([]string{"run", path, "0", "1", "1", "--workers", "2", "--metrics", "--trace"})
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(filepath.Join(dir, "AstarReport.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "hdastar-mp")
}

func TestRunBadSeedExitsWithBadArgument(t *testing.T) {
	dir := chdirTemp(t)
	path := writeGraphFile(t, dir, squareGraph)

	code := run([]string{"run", path, "not-a-number"})
	require.Equal(t, exitBadArgument, code)
}

func TestRunMissingFileExitsWithUsage(t *testing.T) {
	chdirTemp(t)
	code := run([]string{"run", "does-not-exist.txt", "0"})
	require.Equal(t, exitUsage, code)
}
