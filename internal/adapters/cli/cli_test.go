package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveWithBuiltinPuzzle(t *testing.T) {
	out, err := execute(t, "solve", "--test", "9", "--algorithm", "dlx")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSolveWithBacktracking(t *testing.T) {
	out, err := execute(t, "solve", "-t", "9", "-a", "backtrack")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSolveRequiresAnInputSource(t *testing.T) {
	_, err := execute(t, "solve")
	assert.Error(t, err)
}

func TestSolveJSONHelpDoesNotRequireInput(t *testing.T) {
	out, err := execute(t, "solve", "--json-help")
	require.NoError(t, err)
	assert.Contains(t, out, "puzzle")
}

func TestSolveRejectsUnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "solve", "-t", "9", "-a", "quantum")
	assert.Error(t, err)
}

func TestBenchmarkRunsAgainstBuiltinPuzzle(t *testing.T) {
	out, err := execute(t, "benchmark", "-t", "9", "-a", "dlx", "-b", "2", "-w", "2", "--no-sysinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark Report")
	assert.Contains(t, out, "Multi-threaded")
}

func TestCompareRunsBothAlgorithms(t *testing.T) {
	out, err := execute(t, "compare", "-t", "9", "-b", "2", "-w", "2", "--no-sysinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm Comparison")
	assert.Contains(t, out, "Multi-threaded Algorithm Comparison")
}

func TestSolveAcceptsVerboseFlag(t *testing.T) {
	out, err := execute(t, "solve", "-t", "9", "-v")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
