package benchmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svwsudoku/sudokuengine/internal/domain"
	"github.com/svwsudoku/sudokuengine/internal/solver"
)

var puzzle9x9 = [][]domain.Cell{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func testPuzzle(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.NewBoardFromGrid(puzzle9x9, nil)
	require.NoError(t, err)
	return b
}

func TestRunProducesStatsAcrossRuns(t *testing.T) {
	cfg := Config{Runs: 3, WarmupRuns: 1, NumWorkers: 1}
	bm := New(cfg, solver.New)
	s, err := solver.New(domain.AlgorithmDancingLinks)
	require.NoError(t, err)

	result, err := bm.Run(context.Background(), testPuzzle(t), s)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Runs)
	assert.True(t, result.AllSolved)
	assert.GreaterOrEqual(t, result.MaxTimeMs, result.MinTimeMs)
	assert.GreaterOrEqual(t, result.AvgTimeMs, 0.0)
}

func TestCompareRunsBothAlgorithms(t *testing.T) {
	cfg := Config{Runs: 2, WarmupRuns: 0, NumWorkers: 1}
	bm := New(cfg, solver.New)

	results, err := bm.Compare(context.Background(), testPuzzle(t),
		[]domain.Algorithm{domain.AlgorithmBacktracking, domain.AlgorithmDancingLinks})
	require.NoError(t, err)

	assert.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.AllSolved)
	}
}

func TestRunMultithreadedAggregatesWorkers(t *testing.T) {
	cfg := Config{Runs: 2, WarmupRuns: 0, NumWorkers: 4}
	bm := New(cfg, solver.New)

	result, err := bm.RunMultithreaded(context.Background(), testPuzzle(t), domain.AlgorithmDancingLinks)
	require.NoError(t, err)

	assert.Equal(t, 4, result.NumWorkers)
	assert.Equal(t, 8, result.TotalRuns)
	assert.Len(t, result.WorkerResults, 4)
	assert.True(t, result.AllSolved)
	assert.Greater(t, result.WallTimeMs, 0.0)
	assert.Greater(t, result.Throughput, 0.0)
}

func TestGenerateReportIncludesAlgorithmName(t *testing.T) {
	cfg := Config{Runs: 1, WarmupRuns: 0, NumWorkers: 1}
	bm := New(cfg, solver.New)
	s, err := solver.New(domain.AlgorithmBacktracking)
	require.NoError(t, err)

	result, err := bm.Run(context.Background(), testPuzzle(t), s)
	require.NoError(t, err)

	report := GenerateReport(result)
	assert.Contains(t, report, string(domain.AlgorithmBacktracking))
	assert.Contains(t, report, "Benchmark Report")
}

func TestProfilerAccumulatesAcrossCalls(t *testing.T) {
	p := NewProfiler()
	func() {
		scope := Begin(p, "phase-a")
		defer scope.Close()
	}()
	func() {
		scope := Begin(p, "phase-a")
		defer scope.Close()
	}()

	report := p.GetReport()
	assert.Contains(t, report, "phase-a")
}
