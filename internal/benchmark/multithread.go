package benchmark

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// Fixed baseline sample size, independent of Config.Runs, so speedup stays
// comparable across benchmark configurations. Ported verbatim from
// runMultithreaded's BASELINE_WARMUP/BASELINE_RUNS constants.
const (
	baselineWarmup = 10
	baselineRuns   = 100
)

// workerTask runs Config.Runs measured solves of puzzle (no warm-up — that
// happens once up front in measureBaseline) on a private solver instance,
// recording sections into a private Profiler rather than bm.profiler:
// bm.profiler's maps are not synchronized, and every worker runs
// concurrently in its own goroutine, so sharing it here would be an
// unguarded concurrent map write. Returns the same statistics Run would,
// plus the worker id.
func (bm *Benchmark) workerTask(ctx context.Context, puzzle *domain.Board, algo domain.Algorithm, workerID int) (domain.WorkerResult, error) {
	solver, err := bm.factory(algo)
	if err != nil {
		return domain.WorkerResult{}, err
	}
	result, err := bm.run(ctx, puzzle, solver, NewProfiler(), 0, bm.config.Runs)
	if err != nil {
		return domain.WorkerResult{}, err
	}
	return domain.WorkerResult{WorkerID: workerID, BenchmarkResult: result}, nil
}

// measureBaseline times BASELINE_RUNS solves on a single private solver,
// after BASELINE_WARMUP discarded warm-up solves, and returns the average
// milliseconds per solve. Measured before any worker launches, so worker
// contention never pollutes the single-thread reference point.
func (bm *Benchmark) measureBaseline(ctx context.Context, puzzle *domain.Board, algo domain.Algorithm) (float64, error) {
	solver, err := bm.factory(algo)
	if err != nil {
		return 0, err
	}
	for i := 0; i < baselineWarmup; i++ {
		solver.Reset()
		if _, err := solver.Solve(ctx, puzzle); err != nil {
			return 0, err
		}
	}

	timer := &domain.Timer{}
	timer.Start()
	for i := 0; i < baselineRuns; i++ {
		solver.Reset()
		if _, err := solver.Solve(ctx, puzzle); err != nil {
			return 0, err
		}
	}
	timer.Stop()
	return timer.ElapsedMs() / float64(baselineRuns), nil
}

// RunMultithreaded dispatches Config.NumWorkers workers, each with its own
// solver instance, each performing Config.Runs solves, and compares wall
// time against a fixed single-threaded baseline measured up front.
func (bm *Benchmark) RunMultithreaded(ctx context.Context, puzzle *domain.Board, algo domain.Algorithm) (domain.MultithreadResult, error) {
	result := domain.MultithreadResult{
		Algorithm:     algo,
		NumWorkers:    bm.config.NumWorkers,
		RunsPerWorker: bm.config.Runs,
		TotalRuns:     bm.config.NumWorkers * bm.config.Runs,
	}

	baseline, err := bm.measureBaseline(ctx, puzzle, algo)
	if err != nil {
		return result, err
	}
	result.BaselineTimeMs = baseline

	workerResults := make([]domain.WorkerResult, bm.config.NumWorkers)

	timer := &domain.Timer{}
	timer.Start()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < bm.config.NumWorkers; w++ {
		w := w
		g.Go(func() error {
			wr, err := bm.workerTask(gctx, puzzle, algo, w)
			if err != nil {
				return err
			}
			workerResults[w] = wr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	timer.Stop()
	result.WallTimeMs = timer.ElapsedMs()
	result.WorkerResults = workerResults

	result.AllSolved = true
	for _, wr := range workerResults {
		result.TotalCPUTimeMs += wr.AvgTimeMs * float64(wr.Runs)
		if !wr.AllSolved {
			result.AllSolved = false
		}
	}

	if result.TotalRuns > 0 {
		result.AvgTimePerSolve = result.TotalCPUTimeMs / float64(result.TotalRuns)
	}
	if result.WallTimeMs > 0 {
		result.Throughput = (float64(result.TotalRuns) / result.WallTimeMs) * 1000.0
	}
	expectedSingleThreadTime := baseline * float64(result.TotalRuns)
	if result.WallTimeMs > 0 {
		result.Speedup = expectedSingleThreadTime / result.WallTimeMs
	}
	if result.NumWorkers > 0 {
		result.Efficiency = result.Speedup / float64(result.NumWorkers)
	}

	return result, nil
}

// CompareMultithreaded runs RunMultithreaded for each named algorithm.
func (bm *Benchmark) CompareMultithreaded(ctx context.Context, puzzle *domain.Board, algos []domain.Algorithm) (map[domain.Algorithm]domain.MultithreadResult, error) {
	results := make(map[domain.Algorithm]domain.MultithreadResult, len(algos))
	for _, algo := range algos {
		r, err := bm.RunMultithreaded(ctx, puzzle, algo)
		if err != nil {
			return nil, err
		}
		results[algo] = r
	}
	return results, nil
}
