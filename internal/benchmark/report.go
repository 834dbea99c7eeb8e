package benchmark

import (
	"fmt"
	"sort"
	"strings"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// GenerateReport renders a single BenchmarkResult as fixed-width text,
// the Go analogue of generateReport's std::setw/std::setprecision table.
func GenerateReport(result domain.BenchmarkResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Benchmark Report ===\n")
	fmt.Fprintf(&b, "Algorithm: %s\n", result.Algorithm)
	fmt.Fprintf(&b, "Runs: %d\n", result.Runs)
	fmt.Fprintf(&b, "All Solved: %s\n\n", yesNo(result.AllSolved))

	fmt.Fprintf(&b, "Timing (ms):\n")
	fmt.Fprintf(&b, "  Min:     %12.6f\n", result.MinTimeMs)
	fmt.Fprintf(&b, "  Max:     %12.6f\n", result.MaxTimeMs)
	fmt.Fprintf(&b, "  Average: %12.6f\n", result.AvgTimeMs)
	fmt.Fprintf(&b, "  Std Dev: %12.6f\n\n", result.StdDevMs)

	runs := result.Runs
	if runs < 1 {
		runs = 1
	}
	fmt.Fprintf(&b, "Statistics:\n")
	fmt.Fprintf(&b, "  Total Iterations: %d\n", result.TotalIterations)
	fmt.Fprintf(&b, "  Total Backtracks: %d\n", result.TotalBacktracks)
	fmt.Fprintf(&b, "  Avg Iterations:   %d\n", result.TotalIterations/runs)
	fmt.Fprintf(&b, "  Avg Backtracks:   %d\n", result.TotalBacktracks/runs)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func sortedAlgos[V any](results map[domain.Algorithm]V) []domain.Algorithm {
	algos := make([]domain.Algorithm, 0, len(results))
	for a := range results {
		algos = append(algos, a)
	}
	sort.Slice(algos, func(i, j int) bool { return algos[i] < algos[j] })
	return algos
}

// GenerateComparisonReport renders a table comparing single-threaded
// BenchmarkResults across algorithms, marking the fastest average with "*".
func GenerateComparisonReport(results map[domain.Algorithm]domain.BenchmarkResult) string {
	var b strings.Builder
	b.WriteString("=== Algorithm Comparison ===\n\n")

	nameWidth := len("Algorithm")
	for _, r := range results {
		if len(string(r.Algorithm)) > nameWidth {
			nameWidth = len(string(r.Algorithm))
		}
	}
	nameWidth += 2

	fmt.Fprintf(&b, "%-*s%12s%12s%12s%12s%8s\n", nameWidth, "Algorithm", "Min (ms)", "Avg (ms)", "Max (ms)", "Std Dev", "Solved")
	b.WriteString(strings.Repeat("-", nameWidth+12*4+8) + "\n")

	bestAvg := -1.0
	for _, algo := range sortedAlgos(results) {
		r := results[algo]
		if bestAvg < 0 || r.AvgTimeMs < bestAvg {
			bestAvg = r.AvgTimeMs
		}
	}

	for _, algo := range sortedAlgos(results) {
		r := results[algo]
		marker := ""
		if r.AvgTimeMs == bestAvg {
			marker = " *"
		}
		fmt.Fprintf(&b, "%-*s%12.6f%12.6f%12.6f%12.6f%8s%s\n",
			nameWidth, r.Algorithm, r.MinTimeMs, r.AvgTimeMs, r.MaxTimeMs, r.StdDevMs, yesNo(r.AllSolved), marker)
	}

	b.WriteString("\n* = Best average time\n")
	return b.String()
}

// GenerateMultithreadReport renders one MultithreadResult, including a
// per-worker breakdown table.
func GenerateMultithreadReport(result domain.MultithreadResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Multi-threaded Benchmark Report ===\n")
	fmt.Fprintf(&b, "Algorithm: %s\n", result.Algorithm)
	fmt.Fprintf(&b, "Workers: %d\n", result.NumWorkers)
	fmt.Fprintf(&b, "Runs per worker: %d\n", result.RunsPerWorker)
	fmt.Fprintf(&b, "Total runs: %d\n", result.TotalRuns)
	fmt.Fprintf(&b, "All Solved: %s\n\n", yesNo(result.AllSolved))

	fmt.Fprintf(&b, "Performance:\n")
	fmt.Fprintf(&b, "  Wall time:      %12.3f ms\n", result.WallTimeMs)
	fmt.Fprintf(&b, "  Total CPU time: %12.3f ms\n", result.TotalCPUTimeMs)
	fmt.Fprintf(&b, "  Throughput:     %12.3f solves/sec\n", result.Throughput)
	fmt.Fprintf(&b, "  Speedup:        %12.3fx\n", result.Speedup)
	fmt.Fprintf(&b, "  Efficiency:     %12.3f%%\n\n", result.Efficiency*100)

	fmt.Fprintf(&b, "Per-worker statistics:\n")
	fmt.Fprintf(&b, "%-10s%12s%12s%12s\n", "Worker", "Avg (ms)", "Min (ms)", "Max (ms)")
	b.WriteString(strings.Repeat("-", 46) + "\n")

	for _, wr := range result.WorkerResults {
		fmt.Fprintf(&b, "%-10s%12.3f%12.3f%12.3f\n", fmt.Sprintf("W%d", wr.WorkerID), wr.AvgTimeMs, wr.MinTimeMs, wr.MaxTimeMs)
	}
	return b.String()
}

// GenerateMultithreadComparisonReport renders a table comparing
// multi-threaded results across algorithms, marking the highest
// throughput with "*".
func GenerateMultithreadComparisonReport(results map[domain.Algorithm]domain.MultithreadResult, cfg Config) string {
	var b strings.Builder
	b.WriteString("=== Multi-threaded Algorithm Comparison ===\n")
	fmt.Fprintf(&b, "Workers: %d | Runs per worker: %d\n\n", cfg.NumWorkers, cfg.Runs)

	nameWidth := len("Algorithm")
	for _, r := range results {
		if len(string(r.Algorithm)) > nameWidth {
			nameWidth = len(string(r.Algorithm))
		}
	}
	nameWidth += 2
	const colWidth = 14

	fmt.Fprintf(&b, "%-*s%*s%*s%*s%*s\n", nameWidth, "Algorithm", colWidth, "Wall (ms)", colWidth, "Throughput", colWidth, "Speedup", colWidth, "Efficiency")
	b.WriteString(strings.Repeat("-", nameWidth+colWidth*4) + "\n")

	bestThroughput := 0.0
	for _, r := range results {
		if r.Throughput > bestThroughput {
			bestThroughput = r.Throughput
		}
	}

	for _, algo := range sortedAlgos(results) {
		r := results[algo]
		marker := ""
		if r.Throughput == bestThroughput {
			marker = " *"
		}
		fmt.Fprintf(&b, "%-*s%*.2f%*s%*s%*s%s\n",
			nameWidth, r.Algorithm,
			colWidth, r.WallTimeMs,
			colWidth-2, fmt.Sprintf("%.2f/s", r.Throughput),
			colWidth-1, fmt.Sprintf("%.2fx", r.Speedup),
			colWidth-1, fmt.Sprintf("%.2f%%", r.Efficiency*100),
			marker)
	}

	b.WriteString("\n* = Best throughput\n")
	return b.String()
}
