package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/svwsudoku/sudokuengine/internal/adapters/sysinfo"
	sbenchmark "github.com/svwsudoku/sudokuengine/internal/benchmark"
	"github.com/svwsudoku/sudokuengine/internal/domain"
	"github.com/svwsudoku/sudokuengine/internal/solver"
)

type benchmarkFlags struct {
	inputFlags
	Algorithm string
	Runs      int
	Workers   int
	NoSysInfo bool
}

func newBenchmarkCmd(opts *Options) *cobra.Command {
	flags := &benchmarkFlags{}

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark a solving algorithm, single- or multi-threaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, opts, flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", "dlx", "Solving algorithm: dlx or backtrack")
	cmd.Flags().IntVarP(&flags.Runs, "runs", "b", 100, "Number of measured runs")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of parallel workers (0 = all logical CPUs)")
	cmd.Flags().BoolVar(&flags.NoSysInfo, "no-sysinfo", false, "Suppress system information banner")

	return cmd
}

func runBenchmark(cmd *cobra.Command, opts *Options, flags *benchmarkFlags) error {
	board, err := flags.resolveBoard()
	if err != nil {
		return err
	}

	algo := domain.Algorithm(flags.Algorithm)
	if _, err := solver.New(algo); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flags.NoSysInfo {
		info := sysinfo.Detect()
		fmt.Fprintf(out, "CPUs: %d  OS: %s/%s  Go: %s\n\n", info.LogicalCPUs, info.GOOS, info.GOARCH, info.GoVersion)
	}

	workers := flags.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfg := sbenchmark.DefaultConfig()
	cfg.Runs = flags.Runs
	cfg.NumWorkers = workers

	b := sbenchmark.New(cfg, solver.New)
	ctx := cmd.Context()

	s, err := solver.New(algo)
	if err != nil {
		return err
	}
	single, err := b.Run(ctx, board, s)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sbenchmark.GenerateReport(single))

	multi, err := b.RunMultithreaded(ctx, board, algo)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sbenchmark.GenerateMultithreadReport(multi))

	if opts.Verbose {
		fmt.Fprintln(out, b.Profile().GetReport())
	}

	opts.Log.Infof("benchmark complete: %d single-threaded runs, %d workers", flags.Runs, workers)
	return nil
}
