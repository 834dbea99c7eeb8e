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

type compareFlags struct {
	inputFlags
	Runs      int
	Workers   int
	NoSysInfo bool
}

func newCompareCmd(opts *Options) *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the backtracking and Dancing Links engines on the same puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&flags.Runs, "runs", "b", 100, "Number of measured runs per algorithm")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of parallel workers (0 = all logical CPUs)")
	cmd.Flags().BoolVar(&flags.NoSysInfo, "no-sysinfo", false, "Suppress system information banner")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *Options, flags *compareFlags) error {
	board, err := flags.resolveBoard()
	if err != nil {
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

	algos := []domain.Algorithm{domain.AlgorithmBacktracking, domain.AlgorithmDancingLinks}

	cfg := sbenchmark.DefaultConfig()
	cfg.Runs = flags.Runs
	cfg.NumWorkers = workers

	b := sbenchmark.New(cfg, solver.New)
	ctx := cmd.Context()

	single, err := b.Compare(ctx, board, algos)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sbenchmark.GenerateComparisonReport(single))

	multi, err := b.CompareMultithreaded(ctx, board, algos)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sbenchmark.GenerateMultithreadComparisonReport(multi, cfg))

	opts.Log.Infof("comparison complete across %d algorithms", len(algos))
	return nil
}
