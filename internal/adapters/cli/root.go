// Package cli exposes solve/benchmark/compare as cobra subcommands,
// grounded on operator-lifecycle-manager's cobra.Command{RunE: ...} +
// Flags() pattern (cmd/operator-cli/bundle/generate.go).
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options are the flags shared across subcommands.
type Options struct {
	Verbose bool
	Quiet   bool
	Log     *logrus.Logger
}

// NewRootCommand builds the "sudoku" root command with its three
// subcommands: solve, benchmark, compare.
func NewRootCommand() *cobra.Command {
	opts := &Options{Log: logrus.New()}

	root := &cobra.Command{
		Use:   "sudoku",
		Short: "High-performance Sudoku constraint solver",
		Long: `sudoku solves, benchmarks, and compares backtracking and
Dancing Links (DLX) engines against N×N Sudoku boards, N up to 32.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case opts.Quiet:
				opts.Log.SetLevel(logrus.ErrorLevel)
			case opts.Verbose:
				opts.Log.SetLevel(logrus.DebugLevel)
			default:
				opts.Log.SetLevel(logrus.InfoLevel)
			}
			opts.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Minimal output")

	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newBenchmarkCmd(opts))
	root.AddCommand(newCompareCmd(opts))

	return root
}
