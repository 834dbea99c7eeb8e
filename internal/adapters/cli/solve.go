package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	adapterjson "github.com/svwsudoku/sudokuengine/internal/adapters/json"
	"github.com/svwsudoku/sudokuengine/internal/domain"
	"github.com/svwsudoku/sudokuengine/internal/solver"
)

type solveFlags struct {
	inputFlags
	Algorithm string
	Output    string
	Unique    bool
	JSONHelp  bool
	NoSysInfo bool
}

func newSolveCmd(opts *Options) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.JSONHelp {
				fmt.Fprintln(cmd.OutOrStdout(), adapterjson.FormatHelp())
				return nil
			}
			return runSolve(cmd, opts, flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", "dlx", "Solving algorithm: dlx or backtrack")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write solution to a JSON file")
	cmd.Flags().BoolVarP(&flags.Unique, "unique", "u", false, "Also check whether the solution is unique")
	cmd.Flags().BoolVar(&flags.JSONHelp, "json-help", false, "Show JSON input format help and exit")
	cmd.Flags().BoolVar(&flags.NoSysInfo, "no-sysinfo", false, "No effect: solve prints no system information banner")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *Options, flags *solveFlags) error {
	board, err := flags.resolveBoard()
	if err != nil {
		return err
	}

	s, err := solver.New(domain.Algorithm(flags.Algorithm))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := s.Solve(ctx, board)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Solved {
		opts.Log.Errorf("unsolvable: %s", result.ErrorMessage)
		fmt.Fprintf(out, "No solution found: %s\n", result.ErrorMessage)
	} else {
		fmt.Fprintln(out, result.Solution.String())
		opts.Log.Infof("solved in %.3fms, %d iterations, %d backtracks", result.TimeMs, result.Iterations, result.Backtracks)
	}

	if flags.Unique && result.Solved {
		unique, err := s.HasUniqueSolution(ctx, board)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Unique solution: %v\n", unique)
	}

	if flags.Output != "" {
		if err := adapterjson.SaveSolutionToFile(board, result, flags.Output, true); err != nil {
			return err
		}
		opts.Log.Infof("wrote solution to %s", flags.Output)
	}

	if !result.Solved {
		return fmt.Errorf("puzzle is unsolvable")
	}
	return nil
}
