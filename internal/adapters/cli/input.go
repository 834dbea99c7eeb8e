package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/svwsudoku/sudokuengine/internal/adapters/json"
	"github.com/svwsudoku/sudokuengine/internal/domain"
	"github.com/svwsudoku/sudokuengine/internal/puzzles"
)

// inputFlags are the puzzle-selection flags common to solve/benchmark/
// compare: at least one of Input, Puzzle, or TestSize must be set; when
// several are, resolveBoard uses the first in that order.
type inputFlags struct {
	Input    string
	Puzzle   string
	TestSize int
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Input, "input", "i", "", "Input file (JSON)")
	fs.StringVarP(&f.Puzzle, "puzzle", "p", "", "Puzzle string (row-major, '.' or '0' for empty)")
	fs.IntVarP(&f.TestSize, "test", "t", 0, "Use a built-in test puzzle: 9, 16, or 25")
}

// resolveBoard loads a board from whichever of Input/Puzzle/TestSize was
// set, in that priority order.
func (f *inputFlags) resolveBoard() (*domain.Board, error) {
	switch {
	case f.Input != "":
		return json.LoadFromFile(f.Input)
	case f.Puzzle != "":
		return json.LoadFromString(fmt.Sprintf(`{"puzzle": %q}`, f.Puzzle))
	case f.TestSize != 0:
		return puzzles.Board(f.TestSize)
	default:
		return nil, errors.Wrapf(domain.ErrInvalidArgument, "one of --input, --puzzle, or --test is required")
	}
}
