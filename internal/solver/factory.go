package solver

import (
	"fmt"

	"github.com/svwsudoku/sudokuengine/internal/domain"
	"github.com/svwsudoku/sudokuengine/internal/ports"
)

// New constructs a fresh Solver for the named algorithm, mirroring
// original_source's SolverFactory::create — the "hybrid"/"auto" cases both
// resolve to DLX there, and do here too.
func New(algo domain.Algorithm) (ports.Solver, error) {
	switch algo {
	case domain.AlgorithmBacktracking, "backtrack":
		return NewBacktrackingSolver(), nil
	case domain.AlgorithmDancingLinks, "", "auto", "hybrid":
		return NewDLXSolver(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", domain.ErrInvalidArgument, algo)
	}
}
