package ports

import (
	"context"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// Solver is the capability set every solving engine variant implements:
// Backtracking and DancingLinks. Both are stateful only in scratch/
// statistics terms — Reset clears that state without discarding the
// instance, so a benchmark worker can reuse one solver across many runs.
type Solver interface {
	// Solve returns a populated SolveResult for every call, solved or not;
	// it returns a non-nil error only for a contract violation (nil board,
	// dimension mismatch), never for ordinary unsolvability.
	Solve(ctx context.Context, b *domain.Board) (domain.SolveResult, error)

	// FindAllSolutions returns up to max distinct solved boards. Passing
	// max<=0 means unbounded (search until exhausted).
	FindAllSolutions(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, error)

	// HasUniqueSolution is FindAllSolutions(b, 2) reduced to len==1.
	HasUniqueSolution(ctx context.Context, b *domain.Board) (bool, error)

	// Name identifies the algorithm, e.g. "backtracking" or "dlx".
	Name() domain.Algorithm

	// Reset clears internal iteration/backtrack counters and any scratch
	// state built up by prior Solve calls. It never affects a board passed
	// to Solve, since solvers always work on their own clone.
	Reset()
}

// Factory constructs a fresh, independent Solver instance for the named
// algorithm. Each benchmark worker calls Factory once and keeps the result
// private — solvers are never shared across goroutines.
type Factory func(algo domain.Algorithm) (Solver, error)
