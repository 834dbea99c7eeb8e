package solver

import (
	"context"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// Solve runs a single backtracking search to completion, returning a
// populated SolveResult whether or not a solution was found.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (domain.SolveResult, error) {
	if b == nil {
		return domain.SolveResult{}, invalidBoard()
	}
	result := domain.SolveResult{Algorithm: s.Name()}

	timer := &domain.Timer{}
	timer.Start()

	if !b.IsValid() {
		timer.Stop()
		result.TimeMs = timer.ElapsedMs()
		result.ErrorMessage = "puzzle is unsolvable (initial board violates row/col/box constraints)"
		return result, nil
	}

	s.Reset()
	s.initialize(b)

	work := b.Clone()

	if s.useConstraintProp && !s.propagate(work) {
		timer.Stop()
		result.TimeMs = timer.ElapsedMs()
		result.ErrorMessage = "puzzle is unsolvable (constraint propagation failed)"
		return result, nil
	}

	solved := s.solveRecursive(ctx, work)
	timer.Stop()

	result.Solved = solved
	result.Iterations = s.iterations
	result.Backtracks = s.backtracks
	result.TimeMs = timer.ElapsedMs()
	if solved {
		result.Solution = work
	} else if ctx.Err() != nil {
		result.ErrorMessage = ctx.Err().Error()
	} else {
		result.ErrorMessage = "no solution found"
	}
	return result, nil
}

func (s *BacktrackingSolver) solveRecursive(ctx context.Context, b *domain.Board) bool {
	if ctx.Err() != nil {
		return false
	}
	s.iterations++

	if s.useConstraintProp && !s.propagate(b) {
		return false
	}

	row, col := s.selectBestCell(b)
	if row == -1 {
		return b.IsValid()
	}
	cellCandidates := s.candidates[row][col]
	if cellCandidates == 0 {
		return false
	}

	for v := 0; v < s.size; v++ {
		if cellCandidates&(1<<uint(v)) == 0 {
			continue
		}
		value := domain.Cell(v + 1)
		snap := s.snapshot(b)

		b.Grid()[row][col] = value
		s.updateCandidates(b, row, col, value)

		if s.solveRecursive(ctx, b) {
			return true
		}

		s.backtracks++
		s.restore(b, snap)
	}
	return false
}

// FindAllSolutions runs the same search but keeps collecting complete valid
// boards until max are found (or the search is exhausted when max<=0).
func (s *BacktrackingSolver) FindAllSolutions(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, error) {
	if b == nil {
		return nil, invalidBoard()
	}
	var solutions []*domain.Board
	if !b.IsValid() {
		return solutions, nil
	}

	s.Reset()
	s.initialize(b)

	work := b.Clone()

	if s.useConstraintProp && !s.propagate(work) {
		return solutions, nil
	}

	s.solveAll(ctx, work, &solutions, max)
	return solutions, nil
}

func (s *BacktrackingSolver) solveAll(ctx context.Context, b *domain.Board, solutions *[]*domain.Board, max int) bool {
	if ctx.Err() != nil {
		return true
	}
	s.iterations++

	if s.useConstraintProp && !s.propagate(b) {
		return false
	}

	row, col := s.selectBestCell(b)
	if row == -1 {
		if b.IsValid() {
			*solutions = append(*solutions, b.Clone())
			return max > 0 && len(*solutions) >= max
		}
		return false
	}
	cellCandidates := s.candidates[row][col]
	if cellCandidates == 0 {
		return false
	}

	for v := 0; v < s.size; v++ {
		if cellCandidates&(1<<uint(v)) == 0 {
			continue
		}
		value := domain.Cell(v + 1)
		snap := s.snapshot(b)

		b.Grid()[row][col] = value
		s.updateCandidates(b, row, col, value)

		if s.solveAll(ctx, b, solutions, max) {
			return true
		}

		s.backtracks++
		s.restore(b, snap)
	}
	return false
}

// HasUniqueSolution is FindAllSolutions(b, 2) reduced to len==1.
func (s *BacktrackingSolver) HasUniqueSolution(ctx context.Context, b *domain.Board) (bool, error) {
	solutions, err := s.FindAllSolutions(ctx, b, 2)
	if err != nil {
		return false, err
	}
	return len(solutions) == 1, nil
}

func invalidBoard() error {
	return domain.ErrInvalidArgument
}
