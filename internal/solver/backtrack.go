// Package solver implements the two solving engines: a backtracking search
// with constraint propagation, and Dancing Links / Algorithm X. Both are
// grounded on original_source's solver_backtrack.cpp and solver_dlx.cpp,
// generalized from fixed 9×9 to arbitrary N per domain.BoardDimension.
package solver

import (
	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// BacktrackingSolver is a recursive DFS solver with naked/hidden-single
// constraint propagation and MRV cell selection. A single instance is not
// safe for concurrent Solve calls — each goroutine (benchmark worker)
// should own its own instance, matching the "private solver per worker"
// requirement.
type BacktrackingSolver struct {
	size       int
	boxRows    int
	boxCols    int
	iterations int
	backtracks int

	candidates [][]uint32 // bit v set == v+1 is a legal candidate at (r,c)
	rowUsed    []uint32
	colUsed    []uint32
	boxUsed    []uint32

	useConstraintProp bool
	useMRV            bool
}

// NewBacktrackingSolver constructs a solver with propagation and MRV
// enabled, matching the default configuration in solver_backtrack.cpp.
func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{useConstraintProp: true, useMRV: true}
}

func (s *BacktrackingSolver) Name() domain.Algorithm { return domain.AlgorithmBacktracking }

// Reset clears counters and scratch state built by prior Solve calls.
func (s *BacktrackingSolver) Reset() {
	s.iterations = 0
	s.backtracks = 0
	s.candidates = nil
	s.rowUsed = nil
	s.colUsed = nil
	s.boxUsed = nil
}

func (s *BacktrackingSolver) initialize(b *domain.Board) {
	s.size = b.Size()
	s.boxRows = b.BoxRows()
	s.boxCols = b.BoxCols()
	n := s.size

	s.candidates = make([][]uint32, n)
	for i := range s.candidates {
		s.candidates[i] = make([]uint32, n)
	}
	s.rowUsed = make([]uint32, n)
	s.colUsed = make([]uint32, n)
	numBoxes := b.Dimension().NumBoxes()
	s.boxUsed = make([]uint32, numBoxes)

	grid := b.Grid()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := grid[i][j]; v != 0 {
				bit := uint32(1) << (v - 1)
				s.rowUsed[i] |= bit
				s.colUsed[j] |= bit
				s.boxUsed[b.BoxIndex(i, j)] |= bit
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if grid[i][j] != 0 {
				continue
			}
			used := s.rowUsed[i] | s.colUsed[j] | s.boxUsed[b.BoxIndex(i, j)]
			var cand uint32
			for v := 0; v < n; v++ {
				if used&(1<<uint(v)) == 0 {
					cand |= 1 << uint(v)
				}
			}
			s.candidates[i][j] = cand
		}
	}
}

// snapshot is the full state saved before trying a candidate, restored on
// backtrack — mirrors solveRecursive's "save FULL state" discipline rather
// than a minimal per-cell undo, since hidden-single propagation can touch
// cells far from the one just set.
type snapshot struct {
	grid       [][]domain.Cell
	candidates [][]uint32
	rowUsed    []uint32
	colUsed    []uint32
	boxUsed    []uint32
}

func (s *BacktrackingSolver) snapshot(b *domain.Board) snapshot {
	grid := b.Grid()
	sg := make([][]domain.Cell, len(grid))
	for i, row := range grid {
		sg[i] = append([]domain.Cell(nil), row...)
	}
	sc := make([][]uint32, len(s.candidates))
	for i, row := range s.candidates {
		sc[i] = append([]uint32(nil), row...)
	}
	return snapshot{
		grid:       sg,
		candidates: sc,
		rowUsed:    append([]uint32(nil), s.rowUsed...),
		colUsed:    append([]uint32(nil), s.colUsed...),
		boxUsed:    append([]uint32(nil), s.boxUsed...),
	}
}

func (s *BacktrackingSolver) restore(b *domain.Board, snap snapshot) {
	grid := b.Grid()
	for i, row := range snap.grid {
		copy(grid[i], row)
	}
	for i, row := range snap.candidates {
		copy(s.candidates[i], row)
	}
	copy(s.rowUsed, snap.rowUsed)
	copy(s.colUsed, snap.colUsed)
	copy(s.boxUsed, snap.boxUsed)
}

// updateCandidates marks value as used at (row,col) and strips it from
// every candidate set sharing that row, column, or box.
func (s *BacktrackingSolver) updateCandidates(b *domain.Board, row, col int, value domain.Cell) {
	v := uint(value - 1)
	bit := uint32(1) << v

	s.rowUsed[row] |= bit
	s.colUsed[col] |= bit
	s.boxUsed[b.BoxIndex(row, col)] |= bit
	s.candidates[row][col] = 0

	n := s.size
	for j := 0; j < n; j++ {
		s.candidates[row][j] &^= bit
	}
	for i := 0; i < n; i++ {
		s.candidates[i][col] &^= bit
	}
	r0, c0 := b.BoxStart(row, col)
	for di := 0; di < s.boxRows; di++ {
		for dj := 0; dj < s.boxCols; dj++ {
			s.candidates[r0+di][c0+dj] &^= bit
		}
	}
}

func popcount(x uint32) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

func trailingBit(x uint32) int {
	for v := 0; v < 32; v++ {
		if x&(1<<uint(v)) != 0 {
			return v
		}
	}
	return -1
}

// propagateNakedSingles fills every empty cell whose candidate set has
// exactly one bit set.
func (s *BacktrackingSolver) propagateNakedSingles(b *domain.Board) bool {
	changed := false
	n := s.size
	grid := b.Grid()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if grid[i][j] != 0 {
				continue
			}
			cand := s.candidates[i][j]
			if popcount(cand) == 1 {
				v := trailingBit(cand)
				value := domain.Cell(v + 1)
				grid[i][j] = value
				s.updateCandidates(b, i, j, value)
				changed = true
			}
		}
	}
	return changed
}

// propagateHiddenSingles fills, for each row/column/box, the one empty
// cell that is the only place a given value can still go.
func (s *BacktrackingSolver) propagateHiddenSingles(b *domain.Board) bool {
	changed := false
	n := s.size
	grid := b.Grid()

	for i := 0; i < n; i++ {
		for v := 0; v < n; v++ {
			if s.rowUsed[i]&(1<<uint(v)) != 0 {
				continue
			}
			count, lastCol := 0, -1
			for j := 0; j < n; j++ {
				if grid[i][j] == 0 && s.candidates[i][j]&(1<<uint(v)) != 0 {
					count++
					lastCol = j
				}
			}
			if count == 1 {
				value := domain.Cell(v + 1)
				grid[i][lastCol] = value
				s.updateCandidates(b, i, lastCol, value)
				changed = true
			}
		}
	}

	for j := 0; j < n; j++ {
		for v := 0; v < n; v++ {
			if s.colUsed[j]&(1<<uint(v)) != 0 {
				continue
			}
			count, lastRow := 0, -1
			for i := 0; i < n; i++ {
				if grid[i][j] == 0 && s.candidates[i][j]&(1<<uint(v)) != 0 {
					count++
					lastRow = i
				}
			}
			if count == 1 {
				value := domain.Cell(v + 1)
				grid[lastRow][j] = value
				s.updateCandidates(b, lastRow, j, value)
				changed = true
			}
		}
	}

	boxesPerRow := b.Dimension().BoxesPerRow()
	for boxIdx := 0; boxIdx < len(s.boxUsed); boxIdx++ {
		startRow := (boxIdx / boxesPerRow) * s.boxRows
		startCol := (boxIdx % boxesPerRow) * s.boxCols

		for v := 0; v < n; v++ {
			if s.boxUsed[boxIdx]&(1<<uint(v)) != 0 {
				continue
			}
			count, lastR, lastC := 0, -1, -1
			for di := 0; di < s.boxRows; di++ {
				for dj := 0; dj < s.boxCols; dj++ {
					r, c := startRow+di, startCol+dj
					if grid[r][c] == 0 && s.candidates[r][c]&(1<<uint(v)) != 0 {
						count++
						lastR, lastC = r, c
					}
				}
			}
			if count == 1 {
				value := domain.Cell(v + 1)
				grid[lastR][lastC] = value
				s.updateCandidates(b, lastR, lastC, value)
				changed = true
			}
		}
	}

	return changed
}

// propagate runs naked- then hidden-singles to a fixpoint, returning false
// if any empty cell is left with zero candidates (a contradiction).
func (s *BacktrackingSolver) propagate(b *domain.Board) bool {
	changed := true
	for changed {
		changed = false
		if s.propagateNakedSingles(b) {
			changed = true
		}
		if s.propagateHiddenSingles(b) {
			changed = true
		}
		grid := b.Grid()
		for i := 0; i < s.size; i++ {
			for j := 0; j < s.size; j++ {
				if grid[i][j] == 0 && s.candidates[i][j] == 0 {
					return false
				}
			}
		}
	}
	return true
}

// selectBestCell returns the empty cell with the fewest remaining
// candidates (MRV), or (-1,-1) if the board has no empty cell. Exits early
// the moment it finds a cell with exactly one candidate — it can't do
// better than that.
func (s *BacktrackingSolver) selectBestCell(b *domain.Board) (int, int) {
	if !s.useMRV {
		return b.FindFirstEmpty()
	}
	minCount := s.size + 1
	bestRow, bestCol := -1, -1
	grid := b.Grid()
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if grid[i][j] != 0 {
				continue
			}
			count := popcount(s.candidates[i][j])
			if count < minCount {
				minCount, bestRow, bestCol = count, i, j
				if minCount == 1 {
					return bestRow, bestCol
				}
			}
		}
	}
	return bestRow, bestCol
}
