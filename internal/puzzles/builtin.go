// Package puzzles holds the stable, hand-verified built-in test boards
// selectable from the CLI as fixed constants, reproduced verbatim from
// original_source/src/main.cpp's BuiltinPuzzles namespace.
package puzzles

import (
	"fmt"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

var grid9x9 = [][]domain.Cell{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var grid16x16 = [][]domain.Cell{
	{0, 0, 0, 0, 0, 0, 0, 15, 0, 10, 0, 0, 0, 12, 1, 0},
	{0, 1, 10, 0, 0, 0, 0, 3, 0, 0, 16, 0, 0, 0, 0, 0},
	{3, 0, 0, 8, 12, 1, 0, 14, 0, 0, 0, 0, 0, 0, 0, 6},
	{0, 2, 0, 0, 0, 0, 0, 0, 14, 0, 0, 15, 0, 0, 0, 0},
	{0, 0, 0, 3, 15, 0, 0, 0, 8, 1, 0, 0, 5, 7, 0, 0},
	{4, 0, 0, 10, 1, 0, 0, 0, 11, 0, 0, 7, 15, 0, 0, 0},
	{0, 0, 8, 1, 7, 16, 0, 0, 0, 14, 0, 6, 12, 0, 0, 0},
	{0, 0, 0, 0, 14, 0, 13, 12, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 11, 0, 0, 0, 0, 0, 6, 7, 0, 14, 0, 0, 0, 0},
	{0, 0, 0, 2, 3, 0, 11, 0, 0, 0, 10, 1, 14, 9, 0, 0},
	{0, 0, 0, 14, 6, 0, 0, 10, 0, 0, 0, 4, 11, 0, 0, 5},
	{0, 0, 3, 13, 0, 0, 4, 16, 0, 0, 0, 9, 6, 0, 0, 0},
	{0, 0, 0, 0, 11, 0, 0, 6, 0, 0, 0, 0, 0, 0, 2, 0},
	{10, 0, 0, 0, 0, 0, 0, 0, 15, 0, 1, 6, 16, 0, 0, 7},
	{0, 0, 0, 0, 0, 15, 0, 0, 2, 0, 0, 0, 0, 4, 12, 0},
	{0, 16, 15, 0, 0, 0, 3, 0, 7, 0, 0, 0, 0, 0, 0, 0},
}

// build25x25 lays down the same five diagonal-band seed values per row
// original_source's get25x25() hand-assigns cell by cell.
func build25x25() [][]domain.Cell {
	grid := make([][]domain.Cell, 25)
	for i := range grid {
		grid[i] = make([]domain.Cell, 25)
	}
	type seed struct {
		row, col int
		val      domain.Cell
	}
	seeds := []seed{
		{0, 0, 1}, {0, 5, 6}, {0, 10, 11}, {0, 15, 16}, {0, 20, 21},
		{1, 1, 7}, {1, 6, 12}, {1, 11, 17}, {1, 16, 22}, {1, 21, 2},
		{2, 2, 13}, {2, 7, 18}, {2, 12, 23}, {2, 17, 3}, {2, 22, 8},
		{3, 3, 19}, {3, 8, 24}, {3, 13, 4}, {3, 18, 9}, {3, 23, 14},
		{4, 4, 25}, {4, 9, 5}, {4, 14, 10}, {4, 19, 15}, {4, 24, 20},
		{5, 0, 2}, {5, 5, 7}, {5, 10, 12}, {5, 15, 17}, {5, 20, 22},
		{6, 1, 8}, {6, 6, 13}, {6, 11, 18}, {6, 16, 23}, {6, 21, 3},
		{7, 2, 14}, {7, 7, 19}, {7, 12, 24}, {7, 17, 4}, {7, 22, 9},
		{8, 3, 20}, {8, 8, 25}, {8, 13, 5}, {8, 18, 10}, {8, 23, 15},
		{9, 4, 1}, {9, 9, 6}, {9, 14, 11}, {9, 19, 16}, {9, 24, 21},
		{10, 0, 3}, {10, 5, 8}, {10, 10, 13}, {10, 15, 18}, {10, 20, 23},
		{11, 1, 9}, {11, 6, 14}, {11, 11, 19}, {11, 16, 24}, {11, 21, 4},
		{12, 2, 15}, {12, 7, 20}, {12, 12, 25}, {12, 17, 5}, {12, 22, 10},
		{13, 3, 21}, {13, 8, 1}, {13, 13, 6}, {13, 18, 11}, {13, 23, 16},
		{14, 4, 2}, {14, 9, 7}, {14, 14, 12}, {14, 19, 17}, {14, 24, 22},
		{15, 0, 4}, {15, 5, 9}, {15, 10, 14}, {15, 15, 19}, {15, 20, 24},
		{16, 1, 10}, {16, 6, 15}, {16, 11, 20}, {16, 16, 25}, {16, 21, 5},
		{17, 2, 16}, {17, 7, 21}, {17, 12, 1}, {17, 17, 6}, {17, 22, 11},
		{18, 3, 22}, {18, 8, 2}, {18, 13, 7}, {18, 18, 12}, {18, 23, 17},
		{19, 4, 3}, {19, 9, 8}, {19, 14, 13}, {19, 19, 18}, {19, 24, 23},
		{20, 0, 5}, {20, 5, 10}, {20, 10, 15}, {20, 15, 20}, {20, 20, 25},
		{21, 1, 11}, {21, 6, 16}, {21, 11, 21}, {21, 16, 1}, {21, 21, 6},
		{22, 2, 17}, {22, 7, 22}, {22, 12, 2}, {22, 17, 7}, {22, 22, 12},
		{23, 3, 23}, {23, 8, 3}, {23, 13, 8}, {23, 18, 13}, {23, 23, 18},
		{24, 4, 4}, {24, 9, 9}, {24, 14, 14}, {24, 19, 19}, {24, 24, 24},
	}
	for _, s := range seeds {
		grid[s.row][s.col] = s.val
	}
	return grid
}

// GetBySize returns the built-in grid and dimension for the given size.
// Supported sizes are 9, 16, and 25, mirroring getBySize's exact switch.
func GetBySize(size int) ([][]domain.Cell, domain.BoardDimension, error) {
	switch size {
	case 9:
		return cloneGrid(grid9x9), domain.Standard9x9(), nil
	case 16:
		return cloneGrid(grid16x16), domain.Standard16x16(), nil
	case 25:
		return build25x25(), domain.Standard25x25(), nil
	default:
		return nil, domain.BoardDimension{}, fmt.Errorf("%w: unsupported test size %d (supported: 9, 16, 25)", domain.ErrInvalidArgument, size)
	}
}

// Board is a convenience wrapper around GetBySize returning a ready Board.
func Board(size int) (*domain.Board, error) {
	grid, dim, err := GetBySize(size)
	if err != nil {
		return nil, err
	}
	return domain.NewBoardFromGrid(grid, &dim)
}

// Description returns the human-readable label getDescription() prints.
func Description(size int) string {
	switch size {
	case 9:
		return "9x9 Classic (3x3 boxes)"
	case 16:
		return "16x16 Extended (4x4 boxes)"
	case 25:
		return "25x25 Mega (5x5 boxes) - Heavy benchmark"
	default:
		return "Unknown"
	}
}

func cloneGrid(grid [][]domain.Cell) [][]domain.Cell {
	out := make([][]domain.Cell, len(grid))
	for i, row := range grid {
		out[i] = append([]domain.Cell(nil), row...)
	}
	return out
}
