// Package json parses and emits boards in four JSON shapes, grounded on
// original_source's JSONHandler (include/json_handler.hpp,
// src/json_handler.cpp). Uses stdlib encoding/json: no third-party JSON
// library appears directly imported anywhere in the example pack, only
// declared transitively by unrelated
// tooling, so there is nothing in-pack to ground a swap on.
package json

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// LoadFromFile reads a file and parses it with LoadFromString.
func LoadFromFile(path string) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrIO, "reading %s: %v", path, err)
	}
	return LoadFromString(string(data))
}

// LoadFromString parses one of the four supported JSON formats.
func LoadFromString(s string) (*domain.Board, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, errors.Wrapf(domain.ErrParse, "invalid JSON: %v", err)
	}
	return LoadFromValue(raw)
}

// LoadFromValue parses an already-decoded JSON value (map, array, or
// string root), dispatching on shape exactly as loadFromJSON does.
func LoadFromValue(raw interface{}) (*domain.Board, error) {
	var grid [][]domain.Cell
	var detectedSize int
	var err error

	switch v := raw.(type) {
	case map[string]interface{}:
		explicitSize := 0
		if sz, ok := v["size"]; ok {
			if n, serr := asInt(sz); serr == nil {
				explicitSize = n
			}
		}
		switch {
		case v["grid"] != nil:
			grid, detectedSize, err = parseGridFieldSized(v["grid"], explicitSize)
		case v["puzzle"] != nil:
			s, ok := v["puzzle"].(string)
			if !ok {
				return nil, errors.Wrapf(domain.ErrParse, "puzzle field must be a string")
			}
			grid, detectedSize, err = parseSingleStringSized(s, explicitSize)
		case v["board"] != nil:
			grid, detectedSize, err = parseGridFieldSized(v["board"], explicitSize)
		default:
			return nil, errors.Wrapf(domain.ErrParse, `JSON object must contain "grid", "puzzle", or "board"`)
		}
		if err != nil {
			return nil, err
		}
		dim, derr := detectDimension(v, detectedSize)
		if derr != nil {
			return nil, derr
		}
		return domain.NewBoardFromGrid(grid, &dim)

	case []interface{}:
		grid, detectedSize, err = parseArrayField(v)
		if err != nil {
			return nil, err
		}
		dim := domain.DimensionFromSize(detectedSize)
		return domain.NewBoardFromGrid(grid, &dim)

	case string:
		grid, detectedSize, err = parseSingleString(v)
		if err != nil {
			return nil, err
		}
		dim := domain.DimensionFromSize(detectedSize)
		return domain.NewBoardFromGrid(grid, &dim)

	default:
		return nil, errors.Wrapf(domain.ErrParse, "unrecognized JSON root shape")
	}
}

// parseGridField dispatches "grid"/"board" contents: 2D array, array of
// strings, or a flat numeric array whose length is a perfect square.
func parseGridField(field interface{}) ([][]domain.Cell, int, error) {
	return parseGridFieldSized(field, 0)
}

// parseGridFieldSized is parseGridField honoring an explicit "size" hint
// when the field is a single packed string (2D/string-array shapes already
// carry their own size in the array length).
func parseGridFieldSized(field interface{}, explicitSize int) ([][]domain.Cell, int, error) {
	switch v := field.(type) {
	case string:
		return parseSingleStringSized(v, explicitSize)
	case []interface{}:
		return parseArrayField(v)
	default:
		return nil, 0, errors.Wrapf(domain.ErrParse, "grid field must be a string or array")
	}
}

func parseArrayField(arr []interface{}) ([][]domain.Cell, int, error) {
	if len(arr) == 0 {
		return nil, 0, errors.Wrapf(domain.ErrParse, "grid array is empty")
	}
	switch arr[0].(type) {
	case []interface{}:
		return parseGrid2D(arr)
	case string:
		return parseGridStrings(arr)
	case float64:
		total := len(arr)
		possible := int(math.Sqrt(float64(total)))
		if possible*possible != total {
			return nil, 0, errors.Wrapf(domain.ErrParse, "flat grid length %d is not a perfect square", total)
		}
		var sb strings.Builder
		for _, val := range arr {
			f, ok := val.(float64)
			if !ok {
				return nil, 0, errors.Wrapf(domain.ErrParse, "flat grid must contain only numbers")
			}
			sb.WriteString(cellChar(domain.Cell(int(f))))
		}
		return parseSingleString(sb.String())
	default:
		return nil, 0, errors.Wrapf(domain.ErrParse, "unrecognized grid row shape")
	}
}

func parseGrid2D(arr []interface{}) ([][]domain.Cell, int, error) {
	size := len(arr)
	grid := make([][]domain.Cell, size)
	for i, rawRow := range arr {
		row, ok := rawRow.([]interface{})
		if !ok {
			return nil, 0, errors.Wrapf(domain.ErrParse, "row %d is not an array", i)
		}
		gridRow := make([]domain.Cell, 0, len(row))
		for _, cell := range row {
			var val int
			switch c := cell.(type) {
			case float64:
				val = int(c)
			case string:
				if len(c) > 0 && c[0] >= '1' && c[0] <= '9' {
					n, err := strconv.Atoi(c)
					if err == nil {
						val = n
					}
				}
			}
			gridRow = append(gridRow, domain.Cell(val))
		}
		grid[i] = gridRow
	}
	return grid, size, nil
}

func parseGridStrings(arr []interface{}) ([][]domain.Cell, int, error) {
	size := len(arr)
	grid := make([][]domain.Cell, size)
	for i, rawRow := range arr {
		rowStr, ok := rawRow.(string)
		if !ok {
			return nil, 0, errors.Wrapf(domain.ErrParse, "row %d is not a string", i)
		}
		gridRow := make([]domain.Cell, 0, len(rowStr))
		for _, c := range rowStr {
			gridRow = append(gridRow, charToCell(c))
		}
		grid[i] = gridRow
	}
	return grid, size, nil
}

// charToCell maps one puzzle character: digits 1-9 are themselves, '.'/
// '0'/'_'/space are empty, and A-Z/a-z are 10-35 for boards larger than 9.
// Any other character is read as an empty cell; it is not rejected.
func charToCell(c rune) domain.Cell {
	switch {
	case c >= '1' && c <= '9':
		return domain.Cell(c - '0')
	case c == '.' || c == '0' || c == ' ' || c == '_':
		return 0
	case c >= 'A' && c <= 'Z':
		return domain.Cell(10 + (c - 'A'))
	case c >= 'a' && c <= 'z':
		return domain.Cell(10 + (c - 'a'))
	default:
		return 0
	}
}

func parseSingleString(s string) ([][]domain.Cell, int, error) {
	return parseSingleStringSized(s, 0)
}

// parseSingleStringSized reshapes s into a size×size grid. When explicitSize
// is 0 it derives size from √length, matching the plain single-string
// format; when explicitSize is set (an explicit "size" field alongside the
// puzzle string), it is used as-is and length must equal size*size — the
// string is never reinterpreted at a different, length-derived size.
func parseSingleStringSized(s string, explicitSize int) ([][]domain.Cell, int, error) {
	var cleaned strings.Builder
	for _, c := range s {
		if !unicode.IsSpace(c) {
			cleaned.WriteRune(c)
		}
	}
	clean := cleaned.String()
	length := len(clean)

	size := explicitSize
	if size <= 0 {
		size = int(math.Sqrt(float64(length)))
	}
	if size*size != length {
		return nil, 0, errors.Wrapf(domain.ErrParse, "puzzle string length %d does not match size %d (size*size=%d)", length, size, size*size)
	}

	runes := []rune(clean)
	grid := make([][]domain.Cell, size)
	for i := 0; i < size; i++ {
		row := make([]domain.Cell, size)
		for j := 0; j < size; j++ {
			row[j] = charToCell(runes[i*size+j])
		}
		grid[i] = row
	}
	return grid, size, nil
}

// detectDimension reads explicit size/box_rows/box_cols or a box_size
// shorthand, falling back to auto-derivation from the grid's side length.
// A lone "size" without both "box_rows" and "box_cols" is not treated as
// explicit dimensioning — it falls through to DimensionFromSize(gridSize)
// like no hint were given at all.
func detectDimension(v map[string]interface{}, gridSize int) (domain.BoardDimension, error) {
	if sz, okS := v["size"]; okS {
		if br, okR := v["box_rows"]; okR {
			if bc, okC := v["box_cols"]; okC {
				size, e1 := asInt(sz)
				boxRows, e2 := asInt(br)
				boxCols, e3 := asInt(bc)
				if e1 != nil || e2 != nil || e3 != nil {
					return domain.BoardDimension{}, errors.Wrapf(domain.ErrParse, "size/box_rows/box_cols must be numbers")
				}
				return domain.BoardDimension{Size: size, BoxRows: boxRows, BoxCols: boxCols}, nil
			}
		}
	}
	if bs, ok := v["box_size"]; ok {
		boxSize, err := asInt(bs)
		if err != nil {
			return domain.BoardDimension{}, errors.Wrapf(domain.ErrParse, "box_size must be a number")
		}
		return domain.BoardDimension{Size: gridSize, BoxRows: boxSize, BoxCols: boxSize}, nil
	}
	return domain.DimensionFromSize(gridSize), nil
}

func asInt(v interface{}) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("not a number")
	}
	return int(f), nil
}

// ToJSON renders a board as the map that (pretty-)marshals to the "grid" +
// "grid_string" + dimension shape toJSON produces.
func ToJSON(b *domain.Board) map[string]interface{} {
	n := b.Size()
	gridArr := make([][]int, n)
	rows := make([]string, n)
	grid := b.Grid()
	for i := 0; i < n; i++ {
		gridArr[i] = make([]int, n)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			gridArr[i][j] = int(grid[i][j])
			sb.WriteString(cellChar(grid[i][j]))
		}
		rows[i] = sb.String()
	}
	return map[string]interface{}{
		"size":        b.Size(),
		"box_rows":    b.BoxRows(),
		"box_cols":    b.BoxCols(),
		"grid":        gridArr,
		"grid_string": rows,
	}
}

func cellChar(v domain.Cell) string {
	switch {
	case v == 0:
		return "."
	case v < 10:
		return string(rune('0' + v))
	default:
		return string(rune('A' + int(v) - 10))
	}
}

// ToString marshals ToJSON(b), pretty-printed with two-space indent when
// pretty is true.
func ToString(b *domain.Board, pretty bool) (string, error) {
	data := ToJSON(b)
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SaveToFile writes ToString's output to path.
func SaveToFile(b *domain.Board, path string, pretty bool) error {
	s, err := ToString(b, pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return errors.Wrapf(domain.ErrIO, "writing %s: %v", path, err)
	}
	return nil
}

// SaveSolutionToFile writes the original puzzle, solved flag, algorithm,
// timing, and (if solved) the solution board to path — the fields
// saveSolutionToFile emits.
func SaveSolutionToFile(original *domain.Board, result domain.SolveResult, path string, pretty bool) error {
	out := map[string]interface{}{
		"original":   ToJSON(original),
		"solved":     result.Solved,
		"algorithm":  result.Algorithm,
		"time_ms":    result.TimeMs,
		"iterations": result.Iterations,
		"backtracks": result.Backtracks,
	}
	if result.Solved && result.Solution != nil {
		out["solution"] = ToJSON(result.Solution)
	}
	if result.ErrorMessage != "" {
		out["error"] = result.ErrorMessage
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(domain.ErrIO, "writing %s: %v", path, err)
	}
	return nil
}

// FormatHelp is the text the --json-help CLI flag prints, ported verbatim
// in spirit from getFormatHelp().
func FormatHelp() string {
	return `
Supported JSON Input Formats
============================

Format 1: 2D Array (recommended)
{
  "grid": [
    [5, 3, 0, 0, 7, 0, 0, 0, 0],
    [6, 0, 0, 1, 9, 5, 0, 0, 0],
    ...
  ]
}

Format 2: String Rows (use '.' or '0' for empty cells)
{
  "grid": [
    "530070000",
    "600195000",
    ...
  ]
}

Format 3: Single String
{
  "puzzle": "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
}

Format 4: With Explicit Dimensions (for non-standard sizes)
{
  "size": 16,
  "box_rows": 4,
  "box_cols": 4,
  "grid": [...]
}

Notes:
- Empty cells can be represented as 0, '.', '_', or ' '
- For boards larger than 9x9, use hex (A-Z) for values 10-35
- The grid can also be the root JSON element (without wrapper object)
`
}
