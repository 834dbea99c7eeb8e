package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

func TestLoadFromString2DArray(t *testing.T) {
	b, err := LoadFromString(`{"grid": [[1,3,0],[0,0,0],[0,0,2]]}`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
	v, _ := b.Get(0, 0)
	assert.Equal(t, domain.Cell(1), v)
}

func TestLoadFromStringGridStrings(t *testing.T) {
	b, err := LoadFromString(`{"grid": ["1.0", "...", "..2"]}`)
	require.NoError(t, err)
	v, _ := b.Get(0, 0)
	assert.Equal(t, domain.Cell(1), v)
	v, _ = b.Get(2, 2)
	assert.Equal(t, domain.Cell(2), v)
}

func TestLoadFromStringPuzzleField(t *testing.T) {
	b, err := LoadFromString(`{"puzzle": "1.0...  ..2"}`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
}

func TestLoadFromStringRootArray(t *testing.T) {
	b, err := LoadFromString(`[[1,3,0],[0,0,0],[0,0,2]]`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
}

func TestLoadFromStringRootString(t *testing.T) {
	b, err := LoadFromString(`"1.0...  ..2"`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
}

func TestLoadFromStringExplicitDimension(t *testing.T) {
	grid := strings.Repeat("0", 16*16)
	b, err := LoadFromString(`{"size":16,"box_rows":4,"box_cols":4,"puzzle":"` + grid + `"}`)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Size())
	assert.Equal(t, 4, b.BoxRows())
}

func TestLoadFromStringExplicitSizeRejectsMismatchedPuzzleLength(t *testing.T) {
	_, err := LoadFromString(`{"size":16,"box_rows":4,"box_cols":4,"puzzle":"0000000000000000"}`)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoadFromStringLettersForLargeBoards(t *testing.T) {
	// A 16x16 all-empty grid with one 'A' (=10) placed.
	rows := make([]interface{}, 16)
	for i := range rows {
		rows[i] = strings.Repeat("0", 16)
	}
	rows[0] = "A" + strings.Repeat("0", 15)
	b, err := LoadFromValue(map[string]interface{}{"grid": rows})
	require.NoError(t, err)
	assert.Equal(t, 16, b.Size())
	v, _ := b.Get(0, 0)
	assert.Equal(t, domain.Cell(10), v)
}

func toInterfaceSlice(grid [][]interface{}) []interface{} {
	out := make([]interface{}, len(grid))
	for i, row := range grid {
		out[i] = row
	}
	return out
}

func TestLoadFromStringRejectsInvalidLength(t *testing.T) {
	_, err := LoadFromString(`"12345"`)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoadFromStringRejectsMalformedJSON(t *testing.T) {
	_, err := LoadFromString(`{not json`)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestToJSONRoundTrips(t *testing.T) {
	b, err := domain.NewEmptyBoard(domain.Standard4x4())
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))

	s, err := ToString(b, false)
	require.NoError(t, err)

	reloaded, err := LoadFromString(s)
	require.NoError(t, err)
	assert.True(t, b.Equal(reloaded))
}

func TestFormatHelpMentionsAllFourFormats(t *testing.T) {
	help := FormatHelp()
	assert.Contains(t, help, "2D Array")
	assert.Contains(t, help, "String Rows")
	assert.Contains(t, help, "Single String")
	assert.Contains(t, help, "Explicit Dimensions")
}
