package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionFromSizePrefersSquareBoxes(t *testing.T) {
	cases := []struct {
		size            int
		wantRows, wantCols int
	}{
		{4, 2, 2},
		{9, 3, 3},
		{16, 4, 4},
		{25, 5, 5},
		{6, 2, 3},
		{12, 3, 4},
	}
	for _, c := range cases {
		d := DimensionFromSize(c.size)
		assert.Equal(t, c.wantRows, d.BoxRows, "size %d", c.size)
		assert.Equal(t, c.wantCols, d.BoxCols, "size %d", c.size)
	}
}

func TestDimensionFromSizeFallsBackForPrime(t *testing.T) {
	d := DimensionFromSize(7)
	assert.Equal(t, 1, d.BoxRows)
	assert.Equal(t, 7, d.BoxCols)
	assert.True(t, d.IsValid())
}

func TestIsValidRejectsMismatchedGeometry(t *testing.T) {
	d := BoardDimension{Size: 9, BoxRows: 2, BoxCols: 4}
	assert.False(t, d.IsValid())
}

func TestIsValidRejectsOversizedBoard(t *testing.T) {
	d := BoardDimension{Size: 36, BoxRows: 6, BoxCols: 6}
	assert.False(t, d.IsValid())
}

func TestNumBoxes(t *testing.T) {
	assert.Equal(t, 9, Standard9x9().NumBoxes())
	assert.Equal(t, 16, Standard16x16().NumBoxes())
	assert.Equal(t, 6, Standard6x6().NumBoxes())
}
