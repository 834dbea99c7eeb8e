package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubReturnsNotImplemented(t *testing.T) {
	p := NewStub()
	_, err := p.RecognizeGrid(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotImplemented)
}
