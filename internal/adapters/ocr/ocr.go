// Package ocr specifies, but does not implement, the interface
// original_source's ocr_processor.cpp fills with Tesseract-based grid
// recognition. Recognizing a grid from an image stays out of scope here;
// this package exists so a future adapter has a stable interface to satisfy.
package ocr

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// ErrNotImplemented is returned by every Processor method on the stub.
var ErrNotImplemented = errors.New("ocr: not implemented")

// Processor recognizes a board grid from an image, mirroring
// original_source's OCRProcessor at the interface level.
type Processor interface {
	RecognizeGrid(ctx context.Context, image io.Reader) (*domain.Board, error)
}

// stub is the peripheral, unimplemented Processor the module ships.
type stub struct{}

// NewStub returns a Processor whose methods always fail with
// ErrNotImplemented.
func NewStub() Processor { return stub{} }

func (stub) RecognizeGrid(ctx context.Context, image io.Reader) (*domain.Board, error) {
	return nil, ErrNotImplemented
}
