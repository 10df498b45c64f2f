package wordgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare indicates the letter count cannot form a square grid.
	ErrNotSquare = errors.New("wordgrid: letter count is not a perfect square")
	// ErrCorruptIndex indicates a saved index could not be decoded.
	ErrCorruptIndex = errors.New("wordgrid: corrupt index data")
	// ErrIndexTooLarge indicates an index does not fit the on-disk format.
	ErrIndexTooLarge = errors.New("wordgrid: index too large to encode")
)

// ShapeError is returned by NewGrid when the input length is not a perfect
// square. No partial grid is ever built.
type ShapeError struct {
	Length int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("wordgrid: %d letters cannot form a square grid", e.Length)
}

// Unwrap lets errors.Is match ErrNotSquare.
func (e *ShapeError) Unwrap() error {
	return ErrNotSquare
}
