// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file defines the error kind shared by every stop operation.
package gradient

import (
	"errors"
	"fmt"
)

// ErrInvalidOp is the single error kind returned by failing stop
// operations: a position outside [0, 1], an insertion or move onto an
// occupied position, a lookup of a position holding no stop, or a color
// query against a gradient with zero stops. Match it with [errors.Is];
// the wrapped message carries the specifics. A failing operation never
// modifies the stored stops.
var ErrInvalidOp = errors.New("invalid gradient operation")

func errOutOfRange(position float64) error {
	return fmt.Errorf("%w: position %g outside [0, 1]", ErrInvalidOp, position)
}

func errOccupied(position float64) error {
	return fmt.Errorf("%w: a stop already exists at position %g", ErrInvalidOp, position)
}

func errNoStop(position float64) error {
	return fmt.Errorf("%w: no stop at position %g", ErrInvalidOp, position)
}

func errEmpty() error {
	return fmt.Errorf("%w: gradient has no stops", ErrInvalidOp)
}
