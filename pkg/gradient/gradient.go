// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file implements the Gradient facade over the stop container and
// the blending strategy.
package gradient

// Gradient maps positions on a normalized [0, 1] axis to colors by
// blending between an ordered set of color stops. The zero value is an
// empty gradient blending with [Lerp].
//
// A Gradient is not safe for concurrent use; see the package
// documentation.
type Gradient struct {
	stops StopList

	// Interpolator computes the color between two bracketing stops.
	// It may be reassigned at any time to substitute a different
	// blending strategy; nil falls back to Lerp.
	Interpolator Interpolator
}

// New returns an empty gradient blending with [Lerp].
func New() *Gradient {
	return &Gradient{Interpolator: Lerp}
}

// AddStop inserts a new color stop at the given position.
// See [StopList.Add] for the failure conditions.
func (g *Gradient) AddStop(position float64, c Color) error {
	return g.stops.Add(position, c)
}

// ReplaceStop overwrites the color of the stop exactly at position.
// See [StopList.Replace] for the failure conditions.
func (g *Gradient) ReplaceStop(position float64, c Color) error {
	return g.stops.Replace(position, c)
}

// Move relocates the stop at position to the target position to.
// See [StopList.Move] for the failure conditions and the rollback
// guarantee.
func (g *Gradient) Move(position, to float64) error {
	return g.stops.Move(position, to)
}

// Remove deletes the stop exactly at position.
// See [StopList.Remove] for the failure conditions.
func (g *Gradient) Remove(position float64) error {
	return g.stops.Remove(position)
}

// Len returns the number of stops.
func (g *Gradient) Len() int {
	return g.stops.Len()
}

// Stops returns a copy of the stops in ascending position order.
func (g *Gradient) Stops() []Stop {
	return g.stops.Stops()
}

// ColorAt returns the color of the gradient at the given position.
// A position exactly on a stop returns that stop's color; positions
// before the first stop or after the last return that stop's color
// unchanged (no extrapolation); positions between two stops blend them
// with the gradient's Interpolator using
//
//	factor = (position - lower.Position) / (upper.Position - lower.Position)
//
// The returned color is always a copy; mutating it never affects the
// stored stops. ColorAt fails, wrapping [ErrInvalidOp], only when the
// gradient has no stops.
func (g *Gradient) ColorAt(position float64) (Color, error) {
	lower, upper := g.stops.IndexPair(position)
	switch {
	case lower < 0 && upper < 0:
		return Color{}, errEmpty()
	case lower == upper:
		return g.stops.Get(lower).Color, nil
	case lower < 0:
		return g.stops.Get(upper).Color, nil
	case upper < 0:
		return g.stops.Get(lower).Color, nil
	}

	lo, hi := g.stops.Get(lower), g.stops.Get(upper)
	factor := (position - lo.Position) / (hi.Position - lo.Position)
	interpolate := g.Interpolator
	if interpolate == nil {
		interpolate = Lerp
	}
	return interpolate(lo.Color, hi.Color, factor), nil
}
