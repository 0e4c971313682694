// Package gradient maintains an ordered set of color stops along a
// normalized [0, 1] axis and computes the interpolated color at any
// position on that axis — the classic gradient abstraction used by CSS
// gradients, image look-up tables and data visualization ramps.
//
// # Basic Usage
//
// Create a gradient, anchor some stops, and query it:
//
//	g := gradient.New()
//	if err := g.AddStop(0, gradient.Color{A: 1}); err != nil {
//		log.Fatal(err)
//	}
//	if err := g.AddStop(1, gradient.Color{R: 255, G: 255, B: 255, A: 1}); err != nil {
//		log.Fatal(err)
//	}
//
//	c, err := g.ColorAt(0.25) // 25% of the way from black to white
//
// Stops live at unique positions in [0, 1]. Queries between two stops
// blend their colors; queries before the first stop or after the last
// return that stop's color unchanged (no extrapolation), and a query
// exactly on a stop returns its color exactly.
//
// # Editing Stops
//
// [Gradient.AddStop], [Gradient.ReplaceStop], [Gradient.Move] and
// [Gradient.Remove] edit the stop set. The underlying container,
// [StopList], keeps its stops sorted by position at all times and is
// also usable directly when the interpolation facade is not needed.
//
// # Blending
//
// Colors are blended by the gradient's [Interpolator], a plain function
// value defaulting to [Lerp] (linear per-channel blending). Assign the
// Interpolator field to substitute a different strategy at any time.
//
// # Errors
//
// Every failing operation returns an error wrapping [ErrInvalidOp] and
// leaves the stop set untouched. Match it with [errors.Is]:
//
//	if err := g.AddStop(0.5, c); errors.Is(err, gradient.ErrInvalidOp) {
//		// position out of range, or a stop already lives there
//	}
//
// # Concurrency
//
// Gradients and stop lists are single-owner values: no internal locking
// is performed, and operations such as [Gradient.Move] mutate in more
// than one step. Callers sharing a gradient across goroutines must
// serialize all access with their own mutual exclusion.
package gradient
