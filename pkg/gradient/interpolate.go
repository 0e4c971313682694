// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file defines the blending strategy contract and the default
// linear interpolator.
package gradient

// Interpolator combines two colors into one according to a blend factor.
// A factor of 0 selects c1 and 1 selects c2. Implementations must be
// pure: no side effects, no retained state.
type Interpolator func(c1, c2 Color, factor float64) Color

// Lerp blends c1 toward c2 channel by channel:
//
//	result = factor*c2 + (1-factor)*c1
//
// The factor is expected in [0, 1] but is not validated or clamped;
// values outside that range extrapolate linearly. Channel values are
// likewise passed through untouched.
func Lerp(c1, c2 Color, factor float64) Color {
	return Color{
		R: lerpChannel(c1.R, c2.R, factor),
		G: lerpChannel(c1.G, c2.G, factor),
		B: lerpChannel(c1.B, c2.B, factor),
		A: lerpChannel(c1.A, c2.A, factor),
	}
}

func lerpChannel(a, b, factor float64) float64 {
	return factor*b + (1-factor)*a
}
