// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file provides ready-made gradients for common visualization
// ramps. Each constructor returns a fresh gradient the caller may edit
// freely.
package gradient

import "golang.org/x/image/colornames"

// Grayscale returns a black-to-white ramp.
func Grayscale() *Gradient {
	return build(
		Stop{Position: 0, Color: FromColor(colornames.Black)},
		Stop{Position: 1, Color: FromColor(colornames.White)},
	)
}

// Heat returns the classic black-body ramp: black through red and
// yellow to white.
func Heat() *Gradient {
	return build(
		Stop{Position: 0, Color: FromColor(colornames.Black)},
		Stop{Position: 0.4, Color: FromColor(colornames.Red)},
		Stop{Position: 0.75, Color: FromColor(colornames.Yellow)},
		Stop{Position: 1, Color: FromColor(colornames.White)},
	)
}

// Rainbow returns a red-to-violet spectrum with six roughly equal
// segments.
func Rainbow() *Gradient {
	return build(
		Stop{Position: 0, Color: FromColor(colornames.Red)},
		Stop{Position: 0.167, Color: FromColor(colornames.Orange)},
		Stop{Position: 0.333, Color: FromColor(colornames.Yellow)},
		Stop{Position: 0.5, Color: FromColor(colornames.Green)},
		Stop{Position: 0.667, Color: FromColor(colornames.Cyan)},
		Stop{Position: 0.833, Color: FromColor(colornames.Blue)},
		Stop{Position: 1, Color: FromColor(colornames.Violet)},
	)
}

// Terrain returns an elevation-map ramp from deep water through
// lowlands and mountains to snow.
func Terrain() *Gradient {
	return build(
		Stop{Position: 0, Color: FromColor(colornames.Navy)},
		Stop{Position: 0.3, Color: FromColor(colornames.Royalblue)},
		Stop{Position: 0.45, Color: FromColor(colornames.Forestgreen)},
		Stop{Position: 0.65, Color: FromColor(colornames.Goldenrod)},
		Stop{Position: 0.8, Color: FromColor(colornames.Saddlebrown)},
		Stop{Position: 0.9, Color: FromColor(colornames.Lightgray)},
		Stop{Position: 1, Color: FromColor(colornames.White)},
	)
}

// build assembles a preset through the public API. The stop tables
// above use fixed, distinct, in-range positions, so AddStop cannot
// fail; a panic here means a broken table.
func build(stops ...Stop) *Gradient {
	g := New()
	for _, s := range stops {
		if err := g.AddStop(s.Position, s.Color); err != nil {
			panic("gradient: invalid preset stop table: " + err.Error())
		}
	}
	return g
}
