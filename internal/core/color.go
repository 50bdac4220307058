package core

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA color with every channel in [0, 1].
// Buckets, paint swatches and labels all carry one.
type Color struct {
	R, G, B, A float64
}

// Predefined colors used by the game.
var (
	ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack = Color{A: 1}
	ColorRed   = Color{R: 1, A: 1}
	ColorGreen = Color{G: 1, A: 1}
	ColorBlue  = Color{B: 1, A: 1}
)

// RGBA builds an opaque-aware color, clamping each channel to [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{
		R: ClampF(r, 0, 1),
		G: ClampF(g, 0, 1),
		B: ClampF(b, 0, 1),
		A: ClampF(a, 0, 1),
	}
}

// Distance returns the Euclidean distance between the RGB parts of two
// colors, normalized by sqrt(3) so the result lies in [0, 1].
// Alpha is ignored.
func (c Color) Distance(other Color) float64 {
	dr := c.R - other.R
	dg := c.G - other.G
	db := c.B - other.B
	return math.Sqrt(dr*dr+dg*dg+db*db) / math.Sqrt(3)
}

// Lerp moves c towards target by t (0 = unchanged, 1 = target).
func (c Color) Lerp(target Color, t float64) Color {
	t = ClampF(t, 0, 1)
	return RGBA(
		c.R+(target.R-c.R)*t,
		c.G+(target.G-c.G)*t,
		c.B+(target.B-c.B)*t,
		c.A+(target.A-c.A)*t,
	)
}

// Hex formats the RGB part as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("%s/%.2f", c.Hex(), c.A)
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: 1}, nil
}

// Oscillate returns the animated color used for decorative entities and
// freshly spawned labels: each channel is sin(phase*t + offset)/2 + 0.5 with
// phases 1.25 (red), 0.75 (green) and 0.50 (blue).
func Oscillate(t float64, offsets [3]float64) Color {
	return Color{
		R: math.Sin(1.25*t+offsets[0])/2 + 0.5,
		G: math.Sin(0.75*t+offsets[1])/2 + 0.5,
		B: math.Sin(0.50*t+offsets[2])/2 + 0.5,
		A: 1,
	}
}
