package gradient

import "image/color"

// Color4f represents an RGBA color with float32 components.
// Components are normally in [0, 1] but may exceed that range for
// wide-gamut or out-of-gamut colors. Whether RGB is premultiplied by
// alpha is indicated by context.
type Color4f struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color4f {
	return Color4f{R: r, G: g, B: b, A: 1}
}

// Premul returns the color with RGB channels scaled by alpha.
func (c Color4f) Premul() Color4f {
	return Color4f{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// IsOpaque reports whether alpha is exactly 1.
func (c Color4f) IsOpaque() bool {
	return c.A == 1
}

// Color converts to the standard color.Color interface, treating the
// receiver as unpremultiplied.
func (c Color4f) Color() color.Color {
	return color.NRGBA{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// add, sub and scale operate per channel. Segment derivation and table
// interpolation treat colors as plain 4-vectors.
func (c Color4f) add(o Color4f) Color4f {
	return Color4f{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

func (c Color4f) sub(o Color4f) Color4f {
	return Color4f{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

func (c Color4f) scale(s float32) Color4f {
	return Color4f{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// clampToAlpha pins a premultiplied color into [0, A] per channel.
// Interpolated colors can drift out of range after a color space
// transform; premultiplied channels must never exceed alpha.
func (c Color4f) clampToAlpha() Color4f {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > a {
			return a
		}
		return v
	}
	return Color4f{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: a}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// nearlyZeroTolerance matches the tolerance the canonicalizer historically
// used for stop comparisons: 1.0 / (1 << 12).
const nearlyZeroTolerance = 1.0 / 4096

// nearlyEqual reports whether two scalars differ by less than the stop
// comparison tolerance.
func nearlyEqual(a, b float32) bool {
	return nearlyZero(a - b)
}

// nearlyZero reports whether a scalar is within tolerance of zero.
func nearlyZero(v float32) bool {
	if v < 0 {
		v = -v
	}
	return v < nearlyZeroTolerance
}

// pin returns v limited to [lo, hi].
func pin(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
