package gradient

import (
	"github.com/gogpu/gradient/internal/colorspace"
)

// Gradient is the canonical form of a color gradient: at least two stop
// colors with monotonically non-decreasing positions bracketed by 0 and 1.
// A nil position slice means the stops are evenly spaced; explicit position
// storage is kept only when the spacing is genuinely non-uniform.
//
// A Gradient is immutable once constructed and safe for concurrent use.
type Gradient struct {
	colors []Color4f
	pos    []float32 // nil when evenly spaced
	space  *colorspace.Space
	tile   TileMode
	flags  Flags

	local    Matrix
	hasLocal bool

	opaque bool // every stop has alpha == 1
}

// New canonicalizes a descriptor into a Gradient.
//
// Callers may omit the first and/or last position, e.g. {0.3, 0.7}; synthetic
// boundary stops are inserted so the result is always bracketed by [0, 1]:
// colors {A, B} with positions {0.3, 0.7} canonicalize to colors {A, A, B, B}
// with positions {0, 0.3, 0.7, 1}. Supplied positions are pinned to be
// monotonic and within [0, 1]; uniformly spaced positions are discarded and
// represented implicitly.
func New(d Descriptor) (*Gradient, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	d.expandSingleColor()
	d.optimizeStops()

	count := len(d.Colors)

	// Synthetic boundary stops for callers that skipped 0 and/or 1.
	dummyFirst := false
	dummyLast := false
	if d.Positions != nil {
		dummyFirst = d.Positions[0] != 0
		dummyLast = d.Positions[count-1] != 1
	}
	n := count
	if dummyFirst {
		n++
	}
	if dummyLast {
		n++
	}

	g := &Gradient{
		colors:   make([]Color4f, 0, n),
		space:    d.Space,
		tile:     d.TileMode,
		flags:    d.Flags & flagsMask,
		local:    d.LocalMatrix,
		hasLocal: d.HasLocalMatrix && !d.LocalMatrix.IsIdentity(),
		opaque:   true,
	}

	if dummyFirst {
		g.colors = append(g.colors, d.Colors[0])
	}
	g.colors = append(g.colors, d.Colors...)
	if dummyLast {
		g.colors = append(g.colors, d.Colors[count-1])
	}
	for _, c := range g.colors {
		if !c.IsOpaque() {
			g.opaque = false
			break
		}
	}

	if d.Positions != nil {
		pos := make([]float32, 0, n)
		prev := float32(0)
		pos = append(pos, prev) // force the first pos to 0

		startIndex := 1
		if dummyFirst {
			startIndex = 0
		}
		last := count
		if !dummyLast {
			last = count - 1
		}

		uniform := true
		uniformStep := d.Positions[startIndex] - prev
		for i := startIndex; i <= last; i++ {
			// Pin the last value to 1.0, and make sure pos is monotonic.
			var curr float32
			if i == count {
				curr = 1
			} else {
				curr = pin(d.Positions[i], prev, 1)
			}
			uniform = uniform && nearlyEqual(uniformStep, curr-prev)

			pos = append(pos, curr)
			prev = curr
		}

		// Uniform spacing is represented implicitly; downstream consumers
		// branch on pos == nil instead of re-deriving it per evaluation.
		if !uniform {
			g.pos = pos
		}
	}

	return g, nil
}

// ColorCount returns the number of canonical stops.
func (g *Gradient) ColorCount() int {
	return len(g.colors)
}

// Color returns the i-th canonical stop color.
func (g *Gradient) Color(i int) Color4f {
	return g.colors[i]
}

// Colors returns the canonical stop colors. The slice is shared and must
// not be modified.
func (g *Gradient) Colors() []Color4f {
	return g.colors
}

// Pos returns the i-th canonical stop position. Evenly spaced gradients
// compute positions on the fly.
func (g *Gradient) Pos(i int) float32 {
	if g.pos != nil {
		return g.pos[i]
	}
	return float32(i) / float32(len(g.colors)-1)
}

// Positions returns the explicit position array, or nil when the stops are
// evenly spaced. The slice is shared and must not be modified.
func (g *Gradient) Positions() []float32 {
	return g.pos
}

// TileMode returns the gradient's tiling policy.
func (g *Gradient) TileMode() TileMode {
	return g.tile
}

// Flags returns the interpolation flags.
func (g *Gradient) Flags() Flags {
	return g.flags
}

// Space returns the color space of the stop colors, or nil for sRGB.
func (g *Gradient) Space() *colorspace.Space {
	return g.space
}

// LocalMatrix returns the local transform and whether one is set.
func (g *Gradient) LocalMatrix() (Matrix, bool) {
	return g.local, g.hasLocal
}

// interpolatesInPremul reports whether colors interpolate in premultiplied
// alpha space.
func (g *Gradient) interpolatesInPremul() bool {
	return g.flags&FlagInterpolateColorsInPremul != 0
}

// IsOpaque reports whether every pixel the gradient produces is opaque.
// Decal tiling renders transparency outside [0, 1] regardless of the stops.
func (g *Gradient) IsOpaque() bool {
	return g.opaque && g.tile != TileDecal
}

// AverageColor returns the rounded per-channel average of the stop colors
// in 8-bit precision, used as a luminance stand-in for the whole gradient.
func (g *Gradient) AverageColor() Color4f {
	var r, g8, b uint32
	n := uint32(len(g.colors))
	for _, c := range g.colors {
		r += uint32(clampAndRound(c.R))
		g8 += uint32(clampAndRound(c.G))
		b += uint32(clampAndRound(c.B))
	}
	div := func(sum uint32) float32 {
		return float32((sum+n/2)/n) / 255
	}
	return Color4f{R: div(r), G: div(g8), B: div(b), A: 1}
}

// transformedColors converts the stop colors to the destination space.
// When no conversion is needed the canonical slice is returned as is; the
// stored colors are never mutated.
func (g *Gradient) transformedColors(dst *colorspace.Space) []Color4f {
	tr := colorspace.NewTransformer(g.space, dst)
	if tr == nil {
		return g.colors
	}
	out := make([]Color4f, len(g.colors))
	for i, c := range g.colors {
		v := tr.Apply([4]float32{c.R, c.G, c.B, c.A})
		out[i] = Color4f{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
	return out
}

// prepareColor returns a stop color in the premultiplication state selected
// by the interpolation flags. Colors must already be in the destination
// space; profile conversion is only valid on straight alpha.
func prepareColor(c Color4f, premul bool) Color4f {
	if premul {
		return c.Premul()
	}
	return c
}
