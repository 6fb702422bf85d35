package gradient

import (
	"sort"

	"github.com/gogpu/gradient/internal/colorspace"
)

// Evaluator evaluates a gradient's color for a scalar parameter t on the
// CPU. It owns the derived strategy for one destination color space and is
// safe for concurrent use once built.
type Evaluator struct {
	strat  EvalStrategy
	tile   TileMode
	premul bool // interpolation happened in premultiplied space
}

// NewEvaluator builds an evaluator for the given destination color space
// (nil means sRGB).
func NewEvaluator(g *Gradient, dst *colorspace.Space) *Evaluator {
	return &Evaluator{
		strat:  BuildStrategy(g, dst),
		tile:   g.tile,
		premul: g.interpolatesInPremul(),
	}
}

// ColorAt returns the premultiplied gradient color for parameter t.
// The tile mode is applied first; decal tiling yields transparent outside
// [0, 1]. Output is always premultiplied and clamped to [0, alpha],
// regardless of the space interpolation happened in.
func (e *Evaluator) ColorAt(t float32) Color4f {
	// Positioned stops may carry hard stops at 0 or 1; clamping before the
	// segment search would ruin them. The leading/trailing constant
	// segments make the search itself handle out-of-range t.
	_, positioned := e.strat.(PositionedStrategy)

	tiled := t
	if e.tile != TileClamp || !positioned {
		var ok bool
		tiled, ok = applyTileMode(t, e.tile)
		if !ok {
			return Color4f{}
		}
	}

	var c Color4f
	switch s := e.strat.(type) {
	case TwoStopStrategy:
		c = s.Scale.scale(tiled).add(s.Bias)
	case UniformStrategy:
		seg := s.Segments[uniformIndex(tiled, len(s.Segments))]
		c = seg.Scale.scale(tiled).add(seg.Bias)
	case PositionedStrategy:
		seg := s.Segments[positionedIndex(tiled, s.Segments)]
		c = seg.Scale.scale(tiled).add(seg.Bias)
	}

	if !e.premul {
		c = c.Premul()
	}
	return c.clampToAlpha()
}

// uniformIndex maps a tiled t to the covering segment for evenly spaced
// stops: floor(t*(n-1)), with t >= 1 landing on the trailing constant.
func uniformIndex(t float32, n int) int {
	idx := int(t * float32(n-1))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// positionedIndex finds the last segment whose TLow is at or below t.
// Duplicate TLow values (hard stops) resolve to the later segment.
func positionedIndex(t float32, segs []Segment) int {
	idx := sort.Search(len(segs), func(i int) bool {
		return segs[i].TLow > t
	}) - 1
	if idx < 0 {
		return 0
	}
	return idx
}
