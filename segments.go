package gradient

import "github.com/gogpu/gradient/internal/colorspace"

// Segment holds the closed-form coefficients for one stop interval:
// color(t) = Scale*t + Bias for t in [TLow, next segment's TLow).
// A constant-color segment has Scale == {0,0,0,0}.
//
// Segments are derived per evaluation (they depend on the destination color
// space and premultiplication state) and never stored on the Gradient.
type Segment struct {
	Scale Color4f
	Bias  Color4f
	TLow  float32
}

// EvalStrategy is the closed set of per-pixel evaluation strategies a
// canonical gradient lowers to. Exactly one of the concrete types below is
// produced for a given gradient.
type EvalStrategy interface {
	evalStrategy()
}

// TwoStopStrategy evaluates the highest-frequency case: two evenly spaced
// stops, a single segment spanning [0, 1).
type TwoStopStrategy struct {
	Scale Color4f
	Bias  Color4f
}

// UniformStrategy evaluates n > 2 evenly spaced stops. Segments[i] covers
// [i/(n-1), (i+1)/(n-1)); the final entry is a constant segment so lookups
// at or beyond t=1 yield the last color without a separate clamp branch.
type UniformStrategy struct {
	Segments []Segment
}

// PositionedStrategy evaluates arbitrarily positioned stops by searching
// Segments for the last entry with TLow <= t. The first and last entries
// are constant segments, so the search conceptually covers (-inf, +inf).
type PositionedStrategy struct {
	Segments []Segment
}

func (TwoStopStrategy) evalStrategy()    {}
func (UniformStrategy) evalStrategy()    {}
func (PositionedStrategy) evalStrategy() {}

// BuildStrategy derives the evaluation strategy for a gradient targeting the
// given destination color space (nil means sRGB). Stop colors are converted
// to the destination space first, then premultiplied if the gradient
// interpolates in premultiplied alpha.
//
// This never fails for a valid Gradient: canonicalization guarantees
// monotonic bracketed positions, so every division below is well defined.
func BuildStrategy(g *Gradient, dst *colorspace.Space) EvalStrategy {
	colors := g.transformedColors(dst)
	premul := g.interpolatesInPremul()

	prepare := func(i int) Color4f {
		return prepareColor(colors[i], premul)
	}

	// The two-stop case with stops at 0 and 1.
	if len(colors) == 2 && g.pos == nil {
		cl := prepare(0)
		cr := prepare(1)
		return TwoStopStrategy{Scale: cr.sub(cl), Bias: cl}
	}

	if g.pos == nil {
		return UniformStrategy{Segments: buildUniformSegments(colors, premul)}
	}
	return PositionedStrategy{Segments: buildPositionedSegments(colors, g.pos, premul)}
}

// buildUniformSegments derives coefficients for evenly spaced stops with
// gap 1/(n-1): Scale_i = (c[i+1]-c[i])*(n-1), Bias_i = c[i] - Scale_i*(i/(n-1)).
func buildUniformSegments(colors []Color4f, premul bool) []Segment {
	n := len(colors)
	gapCount := float32(n - 1)

	segs := make([]Segment, 0, n)
	cl := prepareColor(colors[0], premul)
	for i := 0; i < n-1; i++ {
		cr := prepareColor(colors[i+1], premul)
		scale := cr.sub(cl).scale(gapCount)
		bias := cl.sub(scale.scale(float32(i) / gapCount))
		segs = append(segs, Segment{
			Scale: scale,
			Bias:  bias,
			TLow:  float32(i) / gapCount,
		})
		cl = cr
	}
	// Constant segment so t >= 1 resolves to the last color.
	segs = append(segs, Segment{Bias: cl, TLow: 1})
	return segs
}

// buildPositionedSegments derives coefficients for arbitrarily positioned
// stops. Synthetic boundary stops that duplicate their neighbor's color are
// trimmed (they are canonicalization artifacts, not real intervals), and
// zero-width pairs are skipped entirely: a hard stop contributes no segment
// of its own, the neighboring constant stop absorbs its position.
func buildPositionedSegments(colors []Color4f, pos []float32, premul bool) []Segment {
	n := len(colors)

	firstStop := 0
	lastStop := 1
	if n > 2 {
		if colors[0] == colors[1] {
			firstStop = 1
		}
		lastStop = n - 1
		if colors[n-2] == colors[n-1] {
			lastStop = n - 2
		}
	}

	segs := make([]Segment, 0, n+1)

	tl := pos[firstStop]
	cl := prepareColor(colors[firstStop], premul)
	// Leading constant segment: covers everything below the first position.
	segs = append(segs, Segment{Bias: cl, TLow: tl})

	for i := firstStop; i < lastStop; i++ {
		tr := pos[i+1]
		cr := prepareColor(colors[i+1], premul)
		if tl < tr {
			scale := cr.sub(cl).scale(1 / (tr - tl))
			bias := cl.sub(scale.scale(tl))
			segs = append(segs, Segment{Scale: scale, Bias: bias, TLow: tl})
		}
		tl = tr
		cl = cr
	}

	// Trailing constant segment at the final position.
	segs = append(segs, Segment{Bias: cl, TLow: tl})
	return segs
}
