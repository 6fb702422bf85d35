package gradient

import "github.com/gogpu/gradient/internal/colorspace"

// InterpolationStrategy identifies how a fragment shader evaluates the
// gradient. Small stop counts get closed-form interval math; everything
// else samples a lookup table texture.
type InterpolationStrategy uint8

const (
	// StrategyTexture samples a 256-texel lookup table.
	StrategyTexture InterpolationStrategy = iota
	// StrategySingle is one interval spanning [0, 1].
	StrategySingle
	// StrategyThreshold is two intervals split at Threshold.
	StrategyThreshold
	// StrategyThresholdClamp0 is Threshold with a clamp interval below 0,
	// produced by a hard stop on the left edge under clamp tiling.
	StrategyThresholdClamp0
	// StrategyThresholdClamp1 is Threshold with a clamp interval above 1,
	// produced by a hard stop on the right edge under clamp tiling.
	StrategyThresholdClamp1
)

// String returns a human-readable name for the strategy.
func (s InterpolationStrategy) String() string {
	switch s {
	case StrategyTexture:
		return "Texture"
	case StrategySingle:
		return "Single"
	case StrategyThreshold:
		return "Threshold"
	case StrategyThresholdClamp0:
		return "ThresholdClamp0"
	case StrategyThresholdClamp1:
		return "ThresholdClamp1"
	default:
		return "Unknown"
	}
}

// PremulType records where premultiplication happens relative to
// interpolation.
type PremulType uint8

const (
	// PremulAfterInterp premultiplies the interpolated color in the shader.
	PremulAfterInterp PremulType = iota
	// PremulBeforeInterp bakes premultiplication into the interval
	// coefficients.
	PremulBeforeInterp
)

// Analytic carries the uniforms for the closed-form GPU evaluation
// strategies. Intervals holds (scale, bias) pairs: one pair for
// StrategySingle, two pairs for the threshold strategies. For
// StrategyTexture the gradient must be rendered through a lookup table
// instead and Intervals is empty.
type Analytic struct {
	Strategy  InterpolationStrategy
	Threshold float32
	Intervals []Color4f // (scale, bias) pairs
	Premul    PremulType
}

// addInterval appends the (scale, bias) pair for the stop range [i0, i1].
// A zero-width range produces a clamp interval: scale 0, bias = the color.
func (a *Analytic) addInterval(g *Gradient, colors []Color4f, i0, i1 int) {
	c0 := prepareColor(colors[i0], a.Premul == PremulBeforeInterp)
	c1 := prepareColor(colors[i1], a.Premul == PremulBeforeInterp)
	t0 := g.Pos(i0)
	t1 := g.Pos(i1)

	var scale Color4f
	if !nearlyZero(t1 - t0) {
		scale = c1.sub(c0).scale(1 / (t1 - t0))
	}
	bias := c0.sub(scale.scale(t0))

	a.Intervals = append(a.Intervals, scale, bias)
}

// BuildAnalytic selects the GPU evaluation strategy for a gradient and
// derives its interval coefficients. Gradients with 2-4 stops matching the
// recognized patterns evaluate analytically; everything else reports
// StrategyTexture and is handled by LookupTable.
//
// Stop colors are converted to dst (nil means sRGB) before coefficients are
// derived, exactly as BuildStrategy does for the CPU path.
func BuildAnalytic(g *Gradient, dst *colorspace.Space) Analytic {
	a := Analytic{Strategy: StrategyTexture}
	if g.interpolatesInPremul() {
		a.Premul = PremulBeforeInterp
	}

	colors := g.transformedColors(dst)

	switch len(g.colors) {
	case 2:
		a.Strategy = StrategySingle
		a.addInterval(g, colors, 0, 1)

	case 3:
		a.Threshold = g.Pos(1)

		if g.pos != nil {
			if nearlyZero(g.pos[1]) {
				// Hard stop on the left edge.
				if g.tile == TileClamp {
					a.Strategy = StrategyThresholdClamp1
					// Clamp interval (scale == 0, bias == colors[0]).
					a.addInterval(g, colors, 0, 0)
				} else {
					// The hard stop is invisible when tiling folds the edges.
					a.Strategy = StrategySingle
				}
				a.addInterval(g, colors, 1, 2)
				return a
			}

			if nearlyEqual(g.pos[1], 1) {
				// Hard stop on the right edge.
				a.addInterval(g, colors, 0, 1)
				if g.tile == TileClamp {
					a.Strategy = StrategyThresholdClamp0
					// Clamp interval (scale == 0, bias == colors[2]).
					a.addInterval(g, colors, 2, 2)
				} else {
					a.Strategy = StrategySingle
				}
				return a
			}
		}

		// Two arbitrary interpolation intervals.
		a.Strategy = StrategyThreshold
		a.addInterval(g, colors, 0, 1)
		a.addInterval(g, colors, 1, 2)

	case 4:
		if g.pos != nil && nearlyEqual(g.pos[1], g.pos[2]) {
			// Single interior hard stop: two arbitrary intervals.
			a.Strategy = StrategyThreshold
			a.Threshold = g.Pos(1)
			a.addInterval(g, colors, 0, 1)
			a.addInterval(g, colors, 2, 3)
		}
	}

	return a
}
