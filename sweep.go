package gradient

import "math"

// Sweep is an angular gradient around a center point. Angles are in
// degrees measured counter-clockwise from the positive x axis; t runs from
// 0 at StartAngle to 1 at EndAngle.
type Sweep struct {
	shaderBase
	center Point
	t0, t1 float64 // angles mapped to fractions of a full turn
}

// NewSweep creates a sweep gradient shader around (cx, cy) covering
// [startAngle, endAngle) degrees. startAngle must be below endAngle.
// A sweep covering the full circle always uses clamp tiling: its t range
// already includes [0, 1], so other modes change nothing and clamping is
// the cheapest.
func NewSweep(cx, cy float64, startAngle, endAngle float64, d Descriptor) (*Sweep, error) {
	if !(Point{X: cx, Y: cy}).isFinite() {
		return nil, ErrNonFiniteGeometry
	}
	if math.IsNaN(startAngle) || math.IsInf(startAngle, 0) ||
		math.IsNaN(endAngle) || math.IsInf(endAngle, 0) ||
		startAngle >= endAngle {
		return nil, ErrBadAngles
	}

	if startAngle <= 0 && endAngle >= 360 {
		d.TileMode = TileClamp
	}

	base, err := newShaderBase(d)
	if err != nil {
		return nil, err
	}
	return &Sweep{
		shaderBase: base,
		center:     Point{X: cx, Y: cy},
		t0:         startAngle / 360,
		t1:         endAngle / 360,
	}, nil
}

// T returns the gradient parameter for a point, before tiling.
func (s *Sweep) T(x, y float64) float32 {
	p := s.mapPoint(x, y)
	dx := p.X - s.center.X
	dy := p.Y - s.center.Y
	if dx == 0 && dy == 0 {
		return float32(-s.t0 / (s.t1 - s.t0))
	}

	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	turn := angle / (2 * math.Pi)
	return float32((turn - s.t0) / (s.t1 - s.t0))
}

// ColorAt returns the premultiplied color at a device point.
func (s *Sweep) ColorAt(x, y float64) Color4f {
	return s.eval.ColorAt(s.T(x, y))
}
