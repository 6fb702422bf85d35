package gradient

import "math"

// Conical is a two-point conical gradient: the family of circles
// interpolating from (Start, StartRadius) at t=0 to (End, EndRadius) at
// t=1. Pixels outside every circle of the family render transparent.
type Conical struct {
	shaderBase
	start, end Point
	r0, r1     float64
}

// NewTwoPointConical creates a two-point conical gradient shader.
// Radii must be non-negative. A conical whose start circle is a point at
// the end circle's center is served by the cheaper radial form; equal
// circles describe an empty family and are rejected.
func NewTwoPointConical(start Point, startRadius float64, end Point, endRadius float64, d Descriptor) (*Conical, error) {
	if !start.isFinite() || !end.isFinite() {
		return nil, ErrNonFiniteGeometry
	}
	if startRadius < 0 || endRadius < 0 {
		return nil, ErrNegativeRadius
	}
	if startRadius == endRadius && (start == end || startRadius == 0) {
		return nil, ErrEmptyShader
	}

	base, err := newShaderBase(d)
	if err != nil {
		return nil, err
	}
	return &Conical{
		shaderBase: base,
		start:      start,
		end:        end,
		r0:         startRadius,
		r1:         endRadius,
	}, nil
}

// IsRadial reports whether the conical degenerates to a plain radial
// gradient (concentric with a point start circle); callers can use the
// faster Radial shader in that case.
func (c *Conical) IsRadial() bool {
	return nearlyZero(float32(c.start.Distance(c.end))) && nearlyZero(float32(c.r0))
}

// T returns the gradient parameter for a point and whether any circle of
// the family contains it.
//
// Solves |p - lerp(start, end, t)| = lerp(r0, r1, t) for the largest t
// with a non-negative interpolated radius.
func (c *Conical) T(x, y float64) (float32, bool) {
	p := c.mapPoint(x, y)
	cd := c.end.Sub(c.start)
	pd := p.Sub(c.start)
	rd := c.r1 - c.r0

	a := cd.LengthSquared() - rd*rd
	b := -2 * (pd.Dot(cd) + c.r0*rd)
	cc := pd.LengthSquared() - c.r0*c.r0

	if math.Abs(a) < 1e-12 {
		// The circles grow exactly as fast as they move: linear equation.
		if b == 0 {
			return 0, false
		}
		t := cc / -b
		if c.r0+t*rd < 0 {
			return 0, false
		}
		return float32(t), true
	}

	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	// Prefer the larger root: the outermost circle through the point.
	t := (-b + sq) / (2 * a)
	if a < 0 {
		t = (-b - sq) / (2 * a)
	}
	if c.r0+t*rd < 0 {
		t2 := (-b - sq) / (2 * a)
		if a < 0 {
			t2 = (-b + sq) / (2 * a)
		}
		if c.r0+t2*rd < 0 {
			return 0, false
		}
		t = t2
	}
	return float32(t), true
}

// ColorAt returns the premultiplied color at a device point, transparent
// when no circle of the family reaches it.
func (c *Conical) ColorAt(x, y float64) Color4f {
	t, ok := c.T(x, y)
	if !ok {
		return Color4f{}
	}
	return c.eval.ColorAt(t)
}
