package gradient

// Radial is a gradient radiating from a center point: t is the distance
// from the center divided by the radius.
type Radial struct {
	shaderBase
	center Point
	radius float64
}

// NewRadial creates a radial gradient shader around a center point.
// The radius must be positive.
func NewRadial(center Point, radius float64, d Descriptor) (*Radial, error) {
	if !center.isFinite() {
		return nil, ErrNonFiniteGeometry
	}
	if radius <= 0 {
		return nil, ErrNegativeRadius
	}
	base, err := newShaderBase(d)
	if err != nil {
		return nil, err
	}
	return &Radial{shaderBase: base, center: center, radius: radius}, nil
}

// T returns the gradient parameter for a point, before tiling.
func (r *Radial) T(x, y float64) float32 {
	p := r.mapPoint(x, y)
	return float32(p.Distance(r.center) / r.radius)
}

// ColorAt returns the premultiplied color at a device point.
func (r *Radial) ColorAt(x, y float64) Color4f {
	return r.eval.ColorAt(r.T(x, y))
}
