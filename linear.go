package gradient

// Linear is a gradient along the line from Start to End. The parameter t
// is the projection of the pixel onto that line: 0 at Start, 1 at End.
type Linear struct {
	shaderBase
	start, end Point
}

// NewLinear creates a linear gradient shader between two points.
func NewLinear(start, end Point, d Descriptor) (*Linear, error) {
	if !start.isFinite() || !end.isFinite() {
		return nil, ErrNonFiniteGeometry
	}
	base, err := newShaderBase(d)
	if err != nil {
		return nil, err
	}
	return &Linear{shaderBase: base, start: start, end: end}, nil
}

// T returns the gradient parameter for a point, before tiling.
func (l *Linear) T(x, y float64) float32 {
	p := l.mapPoint(x, y)
	d := l.end.Sub(l.start)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		// Degenerate line: every pixel sits at the gradient origin.
		return 0
	}
	return float32(p.Sub(l.start).Dot(d) / lenSq)
}

// ColorAt returns the premultiplied color at a device point.
func (l *Linear) ColorAt(x, y float64) Color4f {
	return l.eval.ColorAt(l.T(x, y))
}
