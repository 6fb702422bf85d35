package gradient

// shaderBase is the part shared by every gradient shape: the canonical
// gradient, a CPU evaluator targeting sRGB, and the inverse local matrix
// points are mapped through before the shape computes its parameter.
type shaderBase struct {
	grad *Gradient
	eval *Evaluator
	inv  Matrix
}

func newShaderBase(d Descriptor) (shaderBase, error) {
	g, err := New(d)
	if err != nil {
		return shaderBase{}, err
	}
	inv := Identity()
	if m, ok := g.LocalMatrix(); ok {
		// Invertibility was checked during validation.
		inv, _ = m.Invert()
	}
	return shaderBase{
		grad: g,
		eval: NewEvaluator(g, nil),
		inv:  inv,
	}, nil
}

// Gradient returns the canonical gradient backing the shape.
func (s *shaderBase) Gradient() *Gradient {
	return s.grad
}

// mapPoint applies the inverse local transform to a device point.
func (s *shaderBase) mapPoint(x, y float64) Point {
	return s.inv.TransformPoint(Point{X: x, Y: y})
}
