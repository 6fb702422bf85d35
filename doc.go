// Package gradient canonicalizes color gradients and derives the data
// renderers need to draw them.
//
// # Overview
//
// A gradient starts life as a Descriptor: stop colors, optional positions,
// a tile mode and interpolation flags. New turns it into an immutable
// canonical Gradient with at least two stops, positions bracketed by 0 and 1
// and made monotonic, and evenly spaced positions stored implicitly.
//
// From the canonical form the package derives:
//   - EvalStrategy / Evaluator: closed-form CPU evaluation per parameter t
//   - Analytic: interval coefficients for analytic GPU evaluation of 2-4 stops
//   - Table: a 256-texel lookup table for everything else, served from a
//     process-wide LRU cache keyed on the canonical data
//
// # Quick Start
//
//	import "github.com/gogpu/gradient"
//
//	g, err := gradient.New(gradient.Descriptor{
//		Colors:    []gradient.Color4f{gradient.RGB(1, 0, 0), gradient.RGB(0, 0, 1)},
//		Positions: []float32{0.25, 0.75},
//	})
//	if err != nil {
//		// invalid descriptor
//	}
//	e := gradient.NewEvaluator(g, nil)
//	c := e.ColorAt(0.5) // premultiplied color at the midpoint
//
// # Shapes
//
// Linear, Radial, Sweep and Conical wrap a canonical gradient with the
// geometry that maps a device point to the parameter t, including any local
// matrix set on the descriptor.
//
// # Serialization
//
// Flatten and Unflatten convert gradients to and from a compact byte form.
// Unflattened data passes back through canonicalization, so loading is as
// strict as construction.
//
// The wgsl subpackage emits WGSL fragment source for the analytic
// strategies and compiles it to SPIR-V.
package gradient
