// Package colorspace provides the RGB working spaces used by gradient stop
// colors and the float-precision transforms between them.
//
// A Space pairs a transfer curve with a gamut matrix mapping linear RGB to
// CIE XYZ adapted to D50. Transforms always operate on unpremultiplied
// colors; alpha passes through untouched.
package colorspace

import "math"

// Transfer identifies the non-linear encoding applied to RGB channels.
type Transfer uint8

const (
	// TransferSRGB is the piecewise sRGB curve (IEC 61966-2-1).
	TransferSRGB Transfer = iota
	// TransferLinear applies no encoding.
	TransferLinear
)

// Space describes an RGB color space.
// The zero value is not valid; use one of the predefined spaces or FromICC.
type Space struct {
	transfer Transfer
	// toXYZ maps linear RGB to XYZ D50, row-major.
	toXYZ [9]float32
	tag   uint8 // serialization tag, see Serialize
}

// Serialization tags for the predefined spaces.
const (
	tagSRGB       = 0
	tagLinearSRGB = 1
	tagDisplayP3  = 2
)

// sRGB gamut to XYZ D50, Bradford-adapted.
var srgbToXYZ = [9]float32{
	0.4360747, 0.3850649, 0.1430804,
	0.2225045, 0.7168786, 0.0606169,
	0.0139322, 0.0971045, 0.7141733,
}

// Display P3 gamut to XYZ D50.
var displayP3ToXYZ = [9]float32{
	0.5151020, 0.2919650, 0.1571530,
	0.2411820, 0.6922360, 0.0665819,
	-0.0010494, 0.0418818, 0.7843780,
}

var (
	srgb       = &Space{transfer: TransferSRGB, toXYZ: srgbToXYZ, tag: tagSRGB}
	linearSRGB = &Space{transfer: TransferLinear, toXYZ: srgbToXYZ, tag: tagLinearSRGB}
	displayP3  = &Space{transfer: TransferSRGB, toXYZ: displayP3ToXYZ, tag: tagDisplayP3}
)

// SRGB returns the standard sRGB color space.
func SRGB() *Space { return srgb }

// LinearSRGB returns the sRGB gamut with a linear transfer curve.
func LinearSRGB() *Space { return linearSRGB }

// DisplayP3 returns the Display P3 color space (P3 gamut, sRGB transfer).
func DisplayP3() *Space { return displayP3 }

// Equal reports whether two spaces describe the same encoding and gamut.
// A nil space is treated as sRGB.
func Equal(a, b *Space) bool {
	if a == nil {
		a = srgb
	}
	if b == nil {
		b = srgb
	}
	return a.transfer == b.transfer && a.toXYZ == b.toXYZ
}

// Transfer returns the transfer curve of the space.
func (s *Space) Transfer() Transfer { return s.transfer }

// encode applies the transfer curve to a linear component.
func (s *Space) encode(v float32) float32 {
	if s.transfer == TransferLinear {
		return v
	}
	return linearToSRGB(v)
}

// decode removes the transfer curve from an encoded component.
func (s *Space) decode(v float32) float32 {
	if s.transfer == TransferLinear {
		return v
	}
	return srgbToLinear(v)
}

// srgbToLinear converts an sRGB-encoded component to linear (EOTF).
// Negative inputs are mirrored so out-of-gamut values survive round trips.
func srgbToLinear(v float32) float32 {
	if v < 0 {
		return -srgbToLinear(-v)
	}
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64(v+0.055)/1.055, 2.4))
}

// linearToSRGB converts a linear component to sRGB encoding (OETF).
func linearToSRGB(v float32) float32 {
	if v < 0 {
		return -linearToSRGB(-v)
	}
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*float32(math.Pow(float64(v), 1.0/2.4)) - 0.055
}

// invert3x3 computes the inverse of a row-major 3x3 matrix.
// The gamut matrices are all well-conditioned, so no singularity check.
func invert3x3(m [9]float32) [9]float32 {
	a, b, c := float64(m[0]), float64(m[1]), float64(m[2])
	d, e, f := float64(m[3]), float64(m[4]), float64(m[5])
	g, h, i := float64(m[6]), float64(m[7]), float64(m[8])

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	inv := 1 / det

	return [9]float32{
		float32((e*i - f*h) * inv), float32((c*h - b*i) * inv), float32((b*f - c*e) * inv),
		float32((f*g - d*i) * inv), float32((a*i - c*g) * inv), float32((c*d - a*f) * inv),
		float32((d*h - e*g) * inv), float32((b*g - a*h) * inv), float32((a*e - b*d) * inv),
	}
}

// Transformer converts colors from one space to another through XYZ D50.
type Transformer struct {
	src, dst *Space
	m        [9]float32 // src linear RGB -> dst linear RGB
}

// NewTransformer returns a transformer from src to dst, or nil when the two
// spaces are equal and no conversion is needed. Nil spaces mean sRGB.
func NewTransformer(src, dst *Space) *Transformer {
	if src == nil {
		src = srgb
	}
	if dst == nil {
		dst = srgb
	}
	if Equal(src, dst) {
		return nil
	}
	return &Transformer{
		src: src,
		dst: dst,
		m:   mul3x3(invert3x3(dst.toXYZ), src.toXYZ),
	}
}

// mul3x3 multiplies two row-major 3x3 matrices.
func mul3x3(a, b [9]float32) [9]float32 {
	var out [9]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a[r*3+k] * b[k*3+c]
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// Apply converts a single unpremultiplied RGBA color from src to dst.
func (t *Transformer) Apply(c [4]float32) [4]float32 {
	r := t.src.decode(c[0])
	g := t.src.decode(c[1])
	b := t.src.decode(c[2])

	m := &t.m
	lr := m[0]*r + m[1]*g + m[2]*b
	lg := m[3]*r + m[4]*g + m[5]*b
	lb := m[6]*r + m[7]*g + m[8]*b

	return [4]float32{
		t.dst.encode(lr),
		t.dst.encode(lg),
		t.dst.encode(lb),
		c[3],
	}
}
