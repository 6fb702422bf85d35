package gradient

import (
	"errors"

	"github.com/gogpu/gradient/internal/colorspace"
)

// Flags control how a gradient interpolates between its stop colors.
type Flags uint32

const (
	// FlagInterpolateColorsInPremul interpolates colors in premultiplied
	// alpha space instead of straight alpha space.
	FlagInterpolateColorsInPremul Flags = 1 << 0

	// flagsMask covers the bits that survive serialization.
	flagsMask Flags = 0xFF
)

// Construction-time rejections. These mirror the validation performed
// before the canonicalizer runs: callers get an error, never a panic.
var (
	// ErrMissingColors is returned when a descriptor has no stop colors.
	ErrMissingColors = errors.New("gradient: at least one stop color is required")

	// ErrPositionCount is returned when the positions slice is present but
	// its length does not match the colors slice.
	ErrPositionCount = errors.New("gradient: positions length must match colors length")

	// ErrBadTileMode is returned for a tile mode outside the defined range.
	ErrBadTileMode = errors.New("gradient: invalid tile mode")

	// ErrNonFiniteGeometry is returned when shape geometry contains NaN or
	// infinite coordinates.
	ErrNonFiniteGeometry = errors.New("gradient: non-finite geometry")

	// ErrNegativeRadius is returned for radial or conical radii below zero.
	ErrNegativeRadius = errors.New("gradient: radius must be non-negative")

	// ErrBadAngles is returned when a sweep's start angle is not below its
	// end angle, or either angle is not finite.
	ErrBadAngles = errors.New("gradient: invalid sweep angles")

	// ErrSingularMatrix is returned for a non-invertible local matrix.
	ErrSingularMatrix = errors.New("gradient: local matrix is not invertible")

	// ErrEmptyShader is returned for degenerate geometry that draws nothing.
	ErrEmptyShader = errors.New("gradient: degenerate geometry draws nothing")
)

// Descriptor is the raw caller-supplied gradient specification.
// Positions may be nil, meaning the stops are evenly spaced. Space may be
// nil, meaning sRGB. The zero LocalMatrix value means no local transform.
type Descriptor struct {
	Colors    []Color4f
	Positions []float32
	Space     *colorspace.Space
	TileMode  TileMode
	Flags     Flags

	LocalMatrix    Matrix
	HasLocalMatrix bool
}

// validate applies the construction-time rejections shared by every shape.
func (d *Descriptor) validate() error {
	if len(d.Colors) < 1 {
		return ErrMissingColors
	}
	if d.Positions != nil && len(d.Positions) != len(d.Colors) {
		return ErrPositionCount
	}
	if !d.TileMode.valid() {
		return ErrBadTileMode
	}
	if d.HasLocalMatrix {
		if _, ok := d.LocalMatrix.Invert(); !ok {
			return ErrSingularMatrix
		}
	}
	return nil
}

// expandSingleColor rewrites a one-color descriptor as an equivalent
// two-stop gradient with evenly spaced stops.
func (d *Descriptor) expandSingleColor() {
	if len(d.Colors) == 1 {
		d.Colors = []Color4f{d.Colors[0], d.Colors[0]}
		d.Positions = nil
	}
}

// optimizeStops drops the redundant boundary stop from the common 3-stop
// hard-edge idioms {0,0,1} and {0,1,1}. The duplicated edge contributes no
// visible pixels when the adjacent colors match, or when repeat/mirror
// tiling folds the edges together, so the gradient reduces to 2 stops.
func (d *Descriptor) optimizeStops() {
	if d.Positions == nil || len(d.Colors) != 3 {
		return
	}
	pos := d.Positions
	folded := d.TileMode == TileRepeat || d.TileMode == TileMirror

	if nearlyZero(pos[0]) && nearlyZero(pos[1]) && nearlyEqual(pos[2], 1) {
		if folded || d.Colors[0] == d.Colors[1] {
			// Ignore the leftmost color/pos.
			d.Colors = d.Colors[1:]
			d.Positions = pos[1:]
		}
	} else if nearlyZero(pos[0]) && nearlyEqual(pos[1], 1) && nearlyEqual(pos[2], 1) {
		if folded || d.Colors[1] == d.Colors[2] {
			// Ignore the rightmost color/pos.
			d.Colors = d.Colors[:2]
			d.Positions = pos[:2]
		}
	}
}
