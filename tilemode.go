package gradient

import (
	"fmt"
	"math"
)

// TileMode defines how a gradient maps parameter values outside [0, 1]
// back into range.
type TileMode uint8

const (
	// TileClamp extends the edge colors beyond the gradient bounds.
	TileClamp TileMode = iota
	// TileRepeat repeats the gradient pattern.
	TileRepeat
	// TileMirror alternates the gradient pattern, mirroring on each repeat.
	TileMirror
	// TileDecal renders transparent outside [0, 1].
	TileDecal

	tileModeCount
)

// String returns a human-readable name for the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	case TileDecal:
		return "Decal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}

// valid reports whether the mode is one of the defined constants.
func (m TileMode) valid() bool {
	return m < tileModeCount
}

// applyTileMode maps t into [0, 1] according to the tile mode.
// The second result is false when decal tiling rejects the parameter;
// the caller renders transparent in that case.
func applyTileMode(t float32, mode TileMode) (float32, bool) {
	switch mode {
	case TileRepeat:
		t -= float32(math.Floor(float64(t)))
		if t < 0 {
			t++
		}
		return t, true
	case TileMirror:
		t1 := float64(t) - 1
		t1 = t1 - 2*math.Floor(t1*0.5) - 1
		return float32(math.Abs(t1)), true
	case TileDecal:
		if t < 0 || t > 1 {
			return t, false
		}
		return t, true
	default: // TileClamp
		return pin(t, 0, 1), true
	}
}
