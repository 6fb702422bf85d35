package gradient

import (
	"math"
	"testing"
)

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(3, -7).Multiply(Rotate(math.Pi / 3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular for an affine composition")
	}

	p := Point{X: 4, Y: -9}
	got := inv.TransformPoint(m.TransformPoint(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("round trip moved %v to %v", p, got)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if _, ok := (Matrix{}).Invert(); ok {
		t.Error("Invert() succeeded on the zero matrix")
	}
	if _, ok := Scale(1, 0).Invert(); ok {
		t.Error("Invert() succeeded on a rank-deficient scale")
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestApplyTileMode(t *testing.T) {
	tests := []struct {
		mode   TileMode
		t      float32
		want   float32
		wantOK bool
	}{
		{TileClamp, -0.5, 0, true},
		{TileClamp, 1.5, 1, true},
		{TileRepeat, 1.25, 0.25, true},
		{TileRepeat, -0.25, 0.75, true},
		{TileMirror, 1.25, 0.75, true},
		{TileMirror, 2.25, 0.25, true},
		{TileMirror, -0.25, 0.25, true},
		{TileDecal, 0.5, 0.5, true},
		{TileDecal, 1.01, 0, false},
		{TileDecal, -0.01, 0, false},
	}
	for _, tt := range tests {
		got, ok := applyTileMode(tt.t, tt.mode)
		if ok != tt.wantOK {
			t.Errorf("applyTileMode(%v, %v) ok = %v, want %v", tt.t, tt.mode, ok, tt.wantOK)
			continue
		}
		if ok && math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("applyTileMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
		}
	}
}
