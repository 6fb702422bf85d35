package colorspace

import (
	"errors"
	"math"
	"testing"
)

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Space
		want bool
	}{
		{"nil is sRGB", nil, SRGB(), true},
		{"both nil", nil, nil, true},
		{"same instance", DisplayP3(), DisplayP3(), true},
		{"srgb vs linear", SRGB(), LinearSRGB(), false},
		{"srgb vs p3", SRGB(), DisplayP3(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTransformerIdentity(t *testing.T) {
	if tr := NewTransformer(nil, nil); tr != nil {
		t.Error("NewTransformer(nil, nil) != nil")
	}
	if tr := NewTransformer(SRGB(), nil); tr != nil {
		t.Error("NewTransformer(SRGB, nil) != nil")
	}
	if tr := NewTransformer(DisplayP3(), DisplayP3()); tr != nil {
		t.Error("NewTransformer(P3, P3) != nil")
	}
}

func TestTransferRoundTrip(t *testing.T) {
	toLinear := NewTransformer(SRGB(), LinearSRGB())
	toSRGB := NewTransformer(LinearSRGB(), SRGB())
	if toLinear == nil || toSRGB == nil {
		t.Fatal("expected non-nil transformers between sRGB and linear sRGB")
	}

	in := [4]float32{0.5, 0.25, 0.75, 0.8}
	lin := toLinear.Apply(in)

	// 0.5 encoded is about 0.2140 linear.
	if !near(lin[0], 0.2140, 1e-3) {
		t.Errorf("linear(0.5) = %v, want ~0.2140", lin[0])
	}
	if lin[3] != in[3] {
		t.Errorf("alpha changed: %v -> %v", in[3], lin[3])
	}

	out := toSRGB.Apply(lin)
	for i := range in {
		if !near(out[i], in[i], 1e-4) {
			t.Errorf("round trip channel %d: %v -> %v", i, in[i], out[i])
		}
	}
}

func TestTransformerWhitePreserved(t *testing.T) {
	tr := NewTransformer(SRGB(), DisplayP3())
	got := tr.Apply([4]float32{1, 1, 1, 1})
	for i, v := range got {
		if !near(v, 1, 2e-3) {
			t.Errorf("channel %d = %v, want 1", i, v)
		}
	}
}

func TestTransformerSRGBRedInP3(t *testing.T) {
	tr := NewTransformer(SRGB(), DisplayP3())
	got := tr.Apply([4]float32{1, 0, 0, 1})

	// sRGB red sits inside the P3 gamut: red drops below 1 and picks up
	// a little green.
	if got[0] <= 0.85 || got[0] >= 0.97 {
		t.Errorf("R = %v, want within (0.85, 0.97)", got[0])
	}
	if got[1] <= 0.1 || got[1] >= 0.35 {
		t.Errorf("G = %v, want within (0.1, 0.35)", got[1])
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, s := range []*Space{SRGB(), LinearSRGB(), DisplayP3()} {
		got, err := Deserialize(s.Serialize())
		if err != nil {
			t.Fatalf("Deserialize() error = %v", err)
		}
		if !Equal(got, s) {
			t.Errorf("round trip changed the space (transfer %v)", s.Transfer())
		}
	}
}

func TestDeserializeGarbage(t *testing.T) {
	if _, err := Deserialize([]byte{0xde, 0xad, 0xbe, 0xef}); err == nil {
		t.Error("Deserialize(garbage) succeeded, want error")
	}
	if _, err := Deserialize(nil); err == nil {
		t.Error("Deserialize(nil) succeeded, want error")
	}
	if _, err := Deserialize([]byte{42}); !errors.Is(err, ErrUnknownSpace) {
		t.Errorf("Deserialize(unknown tag) error = %v, want ErrUnknownSpace", err)
	}
}

func TestICCProfileRoundTrip(t *testing.T) {
	prof, ok := SRGB().ICCProfile()
	if !ok {
		t.Fatal("SRGB().ICCProfile() not available")
	}
	got, err := FromICC(prof)
	if err != nil {
		t.Fatalf("FromICC() error = %v", err)
	}
	if got.Transfer() != TransferSRGB {
		t.Errorf("Transfer() = %v, want TransferSRGB", got.Transfer())
	}
}
