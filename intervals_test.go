package gradient

import "testing"

func TestBuildAnalyticStrategySelection(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 1, 0)
	c := RGB(0, 0, 1)
	d := RGB(1, 1, 1)

	tests := []struct {
		name      string
		desc      Descriptor
		want      InterpolationStrategy
		intervals int
		threshold float32
	}{
		{
			name:      "two stops",
			desc:      Descriptor{Colors: []Color4f{a, b}},
			want:      StrategySingle,
			intervals: 2,
		},
		{
			name:      "three even stops",
			desc:      Descriptor{Colors: []Color4f{a, b, c}},
			want:      StrategyThreshold,
			intervals: 4,
			threshold: 0.5,
		},
		{
			name: "left hard stop under clamp",
			desc: Descriptor{
				Colors:    []Color4f{a, b, c},
				Positions: []float32{0, 0, 1},
			},
			want:      StrategyThresholdClamp1,
			intervals: 4,
		},
		{
			name: "right hard stop under clamp",
			desc: Descriptor{
				Colors:    []Color4f{a, b, c},
				Positions: []float32{0, 1, 1},
			},
			want:      StrategyThresholdClamp0,
			intervals: 4,
			threshold: 1,
		},
		{
			name: "interior hard stop with four stops",
			desc: Descriptor{
				Colors:    []Color4f{a, b, c, d},
				Positions: []float32{0, 0.5, 0.5, 1},
			},
			want:      StrategyThreshold,
			intervals: 4,
			threshold: 0.5,
		},
		{
			name:      "four even stops fall back to texture",
			desc:      Descriptor{Colors: []Color4f{a, b, c, d}},
			want:      StrategyTexture,
			intervals: 0,
		},
		{
			name: "five stops fall back to texture",
			desc: Descriptor{
				Colors: []Color4f{a, b, c, d, a},
			},
			want:      StrategyTexture,
			intervals: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.desc)
			an := BuildAnalytic(g, nil)
			if an.Strategy != tt.want {
				t.Fatalf("Strategy = %v, want %v", an.Strategy, tt.want)
			}
			if len(an.Intervals) != tt.intervals {
				t.Errorf("len(Intervals) = %d, want %d", len(an.Intervals), tt.intervals)
			}
			if tt.want == StrategyThreshold && an.Threshold != tt.threshold {
				t.Errorf("Threshold = %v, want %v", an.Threshold, tt.threshold)
			}
		})
	}
}

func TestBuildAnalyticClampInterval(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 1, 0)
	c := RGB(0, 0, 1)
	g := mustNew(t, Descriptor{
		Colors:    []Color4f{a, b, c},
		Positions: []float32{0, 0, 1},
	})

	an := BuildAnalytic(g, nil)
	if an.Strategy != StrategyThresholdClamp1 {
		t.Fatalf("Strategy = %v, want %v", an.Strategy, StrategyThresholdClamp1)
	}
	// The clamp interval is a constant: zero scale, bias = the edge color.
	if (an.Intervals[0] != Color4f{}) {
		t.Errorf("clamp interval scale = %v, want zero", an.Intervals[0])
	}
	if an.Intervals[1] != a {
		t.Errorf("clamp interval bias = %v, want %v", an.Intervals[1], a)
	}
}

func TestBuildAnalyticHardStopFoldedByTiling(t *testing.T) {
	// Under repeat tiling the edge hard stop is invisible; the gradient
	// reduces to a single interval.
	g := mustNew(t, Descriptor{
		Colors:    []Color4f{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)},
		Positions: []float32{0, 0, 1},
		TileMode:  TileRepeat,
	})
	an := BuildAnalytic(g, nil)
	if an.Strategy != StrategySingle {
		t.Errorf("Strategy = %v, want %v", an.Strategy, StrategySingle)
	}
}

func TestBuildAnalyticPremulType(t *testing.T) {
	g := mustNew(t, Descriptor{
		Colors: []Color4f{RGB(1, 0, 0), RGB(0, 0, 1)},
		Flags:  FlagInterpolateColorsInPremul,
	})
	if an := BuildAnalytic(g, nil); an.Premul != PremulBeforeInterp {
		t.Errorf("Premul = %v, want PremulBeforeInterp", an.Premul)
	}

	g = mustNew(t, Descriptor{
		Colors: []Color4f{RGB(1, 0, 0), RGB(0, 0, 1)},
	})
	if an := BuildAnalytic(g, nil); an.Premul != PremulAfterInterp {
		t.Errorf("Premul = %v, want PremulAfterInterp", an.Premul)
	}
}
