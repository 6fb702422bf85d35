// Package wgsl emits WGSL fragment-shader source for gradients that
// evaluate analytically on the GPU, and compiles it to SPIR-V.
//
// The emitted snippet implements the tiling rule and the closed-form
// interval math for the single and threshold strategies. Texture-strategy
// gradients are sampled from a lookup table by the render pipeline instead
// and have no analytic source.
package wgsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/gradient"
)

var (
	// ErrTextureStrategy is returned when asked to emit source for a
	// gradient that must be rendered through a lookup table.
	ErrTextureStrategy = errors.New("wgsl: texture-strategy gradients have no analytic source")

	// ErrUnsupportedTileMode is returned for decal tiling, which is
	// handled by the texture sampler rather than analytic source.
	ErrUnsupportedTileMode = errors.New("wgsl: tile mode not supported analytically")
)

// Fragment emits a complete WGSL module containing gradient_color(t),
// which applies the tile mode and evaluates the analytic strategy, plus a
// trivial fragment entry point so the module compiles standalone.
func Fragment(a gradient.Analytic, tile gradient.TileMode) (string, error) {
	if a.Strategy == gradient.StrategyTexture {
		return "", ErrTextureStrategy
	}
	if tile == gradient.TileDecal {
		return "", ErrUnsupportedTileMode
	}

	var b strings.Builder
	b.WriteString("fn gradient_color(t: f32) -> vec4<f32> {\n")

	// Tiling rules first.
	switch tile {
	case gradient.TileRepeat:
		b.WriteString("    let tiled_t = fract(t);\n")
	case gradient.TileMirror:
		b.WriteString("    let t_1 = t - 1.0;\n")
		b.WriteString("    let tiled_t = abs(t_1 - 2.0 * floor(t_1 * 0.5) - 1.0);\n")
	default: // clamp
		switch a.Strategy {
		case gradient.StrategyThresholdClamp0:
			// Allow t > 1, in order to hit the clamp interval (1, inf).
			b.WriteString("    let tiled_t = max(t, 0.0);\n")
		case gradient.StrategyThresholdClamp1:
			// Allow t < 0, in order to hit the clamp interval (-inf, 0).
			b.WriteString("    let tiled_t = min(t, 1.0);\n")
		default:
			b.WriteString("    let tiled_t = saturate(t);\n")
		}
	}

	// Interval selection.
	switch a.Strategy {
	case gradient.StrategySingle:
		fmt.Fprintf(&b, "    let color_scale = %s;\n", vec4(a.Intervals[0]))
		fmt.Fprintf(&b, "    let color_bias = %s;\n", vec4(a.Intervals[1]))
	default:
		fmt.Fprintf(&b, "    var color_scale: vec4<f32>;\n")
		fmt.Fprintf(&b, "    var color_bias: vec4<f32>;\n")
		fmt.Fprintf(&b, "    if (tiled_t < %s) {\n", lit(a.Threshold))
		fmt.Fprintf(&b, "        color_scale = %s;\n", vec4(a.Intervals[0]))
		fmt.Fprintf(&b, "        color_bias = %s;\n", vec4(a.Intervals[1]))
		b.WriteString("    } else {\n")
		fmt.Fprintf(&b, "        color_scale = %s;\n", vec4(a.Intervals[2]))
		fmt.Fprintf(&b, "        color_bias = %s;\n", vec4(a.Intervals[3]))
		b.WriteString("    }\n")
	}

	b.WriteString("    var color = tiled_t * color_scale + color_bias;\n")
	if a.Premul == gradient.PremulAfterInterp {
		b.WriteString("    color = vec4<f32>(color.rgb * color.a, color.a);\n")
	}
	// Interpolated values can drift out of range; premultiplied channels
	// must stay within [0, alpha].
	b.WriteString("    color = clamp(color, vec4<f32>(0.0), vec4<f32>(color.a));\n")
	b.WriteString("    return color;\n")
	b.WriteString("}\n\n")

	b.WriteString("@fragment\n")
	b.WriteString("fn fs_main(@location(0) t: f32) -> @location(0) vec4<f32> {\n")
	b.WriteString("    return gradient_color(t);\n")
	b.WriteString("}\n")

	return b.String(), nil
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgsl: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// vec4 formats a color as a WGSL vec4<f32> constructor.
func vec4(c gradient.Color4f) string {
	return fmt.Sprintf("vec4<f32>(%s, %s, %s, %s)", lit(c.R), lit(c.G), lit(c.B), lit(c.A))
}

// lit formats a float32 as a WGSL f32 literal.
func lit(v float32) string {
	return fmt.Sprintf("%gf", v)
}
