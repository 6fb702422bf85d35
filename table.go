package gradient

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/x448/float16"

	"github.com/gogpu/gradient/internal/colorspace"
)

// TableSize is the fixed texel count of a gradient lookup table.
const TableSize = 256

// Table is a one-row, 256-texel premultiplied lookup table for gradients
// whose stop pattern has no closed-form evaluation. It is immutable once
// built and may be shared by unlimited readers.
type Table struct {
	format gputypes.TextureFormat
	pix    []byte
}

// Format returns the texel encoding: RGBA8Unorm or RGBA16Float.
func (t *Table) Format() gputypes.TextureFormat {
	return t.format
}

// Pix returns the raw texel data, TableSize texels in row order.
// The slice is shared and must not be modified.
func (t *Table) Pix() []byte {
	return t.pix
}

// Width returns the texel count of the table row.
func (t *Table) Width() int {
	return TableSize
}

// Texel decodes the premultiplied color stored at index i.
func (t *Table) Texel(i int) Color4f {
	switch t.format {
	case gputypes.TextureFormatRGBA16Float:
		o := i * 8
		f := func(off int) float32 {
			return float16.Frombits(binary.LittleEndian.Uint16(t.pix[o+off:])).Float32()
		}
		return Color4f{R: f(0), G: f(2), B: f(4), A: f(6)}
	default:
		o := i * 4
		return Color4f{
			R: float32(t.pix[o+0]) / 255,
			G: float32(t.pix[o+1]) / 255,
			B: float32(t.pix[o+2]) / 255,
			A: float32(t.pix[o+3]) / 255,
		}
	}
}

// texelBytes returns the byte width of one texel in the given format.
func texelBytes(format gputypes.TextureFormat) int {
	if format == gputypes.TextureFormatRGBA16Float {
		return 8
	}
	return 4
}

// LookupTable returns the 256-texel table for the gradient in the
// destination color space, building it on first use and serving subsequent
// requests for identical canonical data from the process-wide cache.
func (g *Gradient) LookupTable(dst *colorspace.Space, format gputypes.TextureFormat) *Table {
	colors := g.transformedColors(dst)
	key := g.tableKey(colors, format)
	return sharedTableCache().findOrBuild(key, func() *Table {
		return g.buildTable(colors, format)
	})
}

// buildTable fills the table by walking consecutive stop pairs and linearly
// stepping colors between their texel indices.
//
// Stops have historically been mapped to [0, 256] and truncated, with 256
// nudged down so position 1.0 lands on the last texel instead of one past
// it. The exact formula is load-bearing for texel placement; keep it.
func (g *Gradient) buildTable(colors []Color4f, format gputypes.TextureFormat) *Table {
	interpInPremul := g.interpolatesInPremul()
	t := &Table{
		format: format,
		pix:    make([]byte, TableSize*texelBytes(format)),
	}

	writePixel := func(c Color4f, index int) {
		if !interpInPremul {
			c = c.Premul()
		}
		t.writeTexel(c, index)
	}

	prevIndex := 0
	for i := 1; i < len(colors); i++ {
		nextIndex := int(min(g.Pos(i)*TableSize, TableSize-1))

		if nextIndex > prevIndex {
			c0 := colors[i-1]
			c1 := colors[i]
			if interpInPremul {
				c0 = c0.Premul()
				c1 = c1.Premul()
			}

			delta := c1.sub(c0).scale(1 / float32(nextIndex-prevIndex))
			for cur := prevIndex; cur <= nextIndex; cur++ {
				writePixel(c0, cur)
				c0 = c0.add(delta)
			}
		}
		prevIndex = nextIndex
	}
	if prevIndex != TableSize-1 {
		panic(fmt.Sprintf("gradient: table walk ended at texel %d", prevIndex))
	}
	return t
}

// writeTexel encodes one premultiplied color into the pixel buffer.
// Only called during the build; the table is immutable afterwards.
func (t *Table) writeTexel(c Color4f, index int) {
	switch t.format {
	case gputypes.TextureFormatRGBA16Float:
		o := index * 8
		put := func(off int, v float32) {
			binary.LittleEndian.PutUint16(t.pix[o+off:], float16.Fromfloat32(v).Bits())
		}
		put(0, c.R)
		put(2, c.G)
		put(4, c.B)
		put(6, c.A)
	default:
		o := index * 4
		t.pix[o+0] = clampAndRound(c.R)
		t.pix[o+1] = clampAndRound(c.G)
		t.pix[o+2] = clampAndRound(c.B)
		t.pix[o+3] = clampAndRound(c.A)
	}
}
