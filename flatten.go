package gradient

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gradient/internal/colorspace"
)

// Serialization flag word layout. Bits 12:28 are reserved.
const (
	flattenHasPositions   = uint32(1) << 31
	flattenHasLocalMatrix = uint32(1) << 30
	flattenHasColorSpace  = uint32(1) << 29

	flattenTileModeShift = 8
	flattenTileModeMask  = uint32(0xF)

	flattenFlagsMask = uint32(0xFF)
)

// ErrTruncated is returned when serialized gradient data ends early or
// carries an impossible length prefix.
var ErrTruncated = errors.New("gradient: truncated serialized data")

// Flatten serializes the canonical gradient:
//
//	uint32  flag word (positions/matrix/space presence, tile mode, flags)
//	uint32  color count, then count RGBA float32 quads
//	uint32-prefixed color space blob   (if present)
//	count scalars                      (if positions are explicit)
//	6 float64 matrix record            (if a local matrix is set)
//
// All values are little-endian. The writer persists whatever position array
// the gradient currently holds; an implicitly uniform gradient writes none.
func (g *Gradient) Flatten() []byte {
	var spaceBlob []byte
	if g.space != nil {
		spaceBlob = g.space.Serialize()
	}

	flags := uint32(g.tile) << flattenTileModeShift
	flags |= uint32(g.flags) & flattenFlagsMask
	if g.pos != nil {
		flags |= flattenHasPositions
	}
	if g.hasLocal {
		flags |= flattenHasLocalMatrix
	}
	if spaceBlob != nil {
		flags |= flattenHasColorSpace
	}

	buf := make([]byte, 0, 8+len(g.colors)*20+len(spaceBlob)+52)
	buf = binary.LittleEndian.AppendUint32(buf, flags)

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.colors)))
	for _, c := range g.colors {
		buf = appendFloat32(buf, c.R)
		buf = appendFloat32(buf, c.G)
		buf = appendFloat32(buf, c.B)
		buf = appendFloat32(buf, c.A)
	}

	if spaceBlob != nil {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(spaceBlob)))
		buf = append(buf, spaceBlob...)
	}
	if g.pos != nil {
		for _, p := range g.pos {
			buf = appendFloat32(buf, p)
		}
	}
	if g.hasLocal {
		for _, v := range [6]float64{g.local.A, g.local.B, g.local.C, g.local.D, g.local.E, g.local.F} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return buf
}

// Unflatten reconstructs a gradient from Flatten output. The result is
// re-canonicalized, so a stored position array that happens to be uniform
// legitimately collapses back to the implicit representation.
func Unflatten(data []byte) (*Gradient, error) {
	r := reader{data: data}

	flags, err := r.uint32()
	if err != nil {
		return nil, err
	}

	d := Descriptor{
		TileMode: TileMode(flags >> flattenTileModeShift & flattenTileModeMask),
		Flags:    Flags(flags & flattenFlagsMask),
	}

	count, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if count == 0 || count > uint32(len(data)/16) {
		return nil, fmt.Errorf("%w: color count %d", ErrTruncated, count)
	}

	d.Colors = make([]Color4f, count)
	for i := range d.Colors {
		c := &d.Colors[i]
		for _, ch := range []*float32{&c.R, &c.G, &c.B, &c.A} {
			if *ch, err = r.float32(); err != nil {
				return nil, err
			}
		}
	}

	if flags&flattenHasColorSpace != 0 {
		blob, err := r.bytes()
		if err != nil {
			return nil, err
		}
		space, err := colorspace.Deserialize(blob)
		if err != nil {
			return nil, err
		}
		d.Space = space
	}

	if flags&flattenHasPositions != 0 {
		d.Positions = make([]float32, count)
		for i := range d.Positions {
			if d.Positions[i], err = r.float32(); err != nil {
				return nil, err
			}
		}
	}

	if flags&flattenHasLocalMatrix != 0 {
		m := [6]float64{}
		for i := range m {
			if m[i], err = r.float64(); err != nil {
				return nil, err
			}
		}
		d.LocalMatrix = Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
		d.HasLocalMatrix = true
	}

	return New(d)
}

func appendFloat32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

// reader is a bounds-checked little-endian cursor over serialized data.
type reader struct {
	data []byte
	off  int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.off+n > len(r.data) {
		return nil, ErrTruncated
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) float32() (float32, error) {
	v, err := r.uint32()
	return math.Float32frombits(v), err
}

func (r *reader) float64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (r *reader) bytes() ([]byte, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if int(n) > len(r.data)-r.off {
		return nil, ErrTruncated
	}
	return r.take(int(n))
}
