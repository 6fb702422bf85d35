package colorspace

import (
	"errors"
	"fmt"

	"seehuhn.de/go/icc"
)

// ErrUnknownSpace is returned when a serialized blob does not describe a
// color space this package can represent.
var ErrUnknownSpace = errors.New("colorspace: unknown color space data")

// Serialize returns a compact blob identifying the space.
// Predefined spaces serialize to a single tag byte.
func (s *Space) Serialize() []byte {
	return []byte{s.tag}
}

// Deserialize reconstructs a space from a Serialize blob. Blobs that are not
// in the native tag format are tried as ICC profiles.
func Deserialize(data []byte) (*Space, error) {
	if len(data) == 1 {
		switch data[0] {
		case tagSRGB:
			return srgb, nil
		case tagLinearSRGB:
			return linearSRGB, nil
		case tagDisplayP3:
			return displayP3, nil
		}
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownSpace, data[0])
	}
	return FromICC(data)
}

// ICCProfile returns an ICC profile blob equivalent to the space, when one
// is available. Only sRGB has a canned profile.
func (s *Space) ICCProfile() ([]byte, bool) {
	if s.tag == tagSRGB {
		return icc.SRGBv2Profile, true
	}
	return nil, false
}

// FromICC maps an ICC profile blob onto one of the supported spaces.
// Any three-component RGB profile is treated as sRGB; profiles for other
// color models are rejected. This is a deliberately narrow reading: gradient
// stop colors are always RGBA, and callers needing exact profile math apply
// it before handing colors to this package.
func FromICC(data []byte) (*Space, error) {
	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("colorspace: decode ICC profile: %w", err)
	}
	if p.ColorSpace != icc.RGBSpace {
		return nil, fmt.Errorf("%w: ICC color space %v", ErrUnknownSpace, p.ColorSpace)
	}
	return srgb, nil
}
