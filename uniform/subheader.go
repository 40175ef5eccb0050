package uniform

import (
	"fmt"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/format"
)

// dateTimeKindMask keeps the 62-bit tick count and clears the two
// DateTimeKind flag bits .NET's DateTime.ToBinary sets atop it (spec
// scenario S2).
const dateTimeKindMask = int64(0x3FFFFFFFFFFFFFFF)

// subheader is the uniform-file header.SubheaderCodec: it persists Δ and
// T0 (current layout) and can recover T0 from the legacy DateTime.ToBinary
// encoding when opening a v1.0 file.
type subheader struct {
	t0    int64
	delta int64
}

func (s *subheader) WriteSubheader() []byte {
	e := endian.Native()
	buf := make([]byte, 16)
	e.PutUint64(buf[0:8], uint64(s.delta))
	e.PutUint64(buf[8:16], uint64(s.t0))

	return buf
}

func (s *subheader) InitExisting(version format.Version, data []byte) error {
	if len(data) < 16 {
		return fmt.Errorf("uniform: %w: subheader too short", errs.ErrInvalidHeaderSize)
	}

	e := endian.Native()
	delta := int64(e.Uint64(data[0:8]))
	second := int64(e.Uint64(data[8:16]))

	switch version {
	case format.Current:
		s.delta = delta
		s.t0 = second
	case format.Legacy:
		s.delta = delta
		s.t0 = second & dateTimeKindMask
	default:
		return fmt.Errorf("uniform: %w: version %s", errs.ErrVersionIncompatible, version)
	}

	return nil
}
