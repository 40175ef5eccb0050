package header

import (
	"fmt"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/format"
	"github.com/nickdarling94/tsfile/internal/wire"
)

// Magic is the stable 4-byte signature at offset 0 of every tsfile file.
const Magic uint32 = 0xBF71C80A

// MinHeaderLength is the smallest header length accepted on open: the
// fixed prefix fields plus two (possibly empty) length-prefixed strings.
const MinHeaderLength = fixedPrefixLen + 2

// fixedPrefixLen is the size, in bytes, of the prefix fields that precede
// the tag and type-name strings: magic, headerLength, recordSize,
// versionMajor, versionMinor.
const fixedPrefixLen = 4 + 4 + 4 + 2 + 2

// Prefix is the fixed-offset header prefix described by spec §6.
type Prefix struct {
	RecordSize int32
	Version    format.Version
	Tag        string
	TypeName   string
}

// Build assembles the full header byte image: the prefix followed by
// subheader, with the headerLength field filled in once the total size is
// known.
func Build(p Prefix, subheader []byte) []byte {
	e := endian.Native()
	buf := make([]byte, 0, fixedPrefixLen+wire.SizeOfString(p.Tag)+wire.SizeOfString(p.TypeName)+len(subheader))

	var u32 [4]byte
	e.PutUint32(u32[:], Magic)
	buf = append(buf, u32[:]...)

	buf = append(buf, 0, 0, 0, 0) // headerLength placeholder, patched below

	e.PutUint32(u32[:], uint32(p.RecordSize))
	buf = append(buf, u32[:]...)

	var u16 [2]byte
	e.PutUint16(u16[:], uint16(p.Version.Major))
	buf = append(buf, u16[:]...)
	e.PutUint16(u16[:], uint16(p.Version.Minor))
	buf = append(buf, u16[:]...)

	buf = wire.WriteString(buf, p.Tag)
	buf = wire.WriteString(buf, p.TypeName)
	buf = append(buf, subheader...)

	e.PutUint32(buf[4:8], uint32(len(buf)))

	return buf
}

// Parsed is a fully decoded header: the prefix fields, the header length
// recorded in the file, and the raw subheader bytes.
type Parsed struct {
	Prefix
	HeaderLength int
	Subheader    []byte
}

// ParseFixed reads the magic and headerLength from the first 8 bytes of a
// header image, validating the magic and a minimum sane header length.
// Callers use the returned headerLength to size the full read before
// calling Parse.
func ParseFixed(head []byte) (headerLength int, err error) {
	if len(head) < 8 {
		return 0, fmt.Errorf("header: %w: need at least 8 bytes, got %d", errs.ErrInvalidHeaderSize, len(head))
	}

	e := endian.Native()
	magic := e.Uint32(head[0:4])
	if magic != Magic {
		return 0, fmt.Errorf("header: %w: got %#x, want %#x", errs.ErrInvalidMagicNumber, magic, Magic)
	}

	headerLength = int(e.Uint32(head[4:8]))
	if headerLength < MinHeaderLength {
		return 0, fmt.Errorf("header: %w: headerLength %d below minimum %d", errs.ErrInvalidHeaderSize, headerLength, MinHeaderLength)
	}

	return headerLength, nil
}

// Parse decodes a full header image (exactly headerLength bytes, as
// reported by ParseFixed) into its prefix fields and subheader bytes.
func Parse(head []byte) (Parsed, error) {
	headerLength, err := ParseFixed(head)
	if err != nil {
		return Parsed{}, err
	}
	if len(head) < headerLength {
		return Parsed{}, fmt.Errorf("header: %w: image is %d bytes, want %d", errs.ErrInvalidHeaderSize, len(head), headerLength)
	}

	e := endian.Native()
	recordSize := int32(e.Uint32(head[8:12]))
	major := int16(e.Uint16(head[12:14]))
	minor := int16(e.Uint16(head[14:16]))

	offset := 16
	tag, offset, err := wire.ReadString(head, offset)
	if err != nil {
		return Parsed{}, fmt.Errorf("header: reading tag: %w", err)
	}
	typeName, offset, err := wire.ReadString(head, offset)
	if err != nil {
		return Parsed{}, fmt.Errorf("header: reading type name: %w", err)
	}

	return Parsed{
		Prefix: Prefix{
			RecordSize: recordSize,
			Version:    format.Version{Major: major, Minor: minor},
			Tag:        tag,
			TypeName:   typeName,
		},
		HeaderLength: headerLength,
		Subheader:    head[offset:headerLength],
	}, nil
}
