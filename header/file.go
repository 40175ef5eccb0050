package header

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/format"
	"github.com/nickdarling94/tsfile/internal/options"
)

// SubheaderCodec is implemented by each file kind (uniform, indexed) to
// produce and consume its serializer-specific subheader bytes. InitExisting
// is handed the file's persisted version so it can select among supported
// legacy layouts; an unrecognized version is fatal.
type SubheaderCodec interface {
	WriteSubheader() []byte
	InitExisting(version format.Version, subheader []byte) error
}

// CreateFile writes a brand-new file's header at path: the prefix followed
// by sub's subheader, as a single atomic write so no reader ever observes a
// partially written header. The file must not already exist.
func CreateFile(path string, recordSize int32, tag, typeName string, sub SubheaderCodec, opts ...CreateOption) (headerLength int, err error) {
	cfg := &createConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	subheader := sub.WriteSubheader()
	if cfg.reservedBytes > 0 {
		subheader = append(subheader, make([]byte, cfg.reservedBytes)...)
	}

	p := Prefix{
		RecordSize: recordSize,
		Version:    format.Current,
		Tag:        tag,
		TypeName:   typeName,
	}
	image := Build(p, subheader)

	if err := atomic.WriteFile(path, bytes.NewReader(image)); err != nil {
		return 0, fmt.Errorf("header: create %s: %w", path, err)
	}

	return len(image), nil
}

// OpenFile reads and validates the header of an existing file, dispatching
// the subheader bytes to sub.InitExisting. It returns the parsed prefix and
// the header length (the offset at which the record body begins).
func OpenFile(f *os.File, sub SubheaderCodec) (Parsed, error) {
	probe := make([]byte, 4096)
	n, err := f.ReadAt(probe, 0)
	if err != nil && n < 8 {
		return Parsed{}, fmt.Errorf("header: reading prefix: %w", err)
	}
	probe = probe[:n]

	headerLength, err := ParseFixed(probe)
	if err != nil {
		return Parsed{}, err
	}

	image := probe
	if headerLength > len(image) {
		image = make([]byte, headerLength)
		if _, err := f.ReadAt(image, 0); err != nil {
			return Parsed{}, fmt.Errorf("header: reading full header (%d bytes): %w", headerLength, err)
		}
	} else {
		image = image[:headerLength]
	}

	parsed, err := Parse(image)
	if err != nil {
		return Parsed{}, err
	}

	if err := sub.InitExisting(parsed.Version, parsed.Subheader); err != nil {
		return Parsed{}, err
	}

	return parsed, nil
}

// CheckBodyDivisibility validates spec §3's open-time invariant: the body
// (fileSize − headerLength) must be an exact multiple of recordSize. It
// returns the derived record count.
func CheckBodyDivisibility(fileSize int64, headerLength int, recordSize int32) (count int64, err error) {
	body := fileSize - int64(headerLength)
	if body < 0 {
		return 0, fmt.Errorf("header: %w: file shorter than its own header", errs.ErrInvalidHeaderSize)
	}
	if recordSize <= 0 {
		return 0, fmt.Errorf("header: %w: recordSize %d", errs.ErrRecordSizeInvalid, recordSize)
	}

	if body%int64(recordSize) != 0 {
		return 0, fmt.Errorf("header: %w: body of %d bytes is not a multiple of record size %d", errs.ErrRecordSizeChanged, body, recordSize)
	}

	return body / int64(recordSize), nil
}
