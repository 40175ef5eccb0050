package indexed

import (
	"fmt"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/format"
	"github.com/nickdarling94/tsfile/typesig"
)

// subheader is the default raw-serializer subheader of spec §6: a
// record-size echo (checked on open against the caller's codec record
// size) followed by the type signature.
type subheader struct {
	recordSize int32
	spec       typesig.FieldSpec
	typeMap    typesig.TypeMap
	persisted  typesig.Signature
}

func (s *subheader) WriteSubheader() []byte {
	sig := typesig.Build(s.spec)

	buf := make([]byte, 4)
	endian.Native().PutUint32(buf, uint32(s.recordSize))

	return append(buf, sig.Bytes()...)
}

func (s *subheader) InitExisting(version format.Version, data []byte) error {
	if version != format.Current {
		return fmt.Errorf("indexed: %w: version %s", errs.ErrVersionIncompatible, version)
	}
	if len(data) < 4 {
		return fmt.Errorf("indexed: %w: subheader too short", errs.ErrInvalidHeaderSize)
	}

	echo := int32(endian.Native().Uint32(data[0:4]))
	if echo != s.recordSize {
		return fmt.Errorf("indexed: %w: subheader echo %d, codec record size %d", errs.ErrRecordSizeChanged, echo, s.recordSize)
	}

	persisted, _, err := typesig.Parse(data[4:])
	if err != nil {
		return fmt.Errorf("indexed: parsing signature: %w", err)
	}

	current := typesig.Build(s.spec)
	if err := typesig.Verify(persisted, current, s.typeMap); err != nil {
		return err
	}
	s.persisted = persisted

	return nil
}
