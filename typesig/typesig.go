package typesig

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/internal/wire"
)

// FieldSpec describes one field of a record layout, caller-supplied (no
// reflection). Primitive fields leave Fields nil; composite fields nest
// their members under Fields and open a new depth level.
type FieldSpec struct {
	Name    string
	TypeTag string
	Fields  []FieldSpec
}

// Entry is one (depth, typeTag) pair of a built signature.
type Entry struct {
	Depth   int
	TypeTag string
}

// Signature is the full depth-tagged field sequence plus a cheap xxhash
// fingerprint of its entries, used by Equal as a fast first-look check
// before the full structural compare. The fingerprint is computed by Build
// and Parse; Bytes does not persist it.
type Signature struct {
	Entries     []Entry
	Fingerprint uint64
}

// Build walks spec depth-first and produces its signature. The root spec
// itself is not emitted as an entry; only its fields (and their nested
// fields) are.
func Build(spec FieldSpec) Signature {
	var entries []Entry
	walk(spec.Fields, 0, &entries)

	sig := Signature{Entries: entries}
	sig.Fingerprint = fingerprint(entries)

	return sig
}

func walk(fields []FieldSpec, depth int, out *[]Entry) {
	for _, f := range fields {
		*out = append(*out, Entry{Depth: depth, TypeTag: f.TypeTag})
		if len(f.Fields) > 0 {
			walk(f.Fields, depth+1, out)
		}
	}
}

func fingerprint(entries []Entry) uint64 {
	eng := endian.Native()
	h := xxhash.New()
	for _, e := range entries {
		var depthBuf [8]byte
		eng.PutUint64(depthBuf[:], uint64(e.Depth))
		_, _ = h.Write(depthBuf[:])
		_, _ = h.Write([]byte(e.TypeTag))
	}

	return h.Sum64()
}

// TypeMap authorizes named remappings between a persisted tag and the tag
// the in-memory type currently uses, so a signature mismatch caused purely
// by a renamed type doesn't fail open.
type TypeMap map[string]string

// resolve returns the tag persistedTag should be compared against: either
// its TypeMap remapping, or itself if there's no entry.
func (m TypeMap) resolve(persistedTag string) string {
	if m == nil {
		return persistedTag
	}
	if mapped, ok := m[persistedTag]; ok {
		return mapped
	}

	return persistedTag
}

// Equal reports whether persisted (read from a file's subheader) matches
// current (built from the in-memory record's FieldSpec), consulting typeMap
// for authorized renames. typeMap may be nil. With an empty typeMap,
// differing fingerprints fail the comparison before any entry is compared.
func Equal(persisted, current Signature, typeMap TypeMap) bool {
	if len(typeMap) == 0 && persisted.Fingerprint != current.Fingerprint {
		return false
	}
	if len(persisted.Entries) != len(current.Entries) {
		return false
	}

	for i, pe := range persisted.Entries {
		ce := current.Entries[i]
		if pe.Depth != ce.Depth {
			return false
		}
		if typeMap.resolve(pe.TypeTag) != ce.TypeTag {
			return false
		}
	}

	return true
}

// Verify returns errs.ErrSignatureMismatch if persisted doesn't match
// current under typeMap.
func Verify(persisted, current Signature, typeMap TypeMap) error {
	if !Equal(persisted, current, typeMap) {
		return fmt.Errorf("%w: persisted %d fields, current %d fields", errs.ErrSignatureMismatch, len(persisted.Entries), len(current.Entries))
	}

	return nil
}

// Bytes serializes sig as: int32 signatureLen, then signatureLen ×
// (int32 depth, varint-length-prefixed UTF-8 typeTag) — the exact
// subheader layout of spec §6.
func (sig Signature) Bytes() []byte {
	eng := endian.Native()
	buf := make([]byte, 0, 4+len(sig.Entries)*8)

	var lenBuf [4]byte
	eng.PutUint32(lenBuf[:], uint32(len(sig.Entries)))
	buf = append(buf, lenBuf[:]...)

	for _, e := range sig.Entries {
		var depthBuf [4]byte
		eng.PutUint32(depthBuf[:], uint32(e.Depth))
		buf = append(buf, depthBuf[:]...)
		buf = wire.WriteString(buf, e.TypeTag)
	}

	return buf
}

// Parse reads a Signature from data, as written by Bytes, returning the
// signature and the number of bytes consumed.
func Parse(data []byte) (Signature, int, error) {
	if len(data) < 4 {
		return Signature{}, 0, fmt.Errorf("typesig: %w: truncated signature length", errs.ErrInvalidHeaderSize)
	}

	eng := endian.Native()
	count := int(eng.Uint32(data[0:4]))
	offset := 4

	entries := make([]Entry, 0, count)
	for range count {
		if offset+4 > len(data) {
			return Signature{}, 0, fmt.Errorf("typesig: %w: truncated entry", errs.ErrInvalidHeaderSize)
		}
		depth := int(eng.Uint32(data[offset : offset+4]))
		offset += 4

		tag, next, err := wire.ReadString(data, offset)
		if err != nil {
			return Signature{}, 0, err
		}
		offset = next

		entries = append(entries, Entry{Depth: depth, TypeTag: tag})
	}

	sig := Signature{Entries: entries, Fingerprint: fingerprint(entries)}

	return sig, offset, nil
}
