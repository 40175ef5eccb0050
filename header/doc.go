// Package header frames and versions a tsfile file (spec §4.F, §6): the
// fixed prefix (magic, header length, record size, layout version, tag,
// type name) followed by a serializer-specific subheader whose bytes this
// package treats as opaque and simply locates by length.
//
// On create, the prefix is assembled, the subheader bytes are appended,
// and the whole header is written atomically via natefinch/atomic so a
// reader never observes a half-written file. On open, the prefix is
// validated first (magic, then header length sanity), then the subheader
// is handed to a SubheaderCodec for version-aware decoding.
package header
