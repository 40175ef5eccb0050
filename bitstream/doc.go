// Package bitstream implements the packed variable-length integer
// reader/writer that the codec layer builds its per-field encoders on top
// of (spec §4.B).
//
// A Writer/Reader pair operates over a single caller-sized byte block with
// a bit cursor. Bits are packed big-endian within each byte. Signed
// integers use zigzag-then-varint encoding, the same scheme the teacher
// uses for delta timestamps (groups of 7 bits, high bit = continuation).
// Writes that would exceed the declared block length return ErrBlockFull
// instead of growing the block; the composite codec in package codec uses
// that signal to close out the current block.
package bitstream
