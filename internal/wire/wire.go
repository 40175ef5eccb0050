// Package wire provides the small set of length-prefixed primitives shared
// by the header prefix and the type signature subheader: varint-length-
// prefixed UTF-8 strings, laid out exactly as spec §6 describes.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteString appends a varint-length-prefixed UTF-8 string to buf.
func WriteString(buf []byte, s string) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(s)))
	buf = append(buf, tmp[:n]...)
	buf = append(buf, s...)

	return buf
}

// ReadString reads a varint-length-prefixed UTF-8 string from data starting
// at offset, returning the string and the offset immediately after it.
func ReadString(data []byte, offset int) (string, int, error) {
	length, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return "", offset, fmt.Errorf("wire: invalid string length varint: %w", io.ErrUnexpectedEOF)
	}
	offset += n

	end := offset + int(length)
	if end > len(data) {
		return "", offset, fmt.Errorf("wire: string extends past buffer end: %w", io.ErrUnexpectedEOF)
	}

	return string(data[offset:end]), end, nil
}

// SizeOfString returns the number of bytes WriteString would append for s.
func SizeOfString(s string) int {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(s)))

	return n + len(s)
}
