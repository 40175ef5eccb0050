// Package streamio is the lazy windowed streaming iterator (spec §4.J): it
// drives a resolved [firstOrdinal, firstOrdinal+count) ordinal range
// through a growing buffer sequence from bufpool, reading each window from
// a Source (a uniform or indexed file) and yielding the populated buffer.
// The consumer must finish with each yielded buffer before the sequence
// advances to the next.
package streamio
