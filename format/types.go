// Package format defines the small, stable enums shared across the file
// engine: the field-encoding strategy selected by the codec layer and the
// on-disk layout version of a file header.
package format

import "strconv"

// EncodingType selects the per-field codec used by the codec layer.
type EncodingType uint8

const (
	TypeRaw             EncodingType = 0x1 // TypeRaw stores fields uninterpreted, full width.
	TypeMultipliedDelta EncodingType = 0x2 // TypeMultipliedDelta stores signed-varint deltas of a scaled running sum.
	TypeTimestamp       EncodingType = 0x3 // TypeTimestamp is TypeMultipliedDelta specialized with multiplier 1.
	TypeComposite       EncodingType = 0x4 // TypeComposite dispatches to per-field member codecs in declared order.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeMultipliedDelta:
		return "MultipliedDelta"
	case TypeTimestamp:
		return "Timestamp"
	case TypeComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// Version is the major/minor file-layout version persisted in the header
// prefix (spec §6). The reader selects a decoder by version; the writer
// always emits Current.
type Version struct {
	Major int16
	Minor int16
}

// Current is the file layout version this module writes.
var Current = Version{Major: 1, Minor: 1}

// Legacy is the previous uniform-file subheader layout (OS DateTime.ToBinary
// timestamps instead of raw ticks), retained for read compatibility.
var Legacy = Version{Major: 1, Minor: 0}

func (v Version) String() string {
	return strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}
