// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

//region [UNIVERSAL 3] BIT STRING

// BitString implements the ASN.1 BIT STRING type. A bit string is padded up
// to the nearest byte in memory and the number of valid bits is recorded.
// Padding bits are encoded and decoded as zero bits.
//
// See also section 22 of Rec. ITU-T X.680.
type BitString struct {
	Bytes     []byte // bits packed into bytes.
	BitLength int    // length in bits.
}

// IsValid reports whether there are enough bytes in s for the indicated
// BitLength.
func (s BitString) IsValid() bool {
	return s.BitLength >= 0 && len(s.Bytes) >= (s.BitLength+8-1)/8
}

// Len returns the number of bits in s.
func (s BitString) Len() int {
	return s.BitLength
}

// At returns the bit at the given index. If the index is out of range At
// panics.
func (s BitString) At(i int) int {
	if i < 0 || i >= s.BitLength {
		panic("index out of range")
	}
	x := i / 8
	y := 7 - uint(i%8)
	return int(s.Bytes[x]>>y) & 1
}

// RightAlign returns a slice where the padding bits are at the beginning. The
// slice may share memory with the BitString.
func (s BitString) RightAlign() []byte {
	shift := uint(8 - (s.BitLength % 8))
	if shift == 8 || len(s.Bytes) == 0 {
		return s.Bytes
	}

	a := make([]byte, len(s.Bytes))
	a[0] = s.Bytes[0] >> shift
	for i := 1; i < len(s.Bytes); i++ {
		a[i] = s.Bytes[i-1] << (8 - shift)
		a[i] |= s.Bytes[i] >> shift
	}

	return a
}

// Equal reports whether s and other contain the same bits.
func (s BitString) Equal(other BitString) bool {
	if s.BitLength != other.BitLength {
		return false
	}
	for i := 0; i < s.BitLength; i++ {
		if s.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// An ObjectIdentifier represents an ASN.1 OBJECT IDENTIFIER. The semantics of
// an object identifier are specified in [Rec. ITU-T X.660]. A valid
// ObjectIdentifier has at least two components, the first component is at
// most 2 and if the first component is 0 or 1 the second component is at most
// 39.
//
// See also section 32 of Rec. ITU-T X.680.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
type ObjectIdentifier []uint

// IsValid reports whether oid satisfies the component constraints of an
// OBJECT IDENTIFIER.
func (oid ObjectIdentifier) IsValid() bool {
	return len(oid) >= 2 && oid[0] <= 2 && (oid[0] == 2 || oid[1] <= 39)
}

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return slices.Equal(oid, other)
}

// String returns the dot-separated notation of oid.
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 19)
	for i, v := range oid {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, uint64(v), 10))
	}

	return s.String()
}

//endregion

//region Character Strings

// StringEncoding identifies one of the restricted character string types of
// ASN.1. Each encoding corresponds to a distinct universal tag number and a
// distinct set of legal content bytes.
//
// See also section 41 of Rec. ITU-T X.680.
//
//go:generate stringer -type=StringEncoding
type StringEncoding uint8

const (
	// UTF8String restricts content to valid UTF-8.
	UTF8String StringEncoding = iota
	// NumericString restricts content to the digits 0-9 and space.
	NumericString
	// PrintableString restricts content to a fixed subset of ASCII, see
	// [isPrintable].
	PrintableString
	// T61String (TeletexString) content is not restricted. The T.61 character
	// set escapes into arbitrary byte sequences; validating it is outside the
	// scope of this module.
	T61String
	// VideotexString content is not restricted, for the same reason as
	// [T61String].
	VideotexString
	// IA5String restricts content to ASCII (bytes 0-127).
	IA5String
	// GraphicString content is not restricted.
	GraphicString
	// VisibleString restricts content to visible ASCII, excluding control
	// characters.
	VisibleString
	// GeneralString content is not restricted.
	GeneralString
	// UniversalString restricts content to big-endian UTF-32.
	UniversalString
	// BMPString restricts content to big-endian UCS-2, i.e. UTF-16 without
	// surrogate pairs.
	BMPString
)

// Tag returns the universal tag number corresponding to e. Tag panics if e is
// not one of the predefined constants.
func (e StringEncoding) Tag() Tag {
	switch e {
	case UTF8String:
		return TagUTF8String
	case NumericString:
		return TagNumericString
	case PrintableString:
		return TagPrintableString
	case T61String:
		return TagT61String
	case VideotexString:
		return TagVideotexString
	case IA5String:
		return TagIA5String
	case GraphicString:
		return TagGraphicString
	case VisibleString:
		return TagVisibleString
	case GeneralString:
		return TagGeneralString
	case UniversalString:
		return TagUniversalString
	case BMPString:
		return TagBMPString
	}
	panic("invalid StringEncoding " + e.String())
}

// Valid reports whether b is a legal byte sequence for the character set
// identified by e.
func (e StringEncoding) Valid(b []byte) bool {
	switch e {
	case UTF8String:
		return utf8.Valid(b)
	case NumericString:
		for _, c := range b {
			if !('0' <= c && c <= '9' || c == ' ') {
				return false
			}
		}
	case PrintableString:
		for _, c := range b {
			if !isPrintable(c) {
				return false
			}
		}
	case IA5String:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return false
			}
		}
	case VisibleString:
		for _, c := range b {
			if c < ' ' || c >= 0x7F {
				return false
			}
		}
	case UniversalString:
		if len(b)%4 != 0 {
			return false
		}
		for i := 0; i < len(b); i += 4 {
			r := rune(b[i])<<24 | rune(b[i+1])<<16 | rune(b[i+2])<<8 | rune(b[i+3])
			if !utf8.ValidRune(r) {
				return false
			}
		}
	case BMPString:
		if len(b)%2 != 0 {
			return false
		}
		for i := 0; i < len(b); i += 2 {
			if utf16.IsSurrogate(rune(b[i])<<8 | rune(b[i+1])) {
				return false
			}
		}
	}
	// T61String, VideotexString, GraphicString and GeneralString escape into
	// character sets this module does not interpret. Any content is accepted.
	return true
}

// isPrintable reports whether the given b is in the ASN.1 PrintableString
// set:
//
//	A-Z a-z 0-9	// letters and digits
//	 	// space
//	'()	// apostrophe, parenthesis
//	+-/	// plus, hyphen, solidus
//	.,:	// full stop, comma, colon
//	=	// equals sign
//	?	// question mark
func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?'
}

//endregion

//region [UNIVERSAL 23] UTCTime and [UNIVERSAL 24] GeneralizedTime

// TimeType selects one of the two time serializations of ASN.1. UTCTime uses
// two-digit years and can only represent dates between 1950 and 2049,
// GeneralizedTime uses four-digit years and supports fractional seconds.
//
// See also sections 46 and 47 of Rec. ITU-T X.680.
//
//go:generate stringer -type=TimeType
type TimeType uint8

const (
	UTCTime TimeType = iota
	GeneralizedTime
)

// Tag returns the universal tag number corresponding to t. Tag panics if t is
// not one of the predefined constants.
func (t TimeType) Tag() Tag {
	switch t {
	case UTCTime:
		return TagUTCTime
	case GeneralizedTime:
		return TagGeneralizedTime
	}
	panic("invalid TimeType " + t.String())
}

//endregion
