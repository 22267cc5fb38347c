// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 implements the data model for ASN.1 encoded values as defined
// in [Rec. ITU-T X.680]. This package only defines Go types; encoding and
// decoding using the Basic and Distinguished Encoding Rules is implemented in
// the subpackages [wessel.dev/asn1/tlv] and [wessel.dev/asn1/der].
//
// # Values
//
// Decoded ASN.1 data is represented as a flat list of [Value] elements. Each
// Value is either a primitive (BOOLEAN, INTEGER, BIT STRING, OCTET STRING,
// NULL, OBJECT IDENTIFIER, a character string or a time) or one of the
// [KindStart]/[KindEnd] markers bracketing the elements of a SEQUENCE or SET.
// A well-formed value list nests its markers like balanced parentheses:
//
//	asn1.Start(asn1.Sequence)
//	asn1.Bool(true)
//	asn1.End(asn1.Sequence)
//
// Values are immutable by convention: once constructed they are never
// modified by this module, so they can be shared freely between goroutines.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1

import "strconv"

// Tag constitutes an ASN.1 tag, consisting of its class and number. The class
// occupies the top two bits of the value, the tag number the remaining bits.
// Use [Tag.Class] and [Tag.Number] to take a Tag apart and the bitwise-or of
// a class constant and a number to construct one:
//
//	asn1.ClassApplication | 17
//
// For details, see Section 8 of Rec. ITU-T X.680.
type Tag uint

// Predefined class constants. The class acts as a namespace for the tag
// number. These are all the possible values that can be encoded in the two
// class bits of an identifier octet.
const (
	ClassUniversal       Tag = 0b00 << 14
	ClassApplication     Tag = 0b01 << 14
	ClassContextSpecific Tag = 0b10 << 14
	ClassPrivate         Tag = 0b11 << 14
)

// MaxTag is the largest tag number that can be represented by the [Tag] type.
// Tag numbers are unbounded in ASN.1 but adversarial inputs must not be able
// to make the decoder allocate unbounded amounts of memory, so the supported
// range is capped well above the numbers seen in practice.
const MaxTag = 1<<14 - 1

// Class returns the class bits of t with the number bits cleared.
func (t Tag) Class() Tag {
	return t & (0b11 << 14)
}

// Number returns the tag number of t within its class.
func (t Tag) Number() uint {
	return uint(t &^ (0b11 << 14))
}

// String returns a string representation of t in a format similar to the one
// used in ASN.1 notation. The tag number is enclosed by square brackets and
// prefixed with the class used. To avoid ambiguity the UNIVERSAL word is used
// for universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	n := strconv.FormatUint(uint64(t.Number()), 10)
	switch t.Class() {
	case ClassUniversal:
		return "[UNIVERSAL " + n + "]"
	case ClassApplication:
		return "[APPLICATION " + n + "]"
	case ClassPrivate:
		return "[PRIVATE " + n + "]"
	default:
		return "[" + n + "]"
	}
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to
// be used by encoding rules. The end-of-contents marker terminating an
// indefinite-length value is encoded using this tag. This assignment is
// defined in Rec. ITU-T X.680, Section 8, Table 1.
const TagReserved Tag = 0

// These are the ASN.1 tag numbers of the [ClassUniversal] namespace that this
// module can encode and decode. The assignments are defined in Rec. ITU-T
// X.680, Section 8, Table 1.
const (
	TagBoolean         Tag = 1
	TagInteger         Tag = 2
	TagBitString       Tag = 3
	TagOctetString     Tag = 4
	TagNull            Tag = 5
	TagOID             Tag = 6
	TagUTF8String      Tag = 12
	TagSequence        Tag = 16
	TagSet             Tag = 17
	TagNumericString   Tag = 18
	TagPrintableString Tag = 19
	TagT61String       Tag = 20
	TagVideotexString  Tag = 21
	TagIA5String       Tag = 22
	TagUTCTime         Tag = 23
	TagGeneralizedTime Tag = 24
	TagGraphicString   Tag = 25
	TagVisibleString   Tag = 26
	TagGeneralString   Tag = 27
	TagUniversalString Tag = 28
	TagBMPString       Tag = 30
)
