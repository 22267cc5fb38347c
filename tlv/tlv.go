// Package tlv implements the tag-length-value (TLV) format used by the Basic
// Encoding Rules (BER) and related encoding rules as specified in
// [Rec. ITU-T X.690]. See also “[A Layman's Guide to a Subset of ASN.1, BER,
// and DER]”.
//
// This package deals with the syntactic layer of BER: headers, the three
// length forms and the flat stream of [Event] values a BER encoding
// decomposes into. The semantic layer, mapping events onto typed values, is
// implemented by [wessel.dev/asn1/der].
//
// # Headers and Events
//
// In BER each value is encoded using a tag-length-value format. The tag and
// length (we call them a header) are represented by the [Header] type. A
// primitive value contributes two events to the stream: its [Header] and an
// [EventPrimitive] event carrying the raw content octets. A constructed value
// contributes its Header, a [Begin] marker, the events of the nested values
// and an [End] marker. The [Decoder] type produces this sequence lazily from
// a byte slice; [EncodeEvents] is its inverse.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"wessel.dev/asn1"
)

// Header represents a TLV header: the identifier octets (class, tag number
// and the primitive/constructed flag) together with the length octets. It is
// invalid for Length to be indefinite when Constructed is false.
type Header struct {
	Tag         asn1.Tag
	Constructed bool
	Length      Length
}

// String returns a string representation of h.
func (h Header) String() string {
	if h == (Header{}) {
		return "EndOfContents"
	}
	s := h.Tag.String()
	if h.Constructed {
		s += "/c"
	} else {
		s += "/p"
	}
	return s + ":" + h.Length.String()
}
