// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the Distinguished Encoding Rules (DER) as specified
// in [Rec. ITU-T X.690], Section 10. DER is the restriction of BER to a
// single canonical encoding per value: definite, minimal lengths and exactly
// one content representation for every type.
//
// The package maps between the flat [asn1.Value] representation and bytes.
// [Marshal] always produces canonical DER; [Unmarshal] rejects any input that
// is not canonical DER with an error wrapping [ErrNonCanonical], even when
// the input is well-formed BER.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

import (
	"fmt"
	"io"

	"wessel.dev/asn1"
	"wessel.dev/asn1/tlv"
)

// Marshal encodes values into their DER representation. The value list must
// be well-formed: construction markers balanced and correctly paired, every
// value carrying the fields of its variant.
//
// Marshal is deterministic. Encoding the same values always yields the same
// bytes, and decoding them with [Unmarshal] yields the same values.
func Marshal(values []asn1.Value) ([]byte, error) {
	type frame struct {
		container asn1.Container
		buf       []byte
	}

	var top []byte
	var stack []frame
	cur := &top
	for _, v := range values {
		switch v.Kind {
		case asn1.KindStart:
			stack = append(stack, frame{container: v.Container})
			cur = &stack[len(stack)-1].buf

		case asn1.KindEnd:
			if len(stack) == 0 {
				return nil, fmt.Errorf("der: %w: unbalanced %v", tlv.ErrMalformedStructure, v)
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.container != v.Container {
				return nil, fmt.Errorf("der: %w: %v closed by %v", tlv.ErrMalformedStructure, f.container, v)
			}
			if len(stack) > 0 {
				cur = &stack[len(stack)-1].buf
			} else {
				cur = &top
			}
			h := tlv.Header{Tag: f.container.Tag(), Constructed: true, Length: tlv.LengthOf(len(f.buf))}
			var err error
			if *cur, err = tlv.AppendHeader(*cur, h); err != nil {
				return nil, err
			}
			*cur = append(*cur, f.buf...)

		default:
			tag, content, err := encodeValue(v)
			if err != nil {
				return nil, fmt.Errorf("der: encoding %v value: %w", v.Kind, err)
			}
			h := tlv.Header{Tag: tag, Length: tlv.LengthOf(len(content))}
			if *cur, err = tlv.AppendHeader(*cur, h); err != nil {
				return nil, err
			}
			*cur = append(*cur, content...)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("der: %w: unterminated %v", tlv.ErrMalformedStructure, stack[len(stack)-1].container)
	}
	return top, nil
}

// Unmarshal decodes the DER representation data into a value list. The input
// must consist of zero or more complete, canonically encoded data values of
// the universal types this module supports; anything else fails with an
// error and no values are returned, even if a prefix of the input decoded
// successfully.
//
// The returned values do not alias data.
func Unmarshal(data []byte) ([]asn1.Value, error) {
	d := tlv.NewDecoder(data)
	var values []asn1.Value
	var stack []asn1.Container
	var pending tlv.Header // primitive header awaiting its content event
	for {
		ev, err := d.Next()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case tlv.EventHeader:
			h := ev.Header
			if h.Length.Form == tlv.LengthIndefinite {
				return nil, decodeErr(h.Tag, fmt.Errorf("%w: indefinite length", ErrNonCanonical))
			}
			if !h.Length.Canonical() {
				return nil, decodeErr(h.Tag, fmt.Errorf("%w: non-minimal length octets", ErrNonCanonical))
			}
			if h.Constructed {
				switch h.Tag {
				case asn1.TagSequence:
					stack = append(stack, asn1.Sequence)
				case asn1.TagSet:
					stack = append(stack, asn1.Set)
				default:
					if _, ok := codecs[h.Tag]; ok {
						// BER permits constructed encodings of string types,
						// DER does not.
						return nil, decodeErr(h.Tag, fmt.Errorf("%w: constructed form", ErrNonCanonical))
					}
					return nil, decodeErr(h.Tag, ErrUnsupportedTag)
				}
			} else {
				if _, ok := codecs[h.Tag]; !ok {
					return nil, decodeErr(h.Tag, ErrUnsupportedTag)
				}
				pending = h
			}

		case tlv.EventPrimitive:
			v, err := codecs[pending.Tag].decode(ev.Bytes)
			if err != nil {
				return nil, decodeErr(pending.Tag, err)
			}
			values = append(values, v)

		case tlv.EventBegin:
			values = append(values, asn1.Start(stack[len(stack)-1]))

		case tlv.EventEnd:
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			values = append(values, asn1.End(c))
		}
	}
}

func decodeErr(tag asn1.Tag, err error) error {
	return &SyntaxError{Err: err, Tag: tag}
}
