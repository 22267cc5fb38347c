// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"wessel.dev/asn1"
)

// codec encodes and decodes the content octets of a single universal type.
// The header is handled by the caller.
type codec struct {
	encode func(asn1.Value) ([]byte, error)
	decode func([]byte) (asn1.Value, error)
}

// codecs maps every supported primitive universal tag to its codec.
var codecs = map[asn1.Tag]codec{
	asn1.TagBoolean:         {encodeBool, decodeBool},
	asn1.TagInteger:         {encodeInt, decodeInt},
	asn1.TagBitString:       {encodeBitString, decodeBitString},
	asn1.TagOctetString:     {encodeOctetString, decodeOctetString},
	asn1.TagNull:            {encodeNull, decodeNull},
	asn1.TagOID:             {encodeObjectIdentifier, decodeObjectIdentifier},
	asn1.TagUTF8String:      stringCodec(asn1.UTF8String),
	asn1.TagNumericString:   stringCodec(asn1.NumericString),
	asn1.TagPrintableString: stringCodec(asn1.PrintableString),
	asn1.TagT61String:       stringCodec(asn1.T61String),
	asn1.TagVideotexString:  stringCodec(asn1.VideotexString),
	asn1.TagIA5String:       stringCodec(asn1.IA5String),
	asn1.TagGraphicString:   stringCodec(asn1.GraphicString),
	asn1.TagVisibleString:   stringCodec(asn1.VisibleString),
	asn1.TagGeneralString:   stringCodec(asn1.GeneralString),
	asn1.TagUniversalString: stringCodec(asn1.UniversalString),
	asn1.TagBMPString:       stringCodec(asn1.BMPString),
	asn1.TagUTCTime:         timeCodec(asn1.UTCTime),
	asn1.TagGeneralizedTime: timeCodec(asn1.GeneralizedTime),
}

// encodeValue returns the tag and content octets of the primitive value v.
func encodeValue(v asn1.Value) (asn1.Tag, []byte, error) {
	var tag asn1.Tag
	switch v.Kind {
	case asn1.KindBoolean:
		tag = asn1.TagBoolean
	case asn1.KindInteger:
		tag = asn1.TagInteger
	case asn1.KindBitString:
		tag = asn1.TagBitString
	case asn1.KindOctetString:
		tag = asn1.TagOctetString
	case asn1.KindNull:
		tag = asn1.TagNull
	case asn1.KindOID:
		tag = asn1.TagOID
	case asn1.KindString:
		tag = v.Encoding.Tag()
	case asn1.KindTime:
		tag = v.TimeType.Tag()
	default:
		return 0, nil, fmt.Errorf("cannot encode %v", v.Kind)
	}
	content, err := codecs[tag].encode(v)
	return tag, content, err
}

//region [UNIVERSAL 1] BOOLEAN

func encodeBool(v asn1.Value) ([]byte, error) {
	if v.Bool {
		return []byte{0xff}, nil
	}
	return []byte{0x00}, nil
}

func decodeBool(b []byte) (asn1.Value, error) {
	if len(b) != 1 {
		return asn1.Value{}, fmt.Errorf("BOOLEAN with %d content octets", len(b))
	}
	switch b[0] {
	case 0x00:
		return asn1.Bool(false), nil
	case 0xff:
		return asn1.Bool(true), nil
	}
	// any nonzero octet means true in BER, only 0xFF does in DER
	return asn1.Value{}, fmt.Errorf("%w: BOOLEAN content octet %#x", ErrNonCanonical, b[0])
}

//endregion

//region [UNIVERSAL 2] INTEGER

var bigOne = big.NewInt(1)

func encodeInt(v asn1.Value) ([]byte, error) {
	i := v.Int
	switch {
	case i == nil:
		return nil, errors.New("nil INTEGER")

	case i.Sign() == 0:
		return []byte{0x00}, nil

	case i.Sign() > 0:
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			// leading zero octet keeps the number positive
			b = append([]byte{0x00}, b...)
		}
		return b, nil

	default:
		// Two's complement: invert the absolute value minus one and pad with
		// 0xFF if the sign bit is not already set.
		abs := new(big.Int).Neg(i)
		abs.Sub(abs, bigOne)
		b := abs.Bytes()
		for j := range b {
			b[j] ^= 0xff
		}
		if len(b) == 0 || b[0]&0x80 == 0 {
			b = append([]byte{0xff}, b...)
		}
		return b, nil
	}
}

func decodeInt(b []byte) (asn1.Value, error) {
	if len(b) == 0 {
		return asn1.Value{}, errors.New("INTEGER without content octets")
	}
	if len(b) > 1 && (b[0] == 0x00 && b[1]&0x80 == 0 || b[0] == 0xff && b[1]&0x80 != 0) {
		return asn1.Value{}, fmt.Errorf("%w: INTEGER not minimally encoded", ErrNonCanonical)
	}
	i := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		// undo the two's complement
		shift := new(big.Int).Lsh(bigOne, uint(len(b))*8)
		i.Sub(i, shift)
	}
	return asn1.Int(i), nil
}

//endregion

//region [UNIVERSAL 3] BIT STRING

func encodeBitString(v asn1.Value) ([]byte, error) {
	bs := v.Bits
	if !bs.IsValid() {
		return nil, fmt.Errorf("invalid BIT STRING: %d bits in %d bytes", bs.BitLength, len(bs.Bytes))
	}
	unused := (8 - bs.BitLength%8) % 8
	out := make([]byte, 1+(bs.BitLength+7)/8)
	out[0] = byte(unused)
	copy(out[1:], bs.Bytes)
	if unused > 0 {
		// padding bits are always encoded as zero
		out[len(out)-1] &= 0xff << unused
	}
	return out, nil
}

func decodeBitString(b []byte) (asn1.Value, error) {
	if len(b) == 0 {
		return asn1.Value{}, errors.New("BIT STRING without initial octet")
	}
	unused := int(b[0])
	if unused > 7 {
		return asn1.Value{}, fmt.Errorf("BIT STRING with %d unused bits", unused)
	}
	content := b[1:]
	if len(content) == 0 && unused != 0 {
		return asn1.Value{}, fmt.Errorf("empty BIT STRING with %d unused bits", unused)
	}
	if unused > 0 && content[len(content)-1]&(1<<unused-1) != 0 {
		return asn1.Value{}, fmt.Errorf("%w: nonzero padding bits", ErrNonCanonical)
	}
	return asn1.Bits(asn1.BitString{
		Bytes:     bytes.Clone(content),
		BitLength: len(content)*8 - unused,
	}), nil
}

//endregion

//region [UNIVERSAL 4] OCTET STRING

func encodeOctetString(v asn1.Value) ([]byte, error) {
	return v.Bytes, nil
}

func decodeOctetString(b []byte) (asn1.Value, error) {
	return asn1.Octets(bytes.Clone(b)), nil
}

//endregion

//region [UNIVERSAL 5] NULL

func encodeNull(asn1.Value) ([]byte, error) {
	return nil, nil
}

func decodeNull(b []byte) (asn1.Value, error) {
	if len(b) != 0 {
		return asn1.Value{}, fmt.Errorf("NULL with %d content octets", len(b))
	}
	return asn1.Null(), nil
}

//endregion

//region Character Strings

func stringCodec(enc asn1.StringEncoding) codec {
	return codec{
		encode: func(v asn1.Value) ([]byte, error) {
			if !enc.Valid(v.Bytes) {
				return nil, fmt.Errorf("%w for %v", ErrInvalidCharacterSet, enc)
			}
			return v.Bytes, nil
		},
		decode: func(b []byte) (asn1.Value, error) {
			if !enc.Valid(b) {
				return asn1.Value{}, fmt.Errorf("%w for %v", ErrInvalidCharacterSet, enc)
			}
			return asn1.String(enc, string(b)), nil
		},
	}
}

//endregion
