// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"fmt"
	"math/big"
	"time"
)

// Kind identifies the variant stored in a [Value].
//
//go:generate stringer -type=Kind -trimprefix=Kind
type Kind uint8

const (
	KindBoolean Kind = iota
	KindInteger
	KindBitString
	KindOctetString
	KindNull
	KindOID
	KindString
	KindTime
	KindStart
	KindEnd
)

// Container identifies the kind of a constructed value. The [KindStart] and
// [KindEnd] markers of a matching pair always carry the same Container.
//
//go:generate stringer -type=Container
type Container uint8

const (
	Sequence Container = iota
	Set
)

// Tag returns the universal tag number corresponding to c. Tag panics if c is
// not one of the predefined constants.
func (c Container) Tag() Tag {
	switch c {
	case Sequence:
		return TagSequence
	case Set:
		return TagSet
	}
	panic("invalid Container " + c.String())
}

// Value is a single element of the flat representation of an ASN.1 value
// tree. Value is a tagged union: Kind selects the variant and determines
// which of the remaining fields are meaningful. Use the constructor functions
// ([Bool], [Int], [Bits], [Octets], [Null], [OID], [String], [Time], [Start],
// [End]) rather than struct literals; fields not belonging to the variant
// must remain zero.
type Value struct {
	Kind Kind

	Bool      bool             // KindBoolean
	Int       *big.Int         // KindInteger
	Bits      BitString        // KindBitString
	Bytes     []byte           // KindOctetString and KindString content
	OID       ObjectIdentifier // KindOID
	Encoding  StringEncoding   // KindString
	Time      time.Time        // KindTime
	TimeType  TimeType         // KindTime
	Container Container        // KindStart and KindEnd
}

// Bool returns a BOOLEAN value.
func Bool(v bool) Value {
	return Value{Kind: KindBoolean, Bool: v}
}

// Int returns an INTEGER value. The integer is arbitrary-precision; i is
// stored as-is and must not be modified afterwards.
func Int(i *big.Int) Value {
	return Value{Kind: KindInteger, Int: i}
}

// Int64 returns an INTEGER value holding i.
func Int64(i int64) Value {
	return Value{Kind: KindInteger, Int: big.NewInt(i)}
}

// Bits returns a BIT STRING value.
func Bits(bs BitString) Value {
	return Value{Kind: KindBitString, Bits: bs}
}

// Octets returns an OCTET STRING value.
func Octets(b []byte) Value {
	return Value{Kind: KindOctetString, Bytes: b}
}

// Null returns the NULL value.
func Null() Value {
	return Value{Kind: KindNull}
}

// OID returns an OBJECT IDENTIFIER value.
func OID(oid ObjectIdentifier) Value {
	return Value{Kind: KindOID, OID: oid}
}

// String returns a character string value using the character set identified
// by enc. The bytes of s are not validated here; encoding validates them
// against enc.
func String(enc StringEncoding, s string) Value {
	return Value{Kind: KindString, Encoding: enc, Bytes: []byte(s)}
}

// Time returns a time value serialized as t.
func Time(t TimeType, v time.Time) Value {
	return Value{Kind: KindTime, TimeType: t, Time: v}
}

// Start returns the marker opening a constructed value of kind c.
func Start(c Container) Value {
	return Value{Kind: KindStart, Container: c}
}

// End returns the marker closing a constructed value of kind c.
func End(c Container) Value {
	return Value{Kind: KindEnd, Container: c}
}

// Equal reports whether v and other represent the same ASN.1 value. Integers
// are compared by value, times are compared as instants together with their
// zone offsets (two times with equal instants but different offsets serialize
// differently and are not equal).
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBoolean:
		return v.Bool == other.Bool
	case KindInteger:
		return v.Int.Cmp(other.Int) == 0
	case KindBitString:
		return v.Bits.Equal(other.Bits)
	case KindOctetString:
		return bytes.Equal(v.Bytes, other.Bytes)
	case KindNull:
		return true
	case KindOID:
		return v.OID.Equal(other.OID)
	case KindString:
		return v.Encoding == other.Encoding && bytes.Equal(v.Bytes, other.Bytes)
	case KindTime:
		_, off1 := v.Time.Zone()
		_, off2 := other.Time.Zone()
		return v.TimeType == other.TimeType && v.Time.Equal(other.Time) && off1 == off2
	case KindStart, KindEnd:
		return v.Container == other.Container
	}
	return false
}

// String returns a readable representation of v for diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", v.Bool)
	case KindInteger:
		return "Integer(" + v.Int.String() + ")"
	case KindBitString:
		return fmt.Sprintf("BitString(%d bits)", v.Bits.BitLength)
	case KindOctetString:
		return fmt.Sprintf("OctetString{% X}", v.Bytes)
	case KindNull:
		return "Null"
	case KindOID:
		return "OID(" + v.OID.String() + ")"
	case KindString:
		return v.Encoding.String() + "(" + string(v.Bytes) + ")"
	case KindTime:
		return v.TimeType.String() + "(" + v.Time.Format(time.RFC3339Nano) + ")"
	case KindStart:
		return v.Container.String() + "{"
	case KindEnd:
		return "}" + v.Container.String()
	}
	return "Value(" + v.Kind.String() + ")"
}
