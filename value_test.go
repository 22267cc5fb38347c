// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"math/big"
	"testing"
	"time"
)

func TestValue_Equal(t *testing.T) {
	tests := map[string]struct {
		a, b Value
		want bool
	}{
		"Booleans":      {Bool(true), Bool(true), true},
		"BooleanValues": {Bool(true), Bool(false), false},
		"Kinds":         {Bool(false), Null(), false},
		"Integers":      {Int64(42), Int(big.NewInt(42)), true},
		"BigIntegers": {
			Int(new(big.Int).Lsh(big.NewInt(1), 100)),
			Int(new(big.Int).Lsh(big.NewInt(1), 100)),
			true,
		},
		"Octets":       {Octets([]byte{1, 2}), Octets([]byte{1, 2}), true},
		"OIDs":         {OID(ObjectIdentifier{1, 2, 3}), OID(ObjectIdentifier{1, 2, 3}), true},
		"OIDValues":    {OID(ObjectIdentifier{1, 2, 3}), OID(ObjectIdentifier{1, 2, 4}), false},
		"Strings":      {String(IA5String, "hi"), String(IA5String, "hi"), true},
		"StringKinds":  {String(IA5String, "hi"), String(UTF8String, "hi"), false},
		"Markers":      {Start(Sequence), Start(Sequence), true},
		"MarkerKinds":  {Start(Sequence), End(Sequence), false},
		"MarkerValues": {Start(Sequence), Start(Set), false},
		"Times": {
			Time(UTCTime, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			Time(UTCTime, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			true,
		},
		// the same instant written with a different offset serializes
		// differently
		"TimeOffsets": {
			Time(UTCTime, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			Time(UTCTime, time.Date(2020, 1, 1, 1, 0, 0, 0, time.FixedZone("", 3600))),
			false,
		},
		"TimeTypes": {
			Time(UTCTime, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			Time(GeneralizedTime, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Value.Equal(%v, %v) = %t, want %t", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Value.Equal(%v, %v) = %t, want %t", tc.b, tc.a, got, tc.want)
			}
		})
	}
}
