// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"fmt"
	"io"

	"wessel.dev/asn1"
	"wessel.dev/asn1/internal/vlq"
	"wessel.dev/asn1/tlv"
)

// AppendOID appends the content octets of the OBJECT IDENTIFIER oid to dst
// and returns the extended slice. The first two components are packed into a
// single subidentifier, each subidentifier is encoded in base 128.
//
// See Rec. ITU-T X.690, Section 8.19.
func AppendOID(dst []byte, oid asn1.ObjectIdentifier) ([]byte, error) {
	if !oid.IsValid() {
		return dst, fmt.Errorf("invalid OBJECT IDENTIFIER %v", oid)
	}
	dst = vlq.Append(dst, 40*oid[0]+oid[1])
	for _, v := range oid[2:] {
		dst = vlq.Append(dst, v)
	}
	return dst, nil
}

// DecodeOID parses the content octets of an OBJECT IDENTIFIER. The entire
// input must be consumed; an incomplete trailing subidentifier yields
// [tlv.ErrTruncated] and a subidentifier with redundant leading octets is
// rejected, as required by X.690, Section 8.19.2.
func DecodeOID(data []byte) (asn1.ObjectIdentifier, error) {
	if len(data) == 0 {
		return nil, errors.New("OBJECT IDENTIFIER without content octets")
	}

	v, n, err := vlq.Decode[uint](data)
	if err != nil {
		return nil, oidErr(err)
	}
	oid := make(asn1.ObjectIdentifier, 2, 2+len(data)-n)
	if v < 80 {
		oid[0], oid[1] = v/40, v%40
	} else {
		// Values of 80 and above always belong to the joint-iso-itu-t arc,
		// whose second component is unbounded.
		oid[0], oid[1] = 2, v-80
	}

	for n < len(data) {
		v, vn, err := vlq.Decode[uint](data[n:])
		if err != nil {
			return nil, oidErr(err)
		}
		n += vn
		oid = append(oid, v)
	}
	return oid, nil
}

// oidErr translates the error vocabulary of the vlq package.
func oidErr(err error) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: incomplete subidentifier", tlv.ErrTruncated)
	case errors.Is(err, vlq.ErrNotMinimal):
		return errors.New("subidentifier not minimally encoded")
	case errors.Is(err, vlq.ErrOverflow):
		return errors.New("subidentifier too large")
	}
	return err
}

func encodeObjectIdentifier(v asn1.Value) ([]byte, error) {
	return AppendOID(nil, v.OID)
}

func decodeObjectIdentifier(b []byte) (asn1.Value, error) {
	oid, err := DecodeOID(b)
	if err != nil {
		return asn1.Value{}, err
	}
	return asn1.OID(oid), nil
}
