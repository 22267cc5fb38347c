// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"

	"wessel.dev/asn1"
)

// These sentinel errors classify the failures of the DER layer, in addition
// to the sentinels of [wessel.dev/asn1/tlv] which pass through unchanged.
var (
	// ErrNonCanonical indicates an input that is valid BER but not the one
	// encoding DER permits: an indefinite or non-minimal length, a non-minimal
	// integer, nonzero padding bits or a BOOLEAN true that is not 0xFF.
	ErrNonCanonical = errors.New("non-canonical encoding")

	// ErrInvalidCharacterSet indicates content bytes outside the character set
	// of the string type that carries them.
	ErrInvalidCharacterSet = errors.New("invalid character set")

	// ErrInvalidTime indicates a time that does not conform to the UTCTime or
	// GeneralizedTime format, or one that cannot be represented in it.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrUnsupportedTag indicates a tag outside the universal types this
	// module maps onto [asn1.Value].
	ErrUnsupportedTag = errors.New("unsupported tag")
)

// SyntaxError represents a decode error within the content of a single data
// value. The Tag identifies the offending value.
type SyntaxError struct {
	Err error
	Tag asn1.Tag
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	return "der: cannot decode " + e.Tag.String() + ": " + e.Err.Error()
}
