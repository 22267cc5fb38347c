package tlv

import (
	"errors"
	"fmt"
	"strconv"
)

// These sentinel errors classify the decode and encode failures of this
// package. Errors returned from this package (and from the DER layer built
// on top of it) can be tested against them with [errors.Is].
var (
	// ErrTruncated indicates that the input ended before a declared field was
	// complete. A truncated input never yields a partial value.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidLength indicates a length encoding that is reserved, malformed
	// or too large to be represented.
	ErrInvalidLength = errors.New("invalid length form")

	// ErrLengthMismatch indicates that the content octets of a primitive value
	// disagree with the length declared by its header.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrMalformedStructure indicates unbalanced or mistyped construction
	// nesting.
	ErrMalformedStructure = errors.New("malformed structure")
)

var (
	errUnexpectedEOC  = fmt.Errorf("%w: unexpected end of contents", ErrMalformedStructure)
	errReservedTag    = fmt.Errorf("%w: reserved tag number 0", ErrMalformedStructure)
	errTagTooLarge    = fmt.Errorf("%w: tag number too large", ErrMalformedStructure)
	errNonMinimalTag  = fmt.Errorf("%w: tag number not minimally encoded", ErrMalformedStructure)
	errIndefPrimitive = fmt.Errorf("%w: indefinite length on primitive data value", ErrInvalidLength)
	errExceedsParent  = fmt.Errorf("%w: data value exceeds parent", ErrMalformedStructure)
	errNestingDepth   = fmt.Errorf("%w: construction nesting exceeds depth limit", ErrMalformedStructure)
)

// SyntaxError represents an error in the TLV encoding. The error value
// contains the location of the error within the input as well as the [Header]
// of the enclosing data value.
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. The location is usually the
	// start of the TLV header containing the error.
	ByteOffset int

	// Header is the TLV header of the constructed TLV whose value contained
	// the malformed data. It is the zero Header at the top level.
	Header Header
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	b := []byte("tlv: syntax error")
	if e.Header != (Header{}) {
		b = append(b, " within "...)
		b = append(b, e.Header.String()...)
	}
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " at offset "...), int64(e.ByteOffset), 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
