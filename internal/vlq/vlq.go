// Package vlq implements [Variable-length quantity] encoding as used in MIDI
// or BER. A VLQ is essentially a base-128 representation of an unsigned
// integer with the addition of the eighth bit to mark continuation of bytes.
// VLQ is identical to [LEB128] except in endianness.
//
// The high-tag-number form of a BER identifier and the subidentifiers of an
// encoded OBJECT IDENTIFIER both use this encoding.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotMinimal indicates a VLQ with a leading zero octet. X.690 requires
	// both tag numbers and OID subidentifiers to be minimally encoded.
	ErrNotMinimal = errors.New("vlq is not minimally encoded")
	// ErrOverflow indicates a VLQ whose value does not fit the target type.
	ErrOverflow = errors.New("vlq too large for target type")
)

// Decode parses an unsigned VLQ from the beginning of data. It returns the
// decoded value and the number of bytes consumed. The maximum allowed value
// is limited by the size of T.
//
// If data is empty, the returned error is [io.EOF]. If data ends in the
// middle of a VLQ (the last byte has its continuation bit set), the returned
// error is [io.ErrUnexpectedEOF]. A VLQ with a leading zero octet (0x80) is
// rejected with [ErrNotMinimal].
func Decode[T constraints.Unsigned](data []byte) (ret T, n int, err error) {
	if len(data) == 0 {
		return 0, 0, io.EOF
	}
	b := data[n]
	n++
	if b == 0x80 {
		return 0, n, ErrNotMinimal
	}

	ret = T(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)

	for b&0x80 != 0 {
		if n == len(data) {
			return 0, n, io.ErrUnexpectedEOF
		}
		b = data[n]
		n++
		ret <<= 7
		ret |= T(b & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, n, ErrOverflow
		}
	}
	return ret, n, nil
}

// Len returns the number of bytes needed to encode n as a VLQ.
func Len[T constraints.Unsigned](n T) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the VLQ encoding of i to dst and returns the extended
// slice.
func Append[T constraints.Unsigned](dst []byte, i T) []byte {
	for j := Len(i) - 1; j >= 0; j-- {
		b := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
