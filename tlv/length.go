package tlv

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// LengthForm identifies one of the three length encodings defined by X.690,
// Section 8.1.3.
//
//go:generate stringer -type=LengthForm -trimprefix=Length
type LengthForm uint8

const (
	// LengthShort encodes values of at most 127 in a single octet.
	LengthShort LengthForm = iota
	// LengthLong encodes the octet count of the length in the leading octet,
	// followed by that many big-endian value octets.
	LengthLong
	// LengthIndefinite marks a constructed value terminated by an
	// end-of-contents marker. It is only legal in BER, never in DER.
	LengthIndefinite
)

// Length represents the length octets of a TLV header. It is a tagged union
// over the three forms of X.690:
//
//   - the short form holds a Value between 0 and 127,
//   - the long form additionally records Size, the number of length octets
//     (1 to 126) used on the wire, so that a non-minimal BER encoding
//     round-trips byte-for-byte,
//   - the indefinite form carries no length at all.
//
// Use [LengthOf] to obtain the minimal encoding of a known content length.
type Length struct {
	Form  LengthForm
	Size  int // number of length octets, long form only
	Value int // decoded content length, short and long forms
}

// Indefinite is the Length marking a constructed value that is terminated by
// an end-of-contents marker instead of an up-front length.
var Indefinite = Length{Form: LengthIndefinite}

// LengthOf returns the canonical (minimal) Length encoding n. It panics if n
// is negative.
func LengthOf(n int) Length {
	if n < 0 {
		panic("tlv: negative length")
	}
	if n <= 0x7f {
		return Length{Form: LengthShort, Value: n}
	}
	return Length{Form: LengthLong, Size: sizeOf(n), Value: n}
}

// sizeOf returns the minimal number of big-endian octets needed to hold n.
func sizeOf(n int) int {
	size := 1
	for ; n > 0xff; n >>= 8 {
		size++
	}
	return size
}

// Definite reports whether l declares an up-front content length.
func (l Length) Definite() bool {
	return l.Form != LengthIndefinite
}

// Canonical reports whether l is the one encoding of its value permitted by
// DER: the short form for values up to 127 and the long form with a minimal
// octet count otherwise.
func (l Length) Canonical() bool {
	switch l.Form {
	case LengthShort:
		return true
	case LengthLong:
		return l.Value > 0x7f && l.Size == sizeOf(l.Value)
	}
	return false
}

// String returns a readable representation of l.
func (l Length) String() string {
	switch l.Form {
	case LengthShort:
		return strconv.Itoa(l.Value)
	case LengthLong:
		return strconv.Itoa(l.Value) + "(" + strconv.Itoa(l.Size) + ")"
	}
	return "indef"
}

// AppendLength appends the length octets described by l to dst. The long
// form is written with exactly l.Size octets, reproducing any leading zero
// octets of a decoded non-minimal encoding. An error wrapping
// [ErrInvalidLength] is returned if l cannot be represented: a short-form
// value outside 0..127, a long-form octet count outside 1..126 or a value
// that does not fit the declared octet count.
func AppendLength(dst []byte, l Length) ([]byte, error) {
	switch l.Form {
	case LengthShort:
		if l.Value < 0 || l.Value > 0x7f {
			return dst, fmt.Errorf("%w: short form cannot hold length %d", ErrInvalidLength, l.Value)
		}
		return append(dst, byte(l.Value)), nil

	case LengthLong:
		if l.Size < 1 || l.Size > 0x7e {
			return dst, fmt.Errorf("%w: %d length octets", ErrInvalidLength, l.Size)
		}
		if l.Value < 0 || l.Size < sizeOf(l.Value) {
			return dst, fmt.Errorf("%w: length %d does not fit %d octets", ErrInvalidLength, l.Value, l.Size)
		}
		dst = append(dst, 0x80|byte(l.Size))
		for i := l.Size - 1; i >= 0; i-- {
			dst = append(dst, byte(l.Value>>(i*8)))
		}
		return dst, nil

	case LengthIndefinite:
		return append(dst, 0x80), nil
	}
	return dst, fmt.Errorf("%w: unknown form %d", ErrInvalidLength, l.Form)
}

// DecodeLength parses the length octets at the beginning of data. It returns
// the decoded [Length] and the number of bytes consumed.
//
// The reserved leading octet 0xFF is rejected with [ErrInvalidLength], as is
// a reconstructed length that does not fit the int type: such a length could
// never be satisfied by the input and bounding it here keeps a hostile header
// from provoking an unbounded allocation. If data is empty the returned error
// is [io.EOF]; if data ends within the declared length octets it is
// [ErrTruncated].
func DecodeLength(data []byte) (Length, int, error) {
	if len(data) == 0 {
		return Length{}, 0, io.EOF
	}
	b := data[0]
	if b&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		return Length{Form: LengthShort, Value: int(b)}, 1, nil
	}
	if b == 0x80 {
		return Indefinite, 1, nil
	}

	// Bottom 7 bits give the number of length octets to follow.
	size := int(b & 0x7f)
	if size == 0x7f {
		// reserved by X.690, Section 8.1.3.5 c)
		return Length{}, 1, fmt.Errorf("%w: reserved length octet 0xff", ErrInvalidLength)
	}
	if size > len(data)-1 {
		return Length{}, len(data), ErrTruncated
	}
	l := Length{Form: LengthLong, Size: size}
	for _, b := range data[1 : 1+size] {
		if l.Value > math.MaxInt>>8 {
			// We can't shift l.Value up without overflowing.
			return Length{}, 1 + size, fmt.Errorf("%w: length too large", ErrInvalidLength)
		}
		l.Value = l.Value<<8 | int(b)
	}
	return l, 1 + size, nil
}
