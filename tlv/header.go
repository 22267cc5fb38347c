package tlv

import (
	"errors"
	"io"

	"wessel.dev/asn1"
	"wessel.dev/asn1/internal/vlq"
)

// AppendHeader appends the identifier and length octets of h to dst and
// returns the extended slice. The class and constructed flag are packed into
// the leading octet; tag numbers up to 30 share that octet, larger tag
// numbers use the high-tag-number form (five leading one bits followed by the
// base-128 encoded tag number).
//
// AppendHeader rejects a header that declares an indefinite length on a
// primitive value.
func AppendHeader(dst []byte, h Header) ([]byte, error) {
	if !h.Constructed && h.Length.Form == LengthIndefinite {
		return dst, errIndefPrimitive
	}

	b := uint8(h.Tag.Class() >> 8)
	if h.Constructed {
		b |= 0x20
	}
	if h.Tag.Number() < 31 {
		dst = append(dst, b|uint8(h.Tag.Number()))
	} else {
		dst = append(dst, b|0x1f)
		dst = vlq.Append(dst, h.Tag.Number())
	}
	return AppendLength(dst, h.Length)
}

// DecodeHeader parses the TLV header at the beginning of data. It returns the
// decoded [Header] and the number of bytes consumed.
//
// If data is empty the returned error is [io.EOF]. A header that is cut off
// mid-way yields [ErrTruncated], a malformed length yields
// [ErrInvalidLength] and a high-tag-number form exceeding [asn1.MaxTag] or
// not minimally encoded is rejected. DecodeHeader performs no structural
// validation beyond the single header; in particular the end-of-contents
// marker decodes as the zero Header.
func DecodeHeader(data []byte) (Header, int, error) {
	if len(data) == 0 {
		return Header{}, 0, io.EOF
	}
	b := data[0]
	n := 1
	h := Header{
		Tag:         asn1.Tag(b>>6)<<14 | asn1.Tag(b&0x1f),
		Constructed: b&0x20 == 0x20,
	}

	// If the bottom five bits are set, the tag number is VLQ-encoded
	// afterwards.
	if b&0x1f == 0x1f {
		num, vn, err := vlq.Decode[uint](data[n:])
		n += vn
		if err != nil {
			return h, n, vlqErr(err)
		}
		if num > asn1.MaxTag {
			return h, n, errTagTooLarge
		}
		h.Tag = h.Tag.Class() | asn1.Tag(num)
	}

	l, ln, err := DecodeLength(data[n:])
	n += ln
	if err != nil {
		if err == io.EOF {
			// the header itself is cut off, not the input between headers
			err = ErrTruncated
		}
		return h, n, err
	}
	h.Length = l
	if !h.Constructed && h.Length.Form == LengthIndefinite {
		return h, n, errIndefPrimitive
	}
	return h, n, nil
}

// vlqErr translates the error vocabulary of the vlq package into the one used
// here.
func vlqErr(err error) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrTruncated
	case errors.Is(err, vlq.ErrNotMinimal):
		return errNonMinimalTag
	case errors.Is(err, vlq.ErrOverflow):
		return errTagTooLarge
	}
	return err
}
