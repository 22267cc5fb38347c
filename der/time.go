// Copyright 2025 Malte Wessel. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"fmt"
	"time"

	"wessel.dev/asn1"
)

// timeCodec returns the codec for one of the two time serializations.
//
// UTCTime is the format YYMMDDHHMMSS followed by a zone designator, with
// two-digit years covering 1950 through 2049. GeneralizedTime uses four-digit
// years and an optional fraction of a second: YYYYMMDDHHMMSS[.f+] followed by
// the zone designator. The zone designator is either "Z" or an offset of the
// form +HHMM or -HHMM; both formats require seconds to be present.
//
// See Rec. ITU-T X.690, Sections 11.7 and 11.8.
func timeCodec(tt asn1.TimeType) codec {
	if tt == asn1.UTCTime {
		return codec{encodeUTCTime, decodeUTCTime}
	}
	return codec{encodeGeneralizedTime, decodeGeneralizedTime}
}

func encodeUTCTime(v asn1.Value) ([]byte, error) {
	t := v.Time
	if year := t.Year(); year < 1950 || year > 2049 {
		return nil, fmt.Errorf("%w: year %d outside the UTCTime range", ErrInvalidTime, year)
	}
	if t.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: UTCTime cannot represent fractional seconds", ErrInvalidTime)
	}

	b := make([]byte, 0, 17)
	b = appendDigits(b, t.Year()%100, 2)
	b = appendDigits(b, int(t.Month()), 2)
	b = appendDigits(b, t.Day(), 2)
	b = appendDigits(b, t.Hour(), 2)
	b = appendDigits(b, t.Minute(), 2)
	b = appendDigits(b, t.Second(), 2)
	_, off := t.Zone()
	return appendZone(b, off)
}

func decodeUTCTime(b []byte) (asn1.Value, error) {
	if len(b) != 13 && len(b) != 17 {
		return asn1.Value{}, fmt.Errorf("%w: UTCTime of length %d", ErrInvalidTime, len(b))
	}
	var f [6]int
	for i := range f {
		v, ok := digits(b[2*i : 2*i+2])
		if !ok {
			return asn1.Value{}, fmt.Errorf("%w: malformed UTCTime", ErrInvalidTime)
		}
		f[i] = v
	}
	off, err := parseZone(b[12:])
	if err != nil {
		return asn1.Value{}, err
	}

	year := 1900 + f[0]
	if f[0] < 50 {
		year = 2000 + f[0]
	}
	return makeTime(asn1.UTCTime, year, f[1], f[2], f[3], f[4], f[5], 0, off)
}

func encodeGeneralizedTime(v asn1.Value) ([]byte, error) {
	t := v.Time
	if year := t.Year(); year < 0 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d outside the GeneralizedTime range", ErrInvalidTime, year)
	}

	b := make([]byte, 0, 25)
	b = appendDigits(b, t.Year(), 4)
	b = appendDigits(b, int(t.Month()), 2)
	b = appendDigits(b, t.Day(), 2)
	b = appendDigits(b, t.Hour(), 2)
	b = appendDigits(b, t.Minute(), 2)
	b = appendDigits(b, t.Second(), 2)
	if ns := t.Nanosecond(); ns != 0 {
		frac := appendDigits(nil, ns, 9)
		for frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		b = append(b, '.')
		b = append(b, frac...)
	}
	_, off := t.Zone()
	return appendZone(b, off)
}

func decodeGeneralizedTime(b []byte) (asn1.Value, error) {
	if len(b) < 15 {
		return asn1.Value{}, fmt.Errorf("%w: GeneralizedTime of length %d", ErrInvalidTime, len(b))
	}
	year, ok := digits(b[:4])
	if !ok {
		return asn1.Value{}, fmt.Errorf("%w: malformed GeneralizedTime", ErrInvalidTime)
	}
	var f [5]int
	for i := range f {
		v, ok := digits(b[4+2*i : 6+2*i])
		if !ok {
			return asn1.Value{}, fmt.Errorf("%w: malformed GeneralizedTime", ErrInvalidTime)
		}
		f[i] = v
	}

	rest := b[14:]
	ns := 0
	if len(rest) > 1 && rest[0] == '.' {
		i := 1
		for i < len(rest) && '0' <= rest[i] && rest[i] <= '9' {
			i++
		}
		fd := rest[1:i]
		if len(fd) == 0 || len(fd) > 9 {
			return asn1.Value{}, fmt.Errorf("%w: malformed fractional seconds", ErrInvalidTime)
		}
		if fd[len(fd)-1] == '0' {
			return asn1.Value{}, fmt.Errorf("%w: trailing zeros in fractional seconds", ErrNonCanonical)
		}
		ns, _ = digits(fd)
		for range 9 - len(fd) {
			ns *= 10
		}
		rest = rest[i:]
	}
	off, err := parseZone(rest)
	if err != nil {
		return asn1.Value{}, err
	}
	return makeTime(asn1.GeneralizedTime, year, f[0], f[1], f[2], f[3], f[4], ns, off)
}

// makeTime builds the decoded time and verifies that the components denote an
// actual calendar date. [time.Date] normalizes out-of-range components (month
// 13 becomes January of the following year); a decoder must reject them
// instead, so the components are compared against the normalized result.
func makeTime(tt asn1.TimeType, year, month, day, hour, min, sec, ns, off int) (asn1.Value, error) {
	loc := time.UTC
	if off != 0 {
		loc = time.FixedZone("", off)
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, ns, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return asn1.Value{}, fmt.Errorf("%w: no such instant", ErrInvalidTime)
	}
	return asn1.Time(tt, t), nil
}

// parseZone parses the zone designator terminating a time value and returns
// the offset in seconds east of UTC.
func parseZone(b []byte) (int, error) {
	if len(b) == 1 && b[0] == 'Z' {
		return 0, nil
	}
	if len(b) == 5 && (b[0] == '+' || b[0] == '-') {
		hh, ok1 := digits(b[1:3])
		mm, ok2 := digits(b[3:5])
		if ok1 && ok2 && hh < 24 && mm < 60 {
			off := hh*3600 + mm*60
			if off == 0 {
				return 0, fmt.Errorf("%w: zero offset must be written as Z", ErrNonCanonical)
			}
			if b[0] == '-' {
				off = -off
			}
			return off, nil
		}
	}
	return 0, fmt.Errorf("%w: malformed zone designator", ErrInvalidTime)
}

// appendZone is the inverse of [parseZone].
func appendZone(dst []byte, off int) ([]byte, error) {
	if off == 0 {
		return append(dst, 'Z'), nil
	}
	if off%60 != 0 {
		return nil, fmt.Errorf("%w: zone offset is not a whole number of minutes", ErrInvalidTime)
	}
	sign := byte('+')
	if off < 0 {
		sign, off = '-', -off
	}
	dst = append(dst, sign)
	dst = appendDigits(dst, off/3600, 2)
	return appendDigits(dst, off%3600/60, 2), nil
}

// appendDigits appends v as exactly n decimal digits, zero-padded. n must be
// at most 9.
func appendDigits(dst []byte, v, n int) []byte {
	var buf [9]byte
	for i := n - 1; i >= 0; i-- {
		buf[i] = '0' + byte(v%10)
		v /= 10
	}
	return append(dst, buf[:n]...)
}

// digits parses b as a decimal number. It reports false if b contains
// anything but ASCII digits.
func digits(b []byte) (int, bool) {
	v := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
