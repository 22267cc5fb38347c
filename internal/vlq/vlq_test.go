package vlq

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    uint
		wantN   int
		wantErr error
	}{
		"SingleByte":    {[]byte{0x05}, 5, 1, nil},
		"Zero":          {[]byte{0x00}, 0, 1, nil},
		"MultiByte":     {[]byte{0x85, 0x01, 0x00}, 641, 2, nil},
		"EOF":           {nil, 0, 0, io.EOF},
		"UnexpectedEOF": {[]byte{0x81, 0x80}, 0, 2, io.ErrUnexpectedEOF},
		"NonMinimal":    {[]byte{0x80, 0x85, 0x01}, 0, 1, ErrNotMinimal},
		// assumes a uint size of 8 bytes (64 bit architecture)
		"Overflow": {[]byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, 10, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, n, err := Decode[uint](tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if got != tc.want {
				t.Errorf("Decode(%# x) = %v, want %v", tc.data, got, tc.want)
			}
			if n != tc.wantN {
				t.Errorf("Decode(%# x) n = %d, want %d", tc.data, n, tc.wantN)
			}
		})
	}
}

func TestDecode8(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    uint8
		wantErr error
	}{
		"SingleByte": {[]byte{0x05}, 5, nil},
		"Overflow":   {[]byte{0x85, 0x01, 0x00}, 0, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, _, err := Decode[uint8](tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Decode(%# x) = %v, want %v", tc.data, got, tc.want)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		value uint
		want  []byte
	}{
		{0, []byte{0x00}},
		{25, []byte{25}},
		{641, []byte{0x85, 0x01}},
		{1<<14 - 1, []byte{0xff, 0x7f}},
		{1 << 14, []byte{0x81, 0x80, 0x00}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) {
			if l := Len(tc.value); l != len(tc.want) {
				t.Errorf("Len(%d) = %d, want %d", tc.value, l, len(tc.want))
			}
			if got := Append(nil, tc.value); !slices.Equal(got, tc.want) {
				t.Errorf("Append(%d) = %# x, want %# x", tc.value, got, tc.want)
			}
			got, n, err := Decode[uint](tc.want)
			if err != nil {
				t.Fatalf("Decode(%# x) error = %v, want nil", tc.want, err)
			}
			if got != tc.value || n != len(tc.want) {
				t.Errorf("Decode(%# x) = %v (%d bytes), want %v (%d bytes)", tc.want, got, n, tc.value, len(tc.want))
			}
		})
	}
}
