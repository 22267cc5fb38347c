package tlv

import (
	"fmt"
	"io"
	"iter"

	"wessel.dev/asn1"
)

// EventKind identifies the variant of an [Event].
//
//go:generate stringer -type=EventKind -trimprefix=Event
type EventKind uint8

const (
	// EventHeader carries the [Header] of the data value whose content
	// follows.
	EventHeader EventKind = iota
	// EventPrimitive carries the raw content octets of a primitive value. It
	// immediately follows the Header of every primitive value and its byte
	// length equals the length declared by that Header.
	EventPrimitive
	// EventBegin opens the nested values of a constructed value. It
	// immediately follows the Header of every constructed value.
	EventBegin
	// EventEnd closes the nested values opened by the matching [EventBegin].
	EventEnd
)

// Event is a single element of the flat event representation of a BER
// stream. Events appear in strict document order; see the package
// documentation for the shape of a well-formed sequence.
type Event struct {
	Kind   EventKind
	Header Header // EventHeader
	Bytes  []byte // EventPrimitive
}

// Begin and End are the construction markers bracketing the nested values of
// a constructed data value.
var (
	Begin = Event{Kind: EventBegin}
	End   = Event{Kind: EventEnd}
)

// HeaderEvent returns the Event announcing h.
func HeaderEvent(h Header) Event {
	return Event{Kind: EventHeader, Header: h}
}

// PrimitiveEvent returns the Event carrying the content octets b.
func PrimitiveEvent(b []byte) Event {
	return Event{Kind: EventPrimitive, Bytes: b}
}

// String returns a readable representation of e.
func (e Event) String() string {
	switch e.Kind {
	case EventHeader:
		return e.Header.String()
	case EventPrimitive:
		return fmt.Sprintf("Primitive{% X}", e.Bytes)
	}
	return e.Kind.String()
}

//region Decoder

// DefaultMaxDepth is the construction nesting depth a [Decoder] permits
// unless configured otherwise.
const DefaultMaxDepth = 64

// frame records a constructed value the [Decoder] is currently inside of.
type frame struct {
	hdr Header
	end int // absolute offset of the first byte after the value, -1 if indefinite

	// limit is the strictest definite boundary enclosing the value. An
	// indefinite value inherits it from its parent so that nothing inside it
	// can read past an outer definite length.
	limit int
}

// Decoder produces the event sequence of a BER encoding. It performs a
// single forward pass over an immutable byte slice; decoding is lazy in the
// sense that no event is examined before [Decoder.Next] is called, so a
// caller can abandon a partially consumed stream at any point without
// leaking resources.
//
// Decoder accepts everything BER permits, including indefinite lengths and
// non-minimal length octets. Stricter DER validation is layered on top by
// [wessel.dev/asn1/der].
//
// A Decoder must be created by [NewDecoder].
type Decoder struct {
	buf   []byte
	pos   int
	stack []frame

	// MaxDepth bounds the construction nesting depth. Nesting beyond this
	// bound fails with ErrMalformedStructure instead of growing the frame
	// stack without limit. It may only be changed before the first call to
	// Next.
	MaxDepth int

	beginPending bool
	primLen      int // length of a pending primitive content, -1 if none
	err          error
}

// NewDecoder creates a new Decoder reading from data. The Decoder assumes
// ownership of data for the duration of the decode; the slice must not be
// modified.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data, MaxDepth: DefaultMaxDepth, primLen: -1}
}

// Next returns the next event of the stream. At the end of a fully consumed,
// well-formed input Next returns [io.EOF]. Any other error marks the stream
// as broken: the same error is returned by all subsequent calls and no
// partial event is ever produced.
//
// The Bytes of a returned [EventPrimitive] event alias the input slice.
func (d *Decoder) Next() (Event, error) {
	if d.err != nil {
		return Event{}, d.err
	}
	if d.beginPending {
		d.beginPending = false
		return Begin, nil
	}
	if d.primLen >= 0 {
		n := d.primLen
		d.primLen = -1
		b := d.buf[d.pos : d.pos+n : d.pos+n]
		d.pos += n
		return Event{Kind: EventPrimitive, Bytes: b}, nil
	}

	// A definite-length constructed value ends implicitly with its last
	// content octet.
	if len(d.stack) > 0 {
		if f := d.stack[len(d.stack)-1]; f.end >= 0 && d.pos >= f.end {
			if d.pos > f.end {
				return Event{}, d.fail(d.pos, errExceedsParent)
			}
			d.stack = d.stack[:len(d.stack)-1]
			return End, nil
		}
	}
	if len(d.stack) == 0 && d.pos == len(d.buf) {
		d.err = io.EOF
		return Event{}, io.EOF
	}

	limit := len(d.buf)
	if len(d.stack) > 0 {
		limit = d.stack[len(d.stack)-1].limit
	}

	start := d.pos
	h, n, err := DecodeHeader(d.buf[d.pos:limit])
	d.pos += n
	if err != nil {
		if err == io.EOF {
			// io.EOF between two headers means an unterminated construction:
			// cut off by an enclosing value if one bounds the read, by the
			// input otherwise.
			if limit < len(d.buf) {
				err = errExceedsParent
			} else {
				err = ErrTruncated
			}
		}
		return Event{}, d.fail(start, err)
	}

	if h == (Header{}) {
		// The end-of-contents marker is 0x0000, coinciding with the empty
		// header.
		if len(d.stack) > 0 && d.stack[len(d.stack)-1].end < 0 {
			d.stack = d.stack[:len(d.stack)-1]
			return End, nil
		}
		return Event{}, d.fail(start, errUnexpectedEOC)
	}
	if h.Tag == asn1.TagReserved {
		return Event{}, d.fail(start, errReservedTag)
	}
	if h.Length.Definite() && h.Length.Value > limit-d.pos {
		if limit == len(d.buf) {
			return Event{}, d.fail(start, ErrTruncated)
		}
		return Event{}, d.fail(start, errExceedsParent)
	}

	if h.Constructed {
		if len(d.stack) >= d.MaxDepth {
			return Event{}, d.fail(start, errNestingDepth)
		}
		end, flimit := -1, limit
		if h.Length.Definite() {
			// end <= limit was established above
			end = d.pos + h.Length.Value
			flimit = end
		}
		d.stack = append(d.stack, frame{h, end, flimit})
		d.beginPending = true
	} else {
		d.primLen = h.Length.Value
	}
	return Event{Kind: EventHeader, Header: h}, nil
}

// fail wraps err into a [SyntaxError] and puts d into its broken state.
func (d *Decoder) fail(offset int, err error) error {
	var h Header
	if len(d.stack) > 0 {
		h = d.stack[len(d.stack)-1].hdr
	}
	d.err = &SyntaxError{Err: err, ByteOffset: offset, Header: h}
	return d.err
}

// InputOffset returns the input byte offset of the decoder, i.e. the number
// of bytes consumed by the events returned so far.
func (d *Decoder) InputOffset() int {
	return d.pos
}

// StackDepth returns the number of constructed values the decoder is
// currently inside of. It is incremented by every [EventBegin] and
// decremented by every [EventEnd].
func (d *Decoder) StackDepth() int {
	return len(d.stack)
}

// Events returns the event sequence of data as a lazy, single-use iterator.
// The sequence ends without an error item when data is well-formed;
// otherwise the final item carries the error. Breaking out of the iteration
// simply abandons the remainder of the input.
func Events(data []byte) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		d := NewDecoder(data)
		for {
			ev, err := d.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Event{}, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// DecodeEvents materializes the full event sequence of data. If data is not
// well-formed BER, the error is returned and no events are, even if a prefix
// of the input decoded successfully.
func DecodeEvents(data []byte) ([]Event, error) {
	d := NewDecoder(data)
	var events []Event
	for {
		ev, err := d.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
}

//endregion

//region Encoder

// encState tracks which event kinds are acceptable next during encoding.
type encState uint8

const (
	encAny       encState = iota
	encBegin              // a constructed header must be followed by Begin
	encPrimitive          // a primitive header must be followed by its content
)

// encFrame records an open constructed value during encoding.
type encFrame struct {
	hdr   Header
	start int // offset into the output where the content octets begin
}

// EncodeEvents serializes an ordered event list into its BER representation.
// It is the exact inverse of [DecodeEvents]: for every well-formed event list
// the produced bytes decode back into the same list.
//
// The event list must satisfy the structural invariants of the event stream.
// A [EventPrimitive] whose byte length differs from the length declared by
// its header fails with [ErrLengthMismatch], as does a definite-length
// constructed value whose content does not add up to the declared length.
// Unbalanced or misplaced construction markers fail with
// [ErrMalformedStructure].
func EncodeEvents(events []Event) ([]byte, error) {
	var (
		dst     []byte
		stack   []encFrame
		state   encState
		pending Header // the most recent header, awaiting Begin or content
		err     error
	)
	for _, ev := range events {
		switch state {
		case encBegin:
			if ev.Kind != EventBegin {
				return nil, fmt.Errorf("%w: constructed header not followed by construction", ErrMalformedStructure)
			}
			stack = append(stack, encFrame{pending, len(dst)})
			state = encAny
			continue

		case encPrimitive:
			if ev.Kind != EventPrimitive {
				return nil, fmt.Errorf("%w: primitive header not followed by content", ErrMalformedStructure)
			}
			if len(ev.Bytes) != pending.Length.Value {
				return nil, fmt.Errorf("%w: %d content octets for declared length %d",
					ErrLengthMismatch, len(ev.Bytes), pending.Length.Value)
			}
			dst = append(dst, ev.Bytes...)
			state = encAny
			continue
		}

		switch ev.Kind {
		case EventHeader:
			h := ev.Header
			if h.Tag == asn1.TagReserved {
				return nil, errReservedTag
			}
			if dst, err = AppendHeader(dst, h); err != nil {
				return nil, err
			}
			pending = h
			if h.Constructed {
				state = encBegin
			} else {
				state = encPrimitive
			}

		case EventEnd:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced construction end", ErrMalformedStructure)
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.hdr.Length.Definite() {
				if content := len(dst) - f.start; content != f.hdr.Length.Value {
					return nil, fmt.Errorf("%w: %d content octets for declared length %d",
						ErrLengthMismatch, content, f.hdr.Length.Value)
				}
			} else {
				dst = append(dst, 0x00, 0x00)
			}

		default:
			return nil, fmt.Errorf("%w: unexpected %v event", ErrMalformedStructure, ev.Kind)
		}
	}
	if state != encAny || len(stack) != 0 {
		return nil, fmt.Errorf("%w: unterminated data value", ErrMalformedStructure)
	}
	return dst, nil
}

//endregion
