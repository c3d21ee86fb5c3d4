// Package lineproto implements a codec for a line-oriented, text-based
// measurement protocol: one textual record per line carrying a measurement
// name, ordered string tag pairs, one or more typed field pairs, and an
// optional nanosecond timestamp.
//
// # Wire format
//
//	line       := measurement (',' tag)* ' ' field (',' field)* (' ' timestamp)?
//	measurement:= escaped-text        ; special: comma, space
//	tag        := key '=' value       ; key,value special: comma, equals, space
//	field      := key '=' fieldvalue
//	fieldvalue := float | integer 'i' | uinteger 'u' | boolean | '"' escaped-text '"'
//	timestamp  := signed-integer      ; nanoseconds
//
// The escape character is always a backslash. Parsing and formatting are pure
// in-memory transforms: no I/O, no shared state, safe to run concurrently
// across goroutines.
//
// # Basic usage
//
// Parsing a line:
//
//	l, err := lineproto.Parse(`human,location=siberia age=25u,name="Egorka" 1704067200000000000`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	age, _ := l.Field("age")      // types.Value, UInteger(25)
//	loc, _ := l.Tag("location")   // types.Key("siberia")
//
// Building and formatting a line:
//
//	l := lineproto.MustNew("weather", "temperature", types.FloatValue(21.5)).
//	    WithTag(types.Key("city"), types.Key("berlin"))
//	text := l.String() // weather,city=berlin temperature=21.5
//
// # Package structure
//
// This package provides convenience wrappers around the domain packages:
// line (tokenizer, record, assembler), types (name and value model), escape
// (shared escaping rules), and batch (multi-line compressed framing). Use the
// sub-packages directly for fine-grained control.
package lineproto

import (
	"github.com/fluxwire/lineproto/batch"
	"github.com/fluxwire/lineproto/internal/hash"
	"github.com/fluxwire/lineproto/line"
	"github.com/fluxwire/lineproto/types"
)

// Parse decodes one line of wire text into a typed record.
//
// A single trailing newline is tolerated. All decoded names and string values
// are stored unescaped; the returned Line owns its storage and keeps no
// reference to text.
func Parse(text string) (*line.Line, error) {
	return line.Parse(text)
}

// New creates a line from unescaped component strings, validating the
// measurement and field key restrictions.
//
// The first field is mandatory: a line with an empty field set cannot exist.
func New(measurement, fieldKey string, value types.Value) (*line.Line, error) {
	m, err := types.NewMeasurement(measurement)
	if err != nil {
		return nil, err
	}
	k, err := types.NewKey(fieldKey)
	if err != nil {
		return nil, err
	}

	return line.New(m, k, value), nil
}

// MustNew is New panicking on invalid names. Intended for literals whose
// validity is known at compile time.
func MustNew(measurement, fieldKey string, value types.Value) *line.Line {
	l, err := New(measurement, fieldKey, value)
	if err != nil {
		panic(err)
	}

	return l
}

// SeriesID returns the 64-bit identifier of the line's series: the xxHash64
// of its canonical measurement-plus-tag-set wire prefix.
//
// The hash is deterministic across processes, so IDs computed by independent
// producers agree. Two lines of the same series always map to the same ID;
// distinct series collide with probability ~2^-64.
func SeriesID(l *line.Line) uint64 {
	return hash.ID(l.SeriesKey())
}

// NewBatchEncoder creates an encoder framing multiple lines into one
// compressed payload. See the batch package for options.
func NewBatchEncoder(opts ...batch.EncoderOption) (*batch.Encoder, error) {
	return batch.NewEncoder(opts...)
}

// NewBatchDecoder creates a decoder over a batch payload produced by a batch
// Encoder.
func NewBatchDecoder(data []byte) (*batch.Decoder, error) {
	return batch.NewDecoder(data)
}
