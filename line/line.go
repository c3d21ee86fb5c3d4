// Package line implements the record type of the protocol and the transforms
// between wire text and typed records: the segment tokenizer, the line
// assembler, and the inverse formatter.
package line

import (
	"time"

	"github.com/fluxwire/lineproto/types"
)

// Tag is one string key/value pair of a line's tag set.
type Tag struct {
	Key   types.Key
	Value types.Key
}

// Field is one typed key/value pair of a line's field set.
type Field struct {
	Key   types.Key
	Value types.Value
}

// Line is one decoded record: a measurement, an ordered tag set, an ordered
// non-empty field set, and an optional timestamp.
//
// Tag and field sets keep first-insertion iteration order; re-inserting an
// existing key replaces its value in place. Both are small linear storages,
// hashing overhead is not worth it at typical line sizes.
type Line struct {
	measurement  types.Measurement
	tags         []Tag
	fields       []Field
	timestamp    types.Timestamp
	hasTimestamp bool
}

// New creates a line with its mandatory first field.
//
// A line can never exist with an empty field set, so the first field is part
// of construction. More tags and fields chain through WithTag and WithField.
func New(measurement types.Measurement, fieldKey types.Key, value types.Value) *Line {
	return &Line{
		measurement: measurement,
		fields:      []Field{{Key: fieldKey, Value: value}},
	}
}

// Measurement returns the measurement name.
func (l *Line) Measurement() types.Measurement {
	return l.measurement
}

// WithTag upserts a tag and returns the line for chaining.
//
// An existing key keeps its position in iteration order; only its value is
// replaced.
func (l *Line) WithTag(key, value types.Key) *Line {
	for i := range l.tags {
		if l.tags[i].Key == key {
			l.tags[i].Value = value
			return l
		}
	}
	l.tags = append(l.tags, Tag{Key: key, Value: value})

	return l
}

// WithField upserts a field and returns the line for chaining.
func (l *Line) WithField(key types.Key, value types.Value) *Line {
	for i := range l.fields {
		if l.fields[i].Key == key {
			l.fields[i].Value = value
			return l
		}
	}
	l.fields = append(l.fields, Field{Key: key, Value: value})

	return l
}

// WithTimestamp sets the timestamp and returns the line for chaining.
func (l *Line) WithTimestamp(ts types.Timestamp) *Line {
	l.timestamp = ts
	l.hasTimestamp = true

	return l
}

// WithTime sets the timestamp from a calendar instant.
//
// It fails when the instant is outside the 64-bit nanosecond range.
func (l *Line) WithTime(t time.Time) (*Line, error) {
	ts, err := types.TimestampFromTime(t)
	if err != nil {
		return nil, err
	}

	return l.WithTimestamp(ts), nil
}

// Tag looks up a tag value by unescaped key name.
func (l *Line) Tag(name string) (types.Key, bool) {
	for i := range l.tags {
		if string(l.tags[i].Key) == name {
			return l.tags[i].Value, true
		}
	}

	return "", false
}

// Field looks up a field value by unescaped key name.
func (l *Line) Field(name string) (types.Value, bool) {
	for i := range l.fields {
		if string(l.fields[i].Key) == name {
			return l.fields[i].Value, true
		}
	}

	return types.Value{}, false
}

// Tags returns the tag set in insertion order.
// The returned slice is the line's own storage; do not modify it.
func (l *Line) Tags() []Tag {
	return l.tags
}

// Fields returns the field set in insertion order.
// The returned slice is the line's own storage; do not modify it.
func (l *Line) Fields() []Field {
	return l.fields
}

// Timestamp returns the timestamp and whether one is set.
func (l *Line) Timestamp() (types.Timestamp, bool) {
	return l.timestamp, l.hasTimestamp
}

// Equal reports whether two lines hold the same record.
//
// Tag and field sets compare as mappings: iteration order is irrelevant for
// equality even though it matters for serialization.
func (l *Line) Equal(other *Line) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.measurement != other.measurement {
		return false
	}
	if l.hasTimestamp != other.hasTimestamp || (l.hasTimestamp && l.timestamp != other.timestamp) {
		return false
	}
	if len(l.tags) != len(other.tags) || len(l.fields) != len(other.fields) {
		return false
	}
	for _, t := range l.tags {
		v, ok := other.Tag(string(t.Key))
		if !ok || v != t.Value {
			return false
		}
	}
	for _, f := range l.fields {
		v, ok := other.Field(string(f.Key))
		if !ok || v != f.Value {
			return false
		}
	}

	return true
}
