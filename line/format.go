package line

import "strings"

// String serializes the line back to wire form.
//
// Output is canonical: names and string values are re-escaped, floats carry a
// decimal point or exponent, booleans render true/false. No trailing newline
// is emitted. Formatting cannot fail: every component was validated at
// construction or parse time.
func (l *Line) String() string {
	var b strings.Builder
	b.Grow(64)

	l.writeSeriesKey(&b)

	b.WriteByte(' ')
	for i, f := range l.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Key.String())
		b.WriteByte('=')
		b.WriteString(f.Value.String())
	}

	if l.hasTimestamp {
		b.WriteByte(' ')
		b.WriteString(l.timestamp.String())
	}

	return b.String()
}

// SeriesKey returns the canonical measurement-plus-tag-set prefix of the
// line's wire form. Two lines with equal series keys belong to the same
// series regardless of their field values or timestamps.
func (l *Line) SeriesKey() string {
	var b strings.Builder
	b.Grow(32)
	l.writeSeriesKey(&b)

	return b.String()
}

func (l *Line) writeSeriesKey(b *strings.Builder) {
	b.WriteString(l.measurement.String())
	for _, t := range l.tags {
		b.WriteByte(',')
		b.WriteString(t.Key.String())
		b.WriteByte('=')
		b.WriteString(t.Value.String())
	}
}
