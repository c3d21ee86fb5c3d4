package line

import (
	"fmt"

	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/types"
)

// Parse decodes one line of wire text into a Line.
//
// The text is tokenized into raw segments first, then every segment is
// validated and unescaped into its typed form. Duplicate tag or field keys
// upsert: the first occurrence fixes the position, the last one the value.
func Parse(text string) (*Line, error) {
	raw, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	measurement, err := types.ParseMeasurement(raw.Measurement)
	if err != nil {
		return nil, fmt.Errorf("measurement %q: %w", raw.Measurement, err)
	}

	l := &Line{measurement: measurement}

	for _, pair := range raw.Tags {
		key, err := types.ParseKey(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("tag key %q: %w", pair.Key, err)
		}
		value, err := types.ParseKey(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("tag value %q: %w", pair.Value, err)
		}
		l.WithTag(key, value)
	}

	for _, pair := range raw.Fields {
		key, err := types.ParseKey(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("field key %q: %w", pair.Key, err)
		}
		value, err := types.ParseValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", pair.Key, err)
		}
		l.WithField(key, value)
	}

	// The tokenizer already requires at least one field pair; this guards the
	// invariant independently of tokenizer behavior.
	if len(l.fields) == 0 {
		return nil, errs.ErrNoFields
	}

	if raw.HasTimestamp {
		ts, err := types.ParseTimestamp(raw.Timestamp)
		if err != nil {
			return nil, err
		}
		l.WithTimestamp(ts)
	}

	return l, nil
}
