package types

import (
	"fmt"
	"strconv"

	"github.com/fluxwire/lineproto/errs"
)

// Boolean is a boolean field value.
//
// Parsing accepts six spellings per polarity; formatting always emits the
// canonical "true" or "false".
type Boolean bool

// ParseBoolean decodes a boolean literal.
func ParseBoolean(raw string) (Boolean, error) {
	switch raw {
	case "t", "T", "true", "True", "TRUE":
		return true, nil
	case "f", "F", "false", "False", "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errs.ErrBooleanNotParsed, raw)
	}
}

// String returns the canonical wire spelling.
func (b Boolean) String() string {
	if b {
		return "true"
	}

	return "false"
}

// Integer is a signed 64-bit field value, carried on the wire with a
// mandatory trailing 'i'.
type Integer int64

// ParseInteger decodes an i-suffixed signed integer literal.
//
// The suffix must be the final character; the remainder must be a valid
// base-10 int64 with nothing extraneous.
func ParseInteger(raw string) (Integer, error) {
	if len(raw) == 0 || raw[len(raw)-1] != 'i' {
		return 0, fmt.Errorf("%w: missing 'i' suffix in %q", errs.ErrIntegerNotParsed, raw)
	}

	v, err := strconv.ParseInt(raw[:len(raw)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrIntegerNotParsed, raw)
	}

	return Integer(v), nil
}

// String returns the i-suffixed wire form.
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10) + "i"
}

// UInteger is an unsigned 64-bit field value, carried on the wire with a
// mandatory trailing 'u'.
type UInteger uint64

// ParseUInteger decodes a u-suffixed unsigned integer literal.
func ParseUInteger(raw string) (UInteger, error) {
	if len(raw) == 0 || raw[len(raw)-1] != 'u' {
		return 0, fmt.Errorf("%w: missing 'u' suffix in %q", errs.ErrUIntegerNotParsed, raw)
	}

	v, err := strconv.ParseUint(raw[:len(raw)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrUIntegerNotParsed, raw)
	}

	return UInteger(v), nil
}

// String returns the u-suffixed wire form.
func (u UInteger) String() string {
	return strconv.FormatUint(uint64(u), 10) + "u"
}
