package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fluxwire/lineproto/errs"
)

// ValueKind discriminates the closed set of field value types.
type ValueKind uint8

const (
	KindFloat    ValueKind = iota + 1 // 64-bit IEEE float, the default numeric type
	KindInteger                       // signed 64-bit, 'i' suffix
	KindUInteger                      // unsigned 64-bit, 'u' suffix
	KindBoolean                       // true/false literal
	KindString                        // double-quoted string
)

func (k ValueKind) String() string {
	switch k {
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindUInteger:
		return "UInteger"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Value is a field value: exactly one of Float, Integer, UInteger, Boolean,
// or String.
//
// Values are immutable and comparable with ==. Numeric payloads share one
// 64-bit word; float values compare by bit pattern, so two NaN values with
// identical bits compare equal.
type Value struct {
	kind ValueKind
	bits uint64
	str  string
}

// FloatValue returns a Float value.
func FloatValue(v float64) Value {
	return Value{kind: KindFloat, bits: math.Float64bits(v)}
}

// IntegerValue returns an Integer value.
func IntegerValue(v int64) Value {
	return Value{kind: KindInteger, bits: uint64(v)}
}

// UIntegerValue returns a UInteger value.
func UIntegerValue(v uint64) Value {
	return Value{kind: KindUInteger, bits: v}
}

// BooleanValue returns a Boolean value.
func BooleanValue(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}

	return Value{kind: KindBoolean, bits: bits}
}

// StringValue returns a String value holding the literal (unescaped) text.
func StringValue(v string) Value {
	return Value{kind: KindString, str: v}
}

// ParseValue decodes a raw field value segment, attempting each type in the
// fixed order Float, Integer, UInteger, Boolean, String and returning the
// first success.
//
// The order is unambiguous: integer literals carry a trailing suffix that no
// float literal has, boolean literals match none of the numeric grammars, and
// the string form requires quote delimiters absent from all others.
func ParseValue(raw string) (Value, error) {
	if f, ok := parseFloat(raw); ok {
		return FloatValue(f), nil
	}
	if i, err := ParseInteger(raw); err == nil {
		return IntegerValue(int64(i)), nil
	}
	if u, err := ParseUInteger(raw); err == nil {
		return UIntegerValue(uint64(u)), nil
	}
	if b, err := ParseBoolean(raw); err == nil {
		return BooleanValue(bool(b)), nil
	}
	if s, err := ParseQuotedString(raw); err == nil {
		return StringValue(string(s)), nil
	}

	return Value{}, fmt.Errorf("%w: %q", errs.ErrBadValue, raw)
}

func parseFloat(raw string) (float64, bool) {
	// strconv accepts digit-grouping underscores and hex floats; the wire
	// grammar allows neither.
	if strings.ContainsAny(raw, "_xX") {
		return 0, false
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Kind returns the discriminator tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Float returns the payload when the value is a Float.
func (v Value) Float() (float64, bool) {
	return math.Float64frombits(v.bits), v.kind == KindFloat
}

// Integer returns the payload when the value is an Integer.
func (v Value) Integer() (int64, bool) {
	return int64(v.bits), v.kind == KindInteger
}

// UInteger returns the payload when the value is a UInteger.
func (v Value) UInteger() (uint64, bool) {
	return v.bits, v.kind == KindUInteger
}

// Boolean returns the payload when the value is a Boolean.
func (v Value) Boolean() (bool, bool) {
	return v.bits != 0, v.kind == KindBoolean
}

// Text returns the payload when the value is a String.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// String returns the canonical wire form of the value.
//
// Floats always carry a decimal point or an exponent so they re-parse as
// floats; integers carry their type suffix; booleans render canonically;
// strings are quoted and escaped.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return formatFloat(math.Float64frombits(v.bits))
	case KindInteger:
		return Integer(int64(v.bits)).String()
	case KindUInteger:
		return UInteger(v.bits).String()
	case KindBoolean:
		return Boolean(v.bits != 0).String()
	case KindString:
		return QuotedString(v.str).String()
	default:
		panic(fmt.Sprintf("lineproto: invalid value kind %d", v.kind))
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
