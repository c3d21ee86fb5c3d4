// Package types defines the typed value model of the line protocol: validated
// name strings, the scalar field values with their wire suffixes, timestamps,
// and the closed Value union over all field value kinds.
//
// All values store their literal (unescaped) form; escaping happens only when
// a value is rendered back to wire text via String.
package types

import (
	"fmt"
	"strings"

	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/escape"
)

const (
	// measurementSpecials are the characters that must be escaped inside a
	// measurement name on the wire.
	measurementSpecials = ", "

	// keySpecials are the characters that must be escaped inside a tag key,
	// tag value, or field key on the wire.
	keySpecials = ",= "

	// reservedPrefix starts names reserved for system use.
	reservedPrefix = '_'
)

// Measurement is a validated measurement name.
//
// A Measurement holds the unescaped name; String renders the escaped wire
// form. The zero value is invalid, construct one with NewMeasurement or
// ParseMeasurement.
type Measurement string

// NewMeasurement validates an already-unescaped name.
//
// Names must be non-empty and must not start with the reserved '_' prefix.
func NewMeasurement(name string) (Measurement, error) {
	if err := checkNameRestriction(name); err != nil {
		return "", err
	}

	return Measurement(name), nil
}

// ParseMeasurement decodes an escaped measurement segment from wire text.
func ParseMeasurement(raw string) (Measurement, error) {
	name, err := escape.Unescape(raw, measurementSpecials, escape.Tolerate)
	if err != nil {
		return "", err
	}

	return NewMeasurement(name)
}

// String returns the escaped wire form of the measurement.
func (m Measurement) String() string {
	return escape.String(string(m), measurementSpecials)
}

// Key is a validated tag key, tag value, or field key.
//
// A Key holds the unescaped name; String renders the escaped wire form.
// Keys obey the same naming restriction as measurements.
type Key string

// NewKey validates an already-unescaped name.
func NewKey(name string) (Key, error) {
	if err := checkNameRestriction(name); err != nil {
		return "", err
	}

	return Key(name), nil
}

// ParseKey decodes an escaped key segment from wire text.
func ParseKey(raw string) (Key, error) {
	name, err := escape.Unescape(raw, keySpecials, escape.Tolerate)
	if err != nil {
		return "", err
	}

	return NewKey(name)
}

// String returns the escaped wire form of the key.
func (k Key) String() string {
	return escape.String(string(k), keySpecials)
}

func checkNameRestriction(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrNameRestriction)
	}
	if strings.HasPrefix(name, string(reservedPrefix)) {
		return fmt.Errorf("%w: %q starts with reserved prefix %q", errs.ErrNameRestriction, name, reservedPrefix)
	}

	return nil
}
