package line

import (
	"fmt"

	"github.com/fluxwire/lineproto/errs"
)

// tailKind tags what follows the segment a scanner just finished.
type tailKind uint8

const (
	tailNone      tailKind = iota // end of line
	tailTags                      // another tag pair follows
	tailFields                    // the field section (or another field pair) follows
	tailTimestamp                 // the timestamp segment follows
)

// RawPair is a still-escaped key/value pair sliced out of the input line.
type RawPair struct {
	Key   string
	Value string
}

// RawLine holds the still-escaped segments of one line.
//
// All strings are views into the input text and stay valid only as long as
// the input does; decoding into owned storage happens in Parse.
type RawLine struct {
	Measurement  string
	Tags         []RawPair
	Fields       []RawPair
	Timestamp    string
	HasTimestamp bool
}

// Tokenize splits one line of wire text into raw, still-escaped segments
// without decoding any escape sequence.
//
// The scan is a single left-to-right pass tracking only an "escaped" flag per
// segment. A single trailing newline is tolerated and stripped.
func Tokenize(text string) (RawLine, error) {
	if n := len(text); n > 0 && text[n-1] == '\n' {
		text = text[:n-1]
	}

	var raw RawLine

	measurement, rest, next, err := scanMeasurement(text)
	if err != nil {
		return RawLine{}, err
	}
	raw.Measurement = measurement

	for next == tailTags {
		var pair RawPair
		pair, rest, next, err = scanTagPair(rest)
		if err != nil {
			return RawLine{}, err
		}
		raw.Tags = append(raw.Tags, pair)
	}

	for {
		var pair RawPair
		pair, rest, next, err = scanFieldPair(rest)
		if err != nil {
			return RawLine{}, err
		}
		raw.Fields = append(raw.Fields, pair)

		if next != tailFields {
			break
		}
	}

	if next == tailTimestamp {
		raw.Timestamp = rest
		raw.HasTimestamp = true
	}

	return raw, nil
}

// scanMeasurement consumes the measurement segment, ending at the first
// unescaped comma (tags follow) or space (fields follow).
func scanMeasurement(s string) (string, string, tailKind, error) {
	if len(s) == 0 {
		return "", "", tailNone, errs.ErrNoMeasurement
	}

	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}

		switch c {
		case ',', ' ':
			if i == 0 {
				return "", "", tailNone, errs.ErrNoMeasurement
			}
			if c == ',' {
				return s[:i], s[i+1:], tailTags, nil
			}

			return s[:i], s[i+1:], tailFields, nil
		case '\\':
			escaped = true
		}
	}

	return "", "", tailNone, errs.ErrNoWhitespaceDelimiter
}

// scanKey consumes a tag or field key, ending at the first unescaped '='.
// Only comma, space, and '=' are special inside keys; a backslash escapes
// the next character and is never itself an error here.
func scanKey(s string) (string, string, error) {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case ' ', ',':
			return "", "", fmt.Errorf("%w: %q in key", errs.ErrUnescapedSpecialCharacter, c)
		case '=':
			return s[:i], s[i+1:], nil
		}
	}

	return "", "", errs.ErrNoValue
}

func scanTagPair(s string) (RawPair, string, tailKind, error) {
	key, rest, err := scanKey(s)
	if err != nil {
		return RawPair{}, "", tailNone, err
	}

	value, rest, next, err := scanTagValue(rest)
	if err != nil {
		return RawPair{}, "", tailNone, err
	}

	return RawPair{Key: key, Value: value}, rest, next, nil
}

// scanTagValue consumes a tag value, ending at the first unescaped comma
// (another tag) or space (the field section). Reaching end of input means the
// mandatory field section is missing.
func scanTagValue(s string) (string, string, tailKind, error) {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}

		switch c {
		case ',', ' ':
			if i == 0 {
				return "", "", tailNone, errs.ErrNoValue
			}
			if c == ',' {
				return s[:i], s[i+1:], tailTags, nil
			}

			return s[:i], s[i+1:], tailFields, nil
		case '\\':
			escaped = true
		}
	}

	return "", "", tailNone, errs.ErrNoFields
}

func scanFieldPair(s string) (RawPair, string, tailKind, error) {
	key, rest, err := scanKey(s)
	if err != nil {
		return RawPair{}, "", tailNone, err
	}

	var value string
	var next tailKind
	if len(rest) > 0 && rest[0] == '"' {
		value, rest, next, err = scanQuotedValue(rest)
	} else {
		value, rest, next, err = scanBareValue(rest)
	}
	if err != nil {
		return RawPair{}, "", tailNone, err
	}

	return RawPair{Key: key, Value: value}, rest, next, nil
}

// scanBareValue consumes an unquoted field value. Non-string values never
// need escaping, so any backslash is an error.
func scanBareValue(s string) (string, string, tailKind, error) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			return "", "", tailNone, errs.ErrUnexpectedEscapeSymbol
		case ',', ' ':
			if i == 0 {
				return "", "", tailNone, errs.ErrNoValue
			}
			if s[i] == ',' {
				return s[:i], s[i+1:], tailFields, nil
			}

			return s[:i], s[i+1:], tailTimestamp, nil
		case '\n':
			return s[:i], "", tailNone, nil
		}
	}

	if len(s) == 0 {
		return "", "", tailNone, errs.ErrNoValue
	}

	return s, "", tailNone, nil
}

// States of the quoted-value sub-scanner.
const (
	qsLeftQuote uint8 = iota
	qsContent
	qsRightQuote
)

// scanQuotedValue consumes a quote-delimited field value, including both
// boundary quotes. The only escapable characters inside are the quote and the
// backslash; the value must end exactly at the closing quote.
func scanQuotedValue(s string) (string, string, tailKind, error) {
	state := qsLeftQuote
	escaped := false

	for i := 1; i < len(s); i++ {
		c := s[i]
		switch state {
		case qsLeftQuote:
			switch c {
			case '"':
				state = qsRightQuote
			case '\\':
				state = qsContent
				escaped = true
			default:
				state = qsContent
			}
		case qsContent:
			if escaped {
				if c != '\\' && c != '"' {
					return "", "", tailNone, fmt.Errorf("%w: %q inside string", errs.ErrUnexpectedEscapeSymbol, c)
				}
				escaped = false

				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				state = qsRightQuote
			}
		case qsRightQuote:
			switch c {
			case ',':
				return s[:i], s[i+1:], tailFields, nil
			case ' ':
				return s[:i], s[i+1:], tailTimestamp, nil
			default:
				return "", "", tailNone, errs.ErrSymbolsAfterClosedString
			}
		}
	}

	if state != qsRightQuote {
		return "", "", tailNone, errs.ErrNoQuoteDelimiter
	}

	return s, "", tailNone, nil
}
