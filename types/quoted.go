package types

import (
	"fmt"

	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/escape"
)

// quotedSpecials are the characters that must be escaped inside a quoted
// string value. Unlike names, quoted strings reject stray escapes: only a
// quote or a backslash may ever follow the escape character.
const quotedSpecials = `"\`

// QuotedString is a string field value.
//
// It holds the literal (unescaped, unquoted) text; String renders the
// double-quoted, escaped wire form. Any string is valid, there is no naming
// restriction.
type QuotedString string

// ParseQuotedString decodes a quote-delimited value segment from wire text.
//
// The raw segment must begin and end with a literal double quote; the
// interior is decoded with the Reject escape policy.
func ParseQuotedString(raw string) (QuotedString, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", fmt.Errorf("%w: %q", errs.ErrNoQuoteDelimiter, raw)
	}

	value, err := escape.Unescape(raw[1:len(raw)-1], quotedSpecials, escape.Reject)
	if err != nil {
		return "", err
	}

	return QuotedString(value), nil
}

// String returns the double-quoted, escaped wire form of the value.
func (q QuotedString) String() string {
	out := make([]byte, 0, len(q)+2)
	out = append(out, '"')
	out = escape.Append(out, string(q), quotedSpecials)
	out = append(out, '"')

	return string(out)
}
