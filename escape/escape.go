// Package escape implements the backslash-escaping rules shared by every
// textual segment of the line protocol.
//
// Each segment type (measurement, key, quoted string) owns a set of special
// characters that must be escaped on the wire. Decoding runs a single-pass
// state machine over the escaped text; encoding prefixes every special
// character, and the escape character itself, with one escape character.
//
// The two policies differ only in how an escape character that does not
// precede an escapable character is treated: names tolerate it and keep both
// characters literally, quoted strings reject it.
package escape

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fluxwire/lineproto/errs"
)

// Character is the escape character of the line protocol.
const Character = '\\'

// Policy selects how a stray escape character is handled during decoding.
//
// A stray escape is an escape character followed by a character that is
// neither special nor the escape character itself.
type Policy uint8

const (
	// Tolerate keeps a stray escape and the character after it literally.
	// Used for measurement and key names.
	Tolerate Policy = iota

	// Reject fails decoding on a stray escape.
	// Used for quoted string values.
	Reject
)

// Unescape decodes raw into its literal form.
//
// Special characters listed in specials may only appear behind the escape
// character; a bare occurrence is an error. A doubled escape character decodes
// to a single literal escape character. Input that ends in the middle of an
// escape sequence is an error under both policies.
func Unescape(raw string, specials string, policy Policy) (string, error) {
	var out strings.Builder
	out.Grow(len(raw))

	pending := false
	for i, c := range raw {
		if pending {
			switch {
			case strings.ContainsRune(specials, c), c == Character:
				out.WriteRune(c)
			case policy == Reject:
				return "", fmt.Errorf("%w at index %d", errs.ErrUnexpectedEscapeSymbol, i)
			default:
				out.WriteRune(Character)
				out.WriteRune(c)
			}
			pending = false

			continue
		}

		switch {
		case c == Character:
			pending = true
		case strings.ContainsRune(specials, c):
			return "", fmt.Errorf("%w: %q at index %d", errs.ErrUnescapedSpecialCharacter, c, i)
		default:
			out.WriteRune(c)
		}
	}

	if pending {
		return "", errs.ErrTrailingEscape
	}

	return out.String(), nil
}

// Append appends the escaped form of s to dst and returns the result.
//
// Every character in specials, and the escape character itself, is prefixed
// with one escape character; all other characters pass through unchanged.
// Escaping the escape character keeps Unescape a left inverse of Append for
// any literal string.
func Append(dst []byte, s string, specials string) []byte {
	for _, c := range s {
		if c == Character || strings.ContainsRune(specials, c) {
			dst = append(dst, Character)
		}
		dst = utf8.AppendRune(dst, c)
	}

	return dst
}

// String returns the escaped form of s.
func String(s string, specials string) string {
	return string(Append(make([]byte, 0, len(s)+4), s, specials))
}
