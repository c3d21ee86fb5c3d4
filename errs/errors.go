// Package errs defines the sentinel errors shared by all lineproto packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") so callers can classify
// failures with errors.Is while still receiving positional detail.
package errs

import "errors"

// Tokenizer and assembler errors.
var (
	// ErrNoMeasurement indicates a line that starts with a delimiter instead
	// of a measurement name.
	ErrNoMeasurement = errors.New("no measurement found")

	// ErrNoFields indicates a line that ends before any field pair appears.
	ErrNoFields = errors.New("no fields found")

	// ErrNoValue indicates a key with no value after it, or an empty value
	// segment where one is required.
	ErrNoValue = errors.New("no value found")

	// ErrNoWhitespaceDelimiter indicates a measurement that runs to the end
	// of input without the mandatory space before the field section.
	ErrNoWhitespaceDelimiter = errors.New("space delimiter not found")

	// ErrNoQuoteDelimiter indicates a string field value that is missing its
	// opening or closing double quote.
	ErrNoQuoteDelimiter = errors.New("closing double quote delimiter not found")

	// ErrSymbolsAfterClosedString indicates trailing characters between a
	// closing double quote and the next delimiter.
	ErrSymbolsAfterClosedString = errors.New("unexpected symbols after a closing double quote")
)

// Escape engine errors.
var (
	// ErrUnescapedSpecialCharacter indicates a special character that appears
	// bare where it must be backslash-escaped.
	ErrUnescapedSpecialCharacter = errors.New("unescaped special character")

	// ErrUnexpectedEscapeSymbol indicates an escape character that does not
	// precede an escapable character, in a context that forbids stray escapes.
	ErrUnexpectedEscapeSymbol = errors.New("unexpected escape symbol")

	// ErrTrailingEscape indicates input that ends in the middle of an escape
	// sequence.
	ErrTrailingEscape = errors.New("trailing escape character")
)

// Value decoding errors.
var (
	// ErrNameRestriction indicates an empty name or a name starting with the
	// reserved '_' prefix.
	ErrNameRestriction = errors.New("naming restriction was not met")

	// ErrIntegerNotParsed indicates a value that is not a valid i-suffixed
	// signed 64-bit integer literal.
	ErrIntegerNotParsed = errors.New("failed to parse Integer value")

	// ErrUIntegerNotParsed indicates a value that is not a valid u-suffixed
	// unsigned 64-bit integer literal.
	ErrUIntegerNotParsed = errors.New("failed to parse UInteger value")

	// ErrBooleanNotParsed indicates a value outside the accepted boolean
	// literal spellings.
	ErrBooleanNotParsed = errors.New("failed to parse Boolean value")

	// ErrTimestampNotParsed indicates a trailing segment that is not a valid
	// signed 64-bit integer timestamp.
	ErrTimestampNotParsed = errors.New("failed to parse timestamp")

	// ErrBadValue indicates a field value that matches none of the recognized
	// value types.
	ErrBadValue = errors.New("no recognized value type")

	// ErrTimestampOutOfRange indicates a calendar instant that cannot be
	// represented as a 64-bit nanosecond count.
	ErrTimestampOutOfRange = errors.New("timestamp out of nanosecond range")
)

// Batch container errors.
var (
	// ErrInvalidHeader indicates a batch payload too short to hold a header
	// or carrying a wrong magic number.
	ErrInvalidHeader = errors.New("invalid batch header")

	// ErrInvalidCompression indicates an unknown compression type in a batch
	// header or option.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrPayloadSizeMismatch indicates a decompressed batch body whose size
	// disagrees with the header.
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")

	// ErrChecksumMismatch indicates a batch body whose checksum disagrees
	// with the header.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrLineCountMismatch indicates a batch body holding a different number
	// of lines than the header claims.
	ErrLineCountMismatch = errors.New("line count mismatch")

	// ErrEmptyBatch indicates an attempt to finish an encoder with no lines.
	ErrEmptyBatch = errors.New("batch contains no lines")
)
