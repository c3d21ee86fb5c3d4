package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fluxwire/lineproto/errs"
)

func TestParseBoolean(t *testing.T) {
	for _, raw := range []string{"t", "T", "true", "True", "TRUE"} {
		got, err := ParseBoolean(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, Boolean(true), got)
	}

	for _, raw := range []string{"f", "F", "false", "False", "FALSE"} {
		got, err := ParseBoolean(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, Boolean(false), got)
	}

	for _, raw := range []string{"", "tRuE", "yes", "0", "1", "truei"} {
		_, err := ParseBoolean(raw)
		require.ErrorIs(t, err, errs.ErrBooleanNotParsed, "input %q", raw)
	}
}

func TestBoolean_String(t *testing.T) {
	require.Equal(t, "true", Boolean(true).String())
	require.Equal(t, "false", Boolean(false).String())
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		want  Integer
	}{
		{"0i", 0},
		{"228i", 228},
		{"-42i", -42},
		{"9223372036854775807i", 9223372036854775807},
		{"-9223372036854775808i", -9223372036854775808},
	}

	for _, tt := range tests {
		got, err := ParseInteger(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got)
	}

	for _, raw := range []string{"", "i", "42", "42u", "4i2", "42ii", "9223372036854775808i", "4.2i", "0x10i"} {
		_, err := ParseInteger(raw)
		require.ErrorIs(t, err, errs.ErrIntegerNotParsed, "input %q", raw)
	}
}

func TestInteger_String(t *testing.T) {
	require.Equal(t, "228i", Integer(228).String())
	require.Equal(t, "-42i", Integer(-42).String())
}

func TestParseUInteger(t *testing.T) {
	tests := []struct {
		input string
		want  UInteger
	}{
		{"0u", 0},
		{"228u", 228},
		{"18446744073709551615u", 18446744073709551615},
	}

	for _, tt := range tests {
		got, err := ParseUInteger(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got)
	}

	for _, raw := range []string{"", "u", "42", "42i", "-42u", "18446744073709551616u", "4.2u"} {
		_, err := ParseUInteger(raw)
		require.ErrorIs(t, err, errs.ErrUIntegerNotParsed, "input %q", raw)
	}
}

func TestUInteger_String(t *testing.T) {
	require.Equal(t, "228u", UInteger(228).String())
	require.Equal(t, "18446744073709551615u", UInteger(18446744073709551615).String())
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("1704067200000000000")
	require.NoError(t, err)
	require.Equal(t, Timestamp(1704067200000000000), got)

	got, err = ParseTimestamp("-5")
	require.NoError(t, err)
	require.Equal(t, Timestamp(-5), got)

	for _, raw := range []string{"", "abc", "1.5", "1i", "9223372036854775808"} {
		_, err := ParseTimestamp(raw)
		require.ErrorIs(t, err, errs.ErrTimestampNotParsed, "input %q", raw)
	}
}

func TestTimestamp_Time(t *testing.T) {
	ts := Timestamp(1704067200000000000)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ts.Time())
	require.Equal(t, "1704067200000000000", ts.String())
}

func TestTimestampFromTime(t *testing.T) {
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts, err := TimestampFromTime(instant)
	require.NoError(t, err)
	require.Equal(t, Timestamp(1704067200000000000), ts)
	require.True(t, instant.Equal(ts.Time()))

	_, err = TimestampFromTime(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, errs.ErrTimestampOutOfRange)

	_, err = TimestampFromTime(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, errs.ErrTimestampOutOfRange)
}
