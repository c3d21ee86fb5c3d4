package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fluxwire/lineproto/errs"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Measurement
	}{
		{"plain", "cpu", "cpu"},
		{"escaped space", `cpu\ total`, "cpu total"},
		{"escaped comma", `a\,b`, "a,b"},
		{"equals is ordinary", "a=b", "a=b"},
		{"quote is ordinary", `"hi"`, `"hi"`},
		{"stray escape tolerated", `a\b`, `a\b`},
		{"underscore inside", "cpu_total", "cpu_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeasurement(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMeasurement_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", errs.ErrNameRestriction},
		{"reserved prefix", "_internal", errs.ErrNameRestriction},
		{"bare space", "cpu total", errs.ErrUnescapedSpecialCharacter},
		{"bare comma", "a,b", errs.ErrUnescapedSpecialCharacter},
		{"trailing escape", `cpu\`, errs.ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMeasurement(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewMeasurement(t *testing.T) {
	m, err := NewMeasurement("cpu total")
	require.NoError(t, err)
	require.Equal(t, Measurement("cpu total"), m)
	require.Equal(t, `cpu\ total`, m.String())

	_, err = NewMeasurement("_reserved")
	require.ErrorIs(t, err, errs.ErrNameRestriction)

	_, err = NewMeasurement("")
	require.ErrorIs(t, err, errs.ErrNameRestriction)
}

func TestParseKey(t *testing.T) {
	got, err := ParseKey(`host\ name`)
	require.NoError(t, err)
	require.Equal(t, Key("host name"), got)

	got, err = ParseKey(`a\=b`)
	require.NoError(t, err)
	require.Equal(t, Key("a=b"), got)

	_, err = ParseKey("a=b")
	require.ErrorIs(t, err, errs.ErrUnescapedSpecialCharacter)

	_, err = ParseKey("_hidden")
	require.ErrorIs(t, err, errs.ErrNameRestriction)

	_, err = ParseKey("")
	require.ErrorIs(t, err, errs.ErrNameRestriction)
}

func TestKey_String(t *testing.T) {
	k, err := NewKey("a=b, c")
	require.NoError(t, err)
	require.Equal(t, `a\=b\,\ c`, k.String())
}

// Measurement escaping leaves '=' alone while key escaping does not.
func TestNameSpecials_Differ(t *testing.T) {
	m, err := NewMeasurement("x=y")
	require.NoError(t, err)
	require.Equal(t, "x=y", m.String())

	k, err := NewKey("x=y")
	require.NoError(t, err)
	require.Equal(t, `x\=y`, k.String())
}

func TestName_RoundTrip(t *testing.T) {
	for _, literal := range []string{"cpu", "cpu total", "a,b=c", `back\slash`, "💀 dead"} {
		m, err := NewMeasurement(literal)
		require.NoError(t, err)
		back, err := ParseMeasurement(m.String())
		require.NoError(t, err)
		require.Equal(t, m, back)

		k, err := NewKey(literal)
		require.NoError(t, err)
		kback, err := ParseKey(k.String())
		require.NoError(t, err)
		require.Equal(t, k, kback)
	}
}
