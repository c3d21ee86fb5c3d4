package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	calls []string
}

func TestApply_Order(t *testing.T) {
	tgt := &target{}

	err := Apply(tgt,
		NoError(func(tg *target) { tg.calls = append(tg.calls, "first") }),
		New(func(tg *target) error {
			tg.calls = append(tg.calls, "second")
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, tgt.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	errBoom := errors.New("boom")
	tgt := &target{}

	err := Apply(tgt,
		NoError(func(tg *target) { tg.calls = append(tg.calls, "ran") }),
		New(func(*target) error { return errBoom }),
		NoError(func(tg *target) { tg.calls = append(tg.calls, "never") }),
	)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []string{"ran"}, tgt.calls)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
