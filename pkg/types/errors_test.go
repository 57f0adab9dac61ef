package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := Errorf(ErrKindTruncated, "nk at 0x%X: need %d bytes", 0x1020, 76)
	require.ErrorIs(t, err, ErrTruncated)
	require.NotErrorIs(t, err, ErrMalformedRecord)

	wrapped := fmt.Errorf("descend %q: %w", "Control", err)
	require.ErrorIs(t, wrapped, ErrTruncated)
	require.Equal(t, ErrKindTruncated, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("short read")
	err := Wrap(ErrKindTruncated, "value data", cause)
	require.Equal(t, "value data: short read", err.Error())
	require.ErrorIs(t, err, cause)

	require.Equal(t, "subkey not found", (&Error{Kind: ErrKindSubkeyNotFound}).Error())
}

func TestKindOfForeignError(t *testing.T) {
	require.Equal(t, ErrKindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, ErrKindUnknown, KindOf(nil))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrSubkeyNotFound, true},
		{ErrValueNotFound, true},
		{fmt.Errorf("lsa: %w", ErrValueListAbsent), true},
		{ErrMalformedRecord, false},
		{ErrTruncated, false},
		{ErrUnsupportedListType, false},
		{errors.New("io"), false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			require.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestErrKindString(t *testing.T) {
	require.Equal(t, "unsupported list type", ErrKindUnsupportedListType.String())
	require.Equal(t, "kind(99)", ErrKind(99).String())
}
