package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(CodeProviderError, "forecast unavailable", io.ErrUnexpectedEOF)
	require.EqualError(t, err, "forecast unavailable: unexpected EOF")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.True(t, IsCode(err, CodeProviderError))
	require.False(t, IsCode(err, CodeNotFound))
}

func TestCodeOfWrappedChain(t *testing.T) {
	inner := Wrap(CodeNotFound, "location not found", nil)
	outer := fmt.Errorf("remove location: %w", inner)
	require.Equal(t, CodeNotFound, CodeOf(outer))
	require.Equal(t, "", CodeOf(io.EOF))
}
