package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCodeThroughFmtWrapping(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("train: %w", Wrap(CodeEmptyVocabulary, "no terms", base))

	require.True(t, IsCode(err, CodeEmptyVocabulary))
	require.False(t, IsCode(err, CodeInvalidUser))
	require.Equal(t, CodeEmptyVocabulary, CodeOf(err))
	require.ErrorIs(t, err, base)
	require.Contains(t, err.Error(), "no terms: boom")
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeInvalidInput, "user id must be positive", nil)
	require.Equal(t, "user id must be positive", err.Error())
	require.Empty(t, CodeOf(errors.New("plain")))
}
