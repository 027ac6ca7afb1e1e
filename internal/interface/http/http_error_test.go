package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/course-recommender/pkg/errors"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{apperrors.CodeNotTrained, http.StatusServiceUnavailable},
		{apperrors.CodeInvalidInput, http.StatusBadRequest},
		{apperrors.CodeInvalidUser, http.StatusBadRequest},
		{apperrors.CodeEmptyVocabulary, http.StatusInternalServerError},
		{apperrors.CodeRepository, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tc := range tests {
		require.Equal(t, tc.status, statusForCode(tc.code), "code %q", tc.code)
	}
}

func TestFromAppErrorKeepsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("ready: %w", apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil))
	httpErr := fromAppError(err)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, apperrors.CodeInvalidInput, httpErr.Code)
	require.Equal(t, "user id must be positive", httpErr.Message)
	require.ErrorIs(t, httpErr.Err, err)
}

func TestFromAppErrorFallsBackToInternal(t *testing.T) {
	httpErr := fromAppError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, "internal_error", httpErr.Code)
}
