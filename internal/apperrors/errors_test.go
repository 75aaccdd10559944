package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found wrapped", fmt.Errorf("find invoice: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"transition", fmt.Errorf("x: %w", apperrors.ErrInvalidTransition), http.StatusBadRequest},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"refresh expired", apperrors.ErrRefreshTokenExpired, http.StatusUnauthorized},
		{"not configured", apperrors.ErrNotConfigured, http.StatusPreconditionFailed},
		{"app error code wins", apperrors.NewConflictError("number taken"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("handler: %w", apperrors.NewBadRequestError("items required"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "items required")
}
