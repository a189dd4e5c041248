package scribe

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderError_Category(t *testing.T) {
	tests := []struct {
		status   int
		expected ErrorCategory
	}{
		{http.StatusTooManyRequests, ErrorTransient},
		{http.StatusInternalServerError, ErrorTransient},
		{529, ErrorTransient},
		{http.StatusUnauthorized, ErrorPermanent},
		{http.StatusForbidden, ErrorPermanent},
		{http.StatusBadRequest, ErrorUserInput},
		{http.StatusNotFound, ErrorUserInput},
		{http.StatusUnprocessableEntity, ErrorUserInput},
		{http.StatusTeapot, ErrorPermanent},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := NewProviderError(ProviderOpenAI, tt.status, 0, errors.New("x"))
			assert.Equal(t, tt.expected, err.Category)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestNewProviderError_RetryAfterForcesTransient(t *testing.T) {
	err := NewProviderError(ProviderAnthropic, http.StatusForbidden, 3*time.Second, nil)

	assert.Equal(t, ErrorTransient, err.Category)
	assert.Equal(t, 3*time.Second, err.RetryAfter)
}

func TestProviderError_Wrapping(t *testing.T) {
	cause := errors.New("overloaded")
	err := fmt.Errorf("step failed: %w", NewProviderError(ProviderGoogle, 503, 0, cause))

	assert.Equal(t, "step failed: google: overloaded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsTransient(err))

	pe, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, ProviderGoogle, pe.Provider)
	assert.Equal(t, 503, pe.Status)
}

func TestAsProviderError_PlainError(t *testing.T) {
	err := errors.New("plain")

	_, ok := AsProviderError(err)
	assert.False(t, ok)
	assert.False(t, IsTransient(err))
}
