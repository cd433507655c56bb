package openai

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/spetersoncode/genq"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected genq.ErrorCategory
	}{
		{"rate limit is transient", 429, genq.ErrorTransient},
		{"bad gateway is transient", 502, genq.ErrorTransient},
		{"unauthorized is permanent", 401, genq.ErrorPermanent},
		{"unprocessable is user input", 422, genq.ErrorUserInput},
		{"teapot is permanent", 418, genq.ErrorPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizeStatusCode(tt.code))
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Zero(t, parseRetryAfter(nil))
	})

	t.Run("missing header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{}}
		assert.Zero(t, parseRetryAfter(resp))
	})

	t.Run("seconds value", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"30"}}}
		assert.Equal(t, 30*time.Second, parseRetryAfter(resp))
	})

	t.Run("http date in the past", func(t *testing.T) {
		past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
		resp := &http.Response{Header: http.Header{"Retry-After": []string{past}}}
		assert.Zero(t, parseRetryAfter(resp))
	})

	t.Run("garbage header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"soon"}}}
		assert.Zero(t, parseRetryAfter(resp))
	})
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})

	t.Run("non-API error passes through", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		assert.Equal(t, cause, wrapError(cause))
	})
}
