package google

import (
	"errors"
	"testing"

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
		{"internal error is transient", 500, genq.ErrorTransient},
		{"service unavailable is transient", 503, genq.ErrorTransient},
		{"unauthorized is permanent", 401, genq.ErrorPermanent},
		{"forbidden is permanent", 403, genq.ErrorPermanent},
		{"bad request is user input", 400, genq.ErrorUserInput},
		{"not found is user input", 404, genq.ErrorUserInput},
		{"unknown code is permanent", 418, genq.ErrorPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizeStatusCode(tt.code))
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})

	t.Run("non-API error passes through", func(t *testing.T) {
		cause := errors.New("connection reset")
		assert.Equal(t, cause, wrapError(cause))
	})
}

func TestPricingFor(t *testing.T) {
	t.Run("known model has pricing", func(t *testing.T) {
		pricing, ok := PricingFor(Gemini25Flash)
		assert.True(t, ok)
		assert.Positive(t, pricing.InputPerMillion)
		assert.Positive(t, pricing.OutputPerMillion)
	})

	t.Run("unknown model has none", func(t *testing.T) {
		_, ok := PricingFor("gemini-experimental")
		assert.False(t, ok)
	})
}
