package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/genq"
)

// wrapError wraps an Anthropic SDK error with genq error categorization.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		// Not an API error, return as-is (likely network error, handled by heuristics)
		return err
	}

	code := apiErr.StatusCode
	msg := err.Error()

	switch categorizeStatusCode(code) {
	case genq.ErrorTransient:
		return genq.NewTransientError(msg, code, err)
	case genq.ErrorPermanent:
		return genq.NewPermanentError(msg, code, err)
	case genq.ErrorUserInput:
		return genq.NewUserInputError(msg, code, err)
	default:
		return err
	}
}

// categorizeStatusCode determines the error category from an HTTP status code.
// Anthropic uses 529 for overloaded, which falls in the transient range
// alongside the usual 429 and 5xx.
func categorizeStatusCode(code int) genq.ErrorCategory {
	switch {
	case code == 429:
		return genq.ErrorTransient
	case code >= 500 && code < 600:
		return genq.ErrorTransient
	case code == 401 || code == 403:
		return genq.ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return genq.ErrorUserInput
	default:
		return genq.ErrorPermanent
	}
}
