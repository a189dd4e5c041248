package openai

import (
	"errors"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/internal/provider/httperr"
)

// wrapError wraps an OpenAI SDK error with status-code categorization.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Not an API error (network failure, context cancellation)
		return err
	}

	return ai.NewProviderError(ai.ProviderOpenAI, apiErr.StatusCode, httperr.RetryAfter(apiErr.Response), err)
}
