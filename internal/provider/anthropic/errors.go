package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/internal/provider/httperr"
)

// wrapError wraps an Anthropic SDK error with status-code categorization.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	return ai.NewProviderError(ai.ProviderAnthropic, apiErr.StatusCode, httperr.RetryAfter(apiErr.Response), err)
}
