package google

import (
	"errors"

	ai "github.com/spetersoncode/scribe"
	"google.golang.org/genai"
)

// wrapError wraps a Google GenAI error with status-code categorization.
// genai.APIError does not expose headers, so no Retry-After hint is available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	return ai.NewProviderError(ai.ProviderGoogle, apiErr.Code, 0, err)
}
