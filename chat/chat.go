// Package chat provides the canonical chat Client interface.
//
// This package exists so textgen, workflow and tests can depend on a chat
// capability without importing the concrete multi-provider client.
// The [github.com/spetersoncode/scribe/client.Client] type implements this interface.
package chat

import (
	"context"

	ai "github.com/spetersoncode/scribe"
)

// Client defines the interface for high-level chat clients.
type Client interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error)
}
