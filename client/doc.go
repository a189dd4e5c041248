// Package client provides a unified multi-provider chat client.
//
// The Client wraps provider-specific implementations and provides:
//
//   - Model-centric routing: models know their provider; switching is automatic
//   - Multi-provider support: configure all providers at once, use any model
//   - Default request options such as temperature, overridable per request
//   - Structured request logging via log/slog
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
//	        OpenAI:    os.Getenv("OPENAI_API_KEY"),
//	    },
//	    Default: model.ClaudeSonnet45,
//	})
//
//	resp, err := c.Chat(ctx, []scribe.Message{
//	    {Role: scribe.RoleUser, Content: "Hello!"},
//	})
//
// # Model-Centric Routing
//
//	// Uses default model (routes to Anthropic)
//	resp, _ := c.Chat(ctx, messages)
//
//	// Override with GPT-5.2 (routes to OpenAI)
//	resp, _ := c.Chat(ctx, messages, scribe.WithModel(model.GPT52))
//
// Requests are sent once. The provider SDKs' own retry loops are disabled, so
// a failure is returned to the caller as a categorized [scribe.Error].
package client
