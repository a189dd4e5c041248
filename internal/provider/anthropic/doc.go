// Package anthropic provides an Anthropic Claude chat client implementing [scribe.ChatProvider].
//
// This package wraps the official Anthropic Go SDK. System messages are sent
// through the dedicated system parameter; user and assistant messages become
// text blocks.
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	resp, err := client.Chat(ctx, []scribe.Message{
//	    {Role: scribe.RoleUser, Content: "Explain pour-over brewing briefly."},
//	}, scribe.WithTemperature(0.9))
//
// Set a default model at client creation:
//
//	client := anthropic.New(apiKey, anthropic.WithModel("claude-haiku-4-5"))
package anthropic
