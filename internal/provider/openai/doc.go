// Package openai provides an OpenAI chat client implementing [scribe.ChatProvider].
//
// It wraps the official OpenAI Go SDK. Only non-streaming chat completions are
// used; the SDK's built-in retries are switched off so a failed completion is
// reported to the caller immediately.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.WithModel("gpt-5-mini"))
//	resp, err := client.Chat(ctx, []scribe.Message{
//	    {Role: scribe.RoleUser, Content: "Suggest a blog title about coffee."},
//	}, scribe.WithTemperature(0.7))
package openai
