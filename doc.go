// Package scribe generates blog posts with a two-step language model pipeline:
// a title is generated for a topic, then a body is generated from that title.
//
// The root package holds the types shared by every layer: [Message], [Role],
// [Response], the [ChatProvider] interface, request [Option] values and the
// [ProviderError] returned by provider backends.
//
// # Packages
//
//   - [github.com/spetersoncode/scribe/workflow]: append-only conversation
//     state, steps, graph compilation and the executor
//   - [github.com/spetersoncode/scribe/textgen]: the prompt-in, text-out
//     generator that steps call
//   - [github.com/spetersoncode/scribe/blog]: the title_generator and
//     blog_writer pipeline and its prompt variants
//   - [github.com/spetersoncode/scribe/client]: routes chat requests to the
//     Anthropic, OpenAI or Google backend for a model
//   - [github.com/spetersoncode/scribe/model]: known chat models per provider
//   - [github.com/spetersoncode/scribe/mcp]: exposes the pipelines as MCP tools
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{Anthropic: os.Getenv("ANTHROPIC_API_KEY")},
//	    Default: model.ClaudeSonnet45,
//	})
//
//	reg, err := blog.Build(blog.Variants(), blog.Generators{
//	    Title: textgen.NewChatGenerator(c, textgen.Config{Temperature: 0.7}),
//	    Body:  textgen.NewChatGenerator(c, textgen.Config{Temperature: 0.9}),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	agent, _ := reg.Get(blog.DefaultVariant)
//	post, err := agent.Write(ctx, "coffee brewing")
//
// # Error Handling
//
// A failed provider call is returned as a [*ProviderError] classified by its
// HTTP status as transient, permanent or user input:
//
//	if pe, ok := scribe.AsProviderError(err); ok && pe.Category == scribe.ErrorTransient {
//	    // rate limit or 5xx; pe.RetryAfter holds the server's hint
//	}
//
// A failed generation inside a pipeline step arrives wrapped in a
// *workflow.GenerationError naming the step; blog.Diagnose turns it into a
// one-line summary of the step, provider, category and status.
package scribe
