package workflow

import (
	"context"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/textgen"
)

// StepFunc computes the messages a step contributes to the conversation.
// It must treat state as read-only. Returning no messages is allowed.
type StepFunc func(ctx context.Context, state State) ([]ai.Message, error)

// Step is a named unit of work in a workflow graph.
type Step struct {
	name string
	fn   StepFunc
}

// NewStep creates a step from a function.
func NewStep(name string, fn StepFunc) Step {
	return Step{name: name, fn: fn}
}

// Name returns the step name.
func (s Step) Name() string { return s.name }

// Invoke runs the step against state and returns its new messages.
func (s Step) Invoke(ctx context.Context, state State) ([]ai.Message, error) {
	return s.fn(ctx, state)
}

// PromptFunc renders the prompt for a generation step from the current state.
type PromptFunc func(state State) (string, error)

// LatestPrompt builds a PromptFunc that passes the latest message's content to render.
func LatestPrompt(render func(latest string) (string, error)) PromptFunc {
	return func(state State) (string, error) {
		msg, err := state.Latest()
		if err != nil {
			return "", err
		}
		return render(msg.Content)
	}
}

// NewPromptStep creates a step that asks gen for text and appends it as an
// assistant message. Prompt rendering errors are returned unchanged; failures
// from gen are returned as *GenerationError.
func NewPromptStep(name string, gen textgen.Generator, prompt PromptFunc) Step {
	return NewStep(name, func(ctx context.Context, state State) ([]ai.Message, error) {
		text, err := prompt(state)
		if err != nil {
			return nil, err
		}

		out, err := gen.Generate(ctx, text)
		if err != nil {
			return nil, &GenerationError{StepName: name, Cause: err}
		}
		return []ai.Message{ai.NewAssistantMessage(out)}, nil
	})
}
