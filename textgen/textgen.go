// Package textgen provides the text-generation capability that pipeline steps
// depend on: a prompt goes in, generated text comes out.
//
// A Generator is configured once (model, sampling temperature, token limit)
// and then shared read-only by any number of steps and runs.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/chat"
)

// ErrEmptyCompletion is returned when the provider answers with no text.
var ErrEmptyCompletion = errors.New("textgen: empty completion")

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts an ordinary function to the Generator interface.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Config describes how a ChatGenerator samples from its model.
type Config struct {
	// Temperature is the sampling temperature sent with every request.
	Temperature float64

	// Model overrides the chat client's default model when non-nil.
	Model ai.Model

	// MaxTokens limits the completion length when positive.
	MaxTokens int

	// System is an optional instruction sent ahead of the prompt.
	System string
}

// ChatGenerator generates text through a chat client.
type ChatGenerator struct {
	client chat.Client
	cfg    Config
	opts   []ai.Option
}

// NewChatGenerator creates a generator bound to a chat client and sampling config.
func NewChatGenerator(c chat.Client, cfg Config) *ChatGenerator {
	opts := []ai.Option{ai.WithTemperature(cfg.Temperature)}
	if cfg.Model != nil {
		opts = append(opts, ai.WithModel(cfg.Model))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, ai.WithMaxTokens(cfg.MaxTokens))
	}
	return &ChatGenerator{client: c, cfg: cfg, opts: opts}
}

// Temperature returns the configured sampling temperature.
func (g *ChatGenerator) Temperature() float64 { return g.cfg.Temperature }

// Generate sends the prompt as a single user message and returns the reply text.
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	msgs := make([]ai.Message, 0, 2)
	if g.cfg.System != "" {
		msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: g.cfg.System})
	}
	msgs = append(msgs, ai.Message{Role: ai.RoleUser, Content: prompt})

	resp, err := g.client.Chat(ctx, msgs, g.opts...)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Content, nil
}

// String describes the generator for logs.
func (g *ChatGenerator) String() string {
	model := "default"
	if g.cfg.Model != nil {
		model = g.cfg.Model.String()
	}
	return fmt.Sprintf("chat(model=%s, temperature=%.2f)", model, g.cfg.Temperature)
}

var _ Generator = (*ChatGenerator)(nil)
var _ Generator = Func(nil)
