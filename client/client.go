package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/internal/logging"
	"github.com/spetersoncode/scribe/internal/provider/anthropic"
	"github.com/spetersoncode/scribe/internal/provider/google"
	"github.com/spetersoncode/scribe/internal/provider/openai"
)

// APIKeys holds API keys for different providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Google    string
}

// Config holds configuration for creating a unified client.
type Config struct {
	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// Default is the chat model used when a request does not name one.
	// The model's provider determines which backend is used.
	Default ai.Model

	// Logger receives one record per request. Defaults to a no-op logger.
	Logger *slog.Logger
}

// ErrMissingAPIKey is returned when a model is used but no API key
// is configured for that model's provider.
type ErrMissingAPIKey struct {
	Provider string
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrNoModel is returned when no model is specified and no default is configured.
type ErrNoModel struct {
	Operation string
}

func (e *ErrNoModel) Error() string {
	return fmt.Sprintf("no model specified for %s: set client.Config Default or use scribe.WithModel()", e.Operation)
}

// ErrUnsupportedProvider is returned when a model names a provider the client cannot serve.
type ErrUnsupportedProvider struct {
	Provider ai.Provider
}

func (e *ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.Provider)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultTemperature sets the default temperature for chat requests.
// Per-request options override this default.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithTemperature(t))
	}
}

// WithDefaultMaxTokens sets the default max tokens for chat requests.
// Per-request options override this default.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithMaxTokens(n))
	}
}

// WithDefaultChatOptions sets default options for all chat requests.
// Per-request options override these defaults.
func WithDefaultChatOptions(opts ...ai.Option) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, opts...)
	}
}

// WithChatProvider installs a ready-made backend for a provider, bypassing
// lazy SDK initialisation. Useful for proxies and tests.
func WithChatProvider(provider ai.Provider, cp ai.ChatProvider) ClientOption {
	return func(c *Client) {
		c.providers[provider] = cp
	}
}

// Client routes chat requests to the provider that serves the requested model.
// Provider clients are lazily initialized when first needed.
type Client struct {
	apiKeys         APIKeys
	defaultModel    ai.Model
	logger          *slog.Logger
	defaultChatOpts []ai.Option

	mu        sync.RWMutex
	providers map[ai.Provider]ai.ChatProvider
	initErrs  map[ai.Provider]error
}

// New creates a unified client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	c := &Client{
		apiKeys:      cfg.APIKeys,
		defaultModel: cfg.Default,
		logger:       logger,
		providers:    make(map[ai.Provider]ai.ChatProvider),
		initErrs:     make(map[ai.Provider]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getChatProvider returns the backend for the given model, initializing it if needed.
func (c *Client) getChatProvider(ctx context.Context, model ai.Model) (ai.ChatProvider, error) {
	provider := model.Provider()

	c.mu.RLock()
	if cp, ok := c.providers[provider]; ok {
		c.mu.RUnlock()
		return cp, nil
	}
	if err, ok := c.initErrs[provider]; ok {
		c.mu.RUnlock()
		return nil, err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if cp, ok := c.providers[provider]; ok {
		return cp, nil
	}
	if err, ok := c.initErrs[provider]; ok {
		return nil, err
	}

	cp, err := c.newChatProvider(ctx, model)
	if err != nil {
		return nil, err
	}
	c.providers[provider] = cp
	return cp, nil
}

func (c *Client) newChatProvider(ctx context.Context, model ai.Model) (ai.ChatProvider, error) {
	provider := model.Provider()

	switch provider {
	case ai.ProviderAnthropic:
		if c.apiKeys.Anthropic == "" {
			return nil, &ErrMissingAPIKey{Provider: provider.String(), Model: model.String()}
		}
		return anthropic.New(c.apiKeys.Anthropic), nil
	case ai.ProviderOpenAI:
		if c.apiKeys.OpenAI == "" {
			return nil, &ErrMissingAPIKey{Provider: provider.String(), Model: model.String()}
		}
		return openai.New(c.apiKeys.OpenAI), nil
	case ai.ProviderGoogle:
		if c.apiKeys.Google == "" {
			return nil, &ErrMissingAPIKey{Provider: provider.String(), Model: model.String()}
		}
		cp, err := google.New(ctx, c.apiKeys.Google)
		if err != nil {
			// Remember the failure so every later request reports the same cause.
			c.initErrs[provider] = fmt.Errorf("failed to initialize Google client: %w", err)
			return nil, c.initErrs[provider]
		}
		return cp, nil
	default:
		return nil, &ErrUnsupportedProvider{Provider: provider}
	}
}

// Chat sends a conversation and returns a complete response.
// The model can be specified via WithModel option, or the default model is used.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	// Prepend default options so per-request options override them
	merged := make([]ai.Option, 0, len(c.defaultChatOpts)+len(opts)+1)
	merged = append(merged, c.defaultChatOpts...)
	merged = append(merged, opts...)
	options := ai.ApplyOptions(merged...)

	model := options.Model
	if model == nil {
		model = c.defaultModel
	}
	if model == nil {
		return nil, &ErrNoModel{Operation: "chat"}
	}

	chatProvider, err := c.getChatProvider(ctx, model)
	if err != nil {
		return nil, err
	}

	if options.Model == nil {
		merged = append(merged, ai.WithModel(model))
	}

	start := time.Now()
	c.logger.DebugContext(ctx, "chat request started",
		"provider", model.Provider(),
		"model", model.String(),
		"messages", len(messages),
	)

	resp, err := chatProvider.Chat(ctx, messages, merged...)
	if err != nil {
		c.logger.WarnContext(ctx, "chat request failed",
			"provider", model.Provider(),
			"model", model.String(),
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "chat request finished",
		"provider", model.Provider(),
		"model", model.String(),
		"duration", time.Since(start),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
	return resp, nil
}

var _ ai.ChatProvider = (*Client)(nil)
