package model

import (
	"fmt"

	ai "github.com/spetersoncode/scribe"
)

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
}

// New creates a model reference for an arbitrary model identifier.
func New(provider ai.Provider, id string) ChatModel {
	return ChatModel{id: id, provider: provider}
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Anthropic Claude Models
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: ai.ProviderAnthropic}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT Models
var (
	GPT52    = ChatModel{id: "gpt-5.2", provider: ai.ProviderOpenAI}
	GPT51    = ChatModel{id: "gpt-5.1", provider: ai.ProviderOpenAI}
	GPT5     = ChatModel{id: "gpt-5", provider: ai.ProviderOpenAI}
	GPT5Mini = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI}
	GPT5Nano = ChatModel{id: "gpt-5-nano", provider: ai.ProviderOpenAI}
	GPT41    = ChatModel{id: "gpt-4.1", provider: ai.ProviderOpenAI}
	GPT4o    = ChatModel{id: "gpt-4o", provider: ai.ProviderOpenAI}

	// DefaultGPTModel is the default OpenAI model. The gpt-5 family only
	// accepts the default sampling temperature, so it cannot honour the
	// separate title and body temperatures.
	DefaultGPTModel = GPT41
)

// Google Gemini Models
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// DefaultFor returns the recommended model for a provider.
func DefaultFor(provider ai.Provider) (ChatModel, error) {
	switch provider {
	case ai.ProviderAnthropic:
		return DefaultClaudeModel, nil
	case ai.ProviderOpenAI:
		return DefaultGPTModel, nil
	case ai.ProviderGoogle:
		return DefaultGeminiModel, nil
	default:
		return ChatModel{}, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// Parse resolves a model for a provider. An empty id selects the provider default.
func Parse(provider ai.Provider, id string) (ChatModel, error) {
	if id == "" {
		return DefaultFor(provider)
	}
	if _, err := DefaultFor(provider); err != nil {
		return ChatModel{}, err
	}
	return New(provider, id), nil
}
