package textgen

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	content  string
	err      error
	messages []ai.Message
	options  *ai.Options
}

func (m *mockClient) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	m.messages = messages
	m.options = ai.ApplyOptions(opts...)
	if m.err != nil {
		return nil, m.err
	}
	return &ai.Response{Content: m.content}, nil
}

func TestChatGenerator_Generate(t *testing.T) {
	mock := &mockClient{content: "5 Tips for the Perfect Cup"}
	gen := NewChatGenerator(mock, Config{Temperature: 0.7})

	out, err := gen.Generate(context.Background(), "title please")

	require.NoError(t, err)
	assert.Equal(t, "5 Tips for the Perfect Cup", out)
	require.Len(t, mock.messages, 1)
	assert.Equal(t, ai.RoleUser, mock.messages[0].Role)
	assert.Equal(t, "title please", mock.messages[0].Content)
	require.NotNil(t, mock.options.Temperature)
	assert.Equal(t, 0.7, *mock.options.Temperature)
	assert.Nil(t, mock.options.Model)
	assert.Zero(t, mock.options.MaxTokens)
}

func TestChatGenerator_Config(t *testing.T) {
	mock := &mockClient{content: "body"}
	gen := NewChatGenerator(mock, Config{
		Temperature: 0.9,
		Model:       model.ClaudeHaiku45,
		MaxTokens:   2048,
		System:      "You are a blog writer.",
	})

	_, err := gen.Generate(context.Background(), "write")

	require.NoError(t, err)
	require.Len(t, mock.messages, 2)
	assert.Equal(t, ai.RoleSystem, mock.messages[0].Role)
	assert.Equal(t, "claude-haiku-4-5", mock.options.Model.String())
	assert.Equal(t, 2048, mock.options.MaxTokens)
	assert.Equal(t, 0.9, gen.Temperature())
	assert.Equal(t, "chat(model=claude-haiku-4-5, temperature=0.90)", gen.String())
}

func TestChatGenerator_EmptyCompletion(t *testing.T) {
	for _, content := range []string{"", "   \n"} {
		gen := NewChatGenerator(&mockClient{content: content}, Config{Temperature: 0.7})
		_, err := gen.Generate(context.Background(), "x")
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	}
}

func TestChatGenerator_ProviderError(t *testing.T) {
	providerErr := errors.New("provider unavailable")
	gen := NewChatGenerator(&mockClient{err: providerErr}, Config{})

	_, err := gen.Generate(context.Background(), "x")

	assert.ErrorIs(t, err, providerErr)
}

func TestFunc(t *testing.T) {
	var gen Generator = Func(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})

	out, err := gen.Generate(context.Background(), "hi")

	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
}
