package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/blog"
	"github.com/spetersoncode/scribe/internal/logging"
	"github.com/spetersoncode/scribe/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubApp(cfg *Config) *app {
	return &app{
		cfg:    cfg,
		logger: logging.NewNop(),
		build: func(cfg *Config, logger *slog.Logger) (*blog.Registry, error) {
			return newRegistry(cfg, blog.Generators{
				Title: textgen.Func(func(ctx context.Context, prompt string) (string, error) {
					return "5 Tips for the Perfect Cup", nil
				}),
				Body: textgen.Func(func(ctx context.Context, prompt string) (string, error) {
					return "<body text>", nil
				}),
			}, logger)
		},
	}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWriteCmd(t *testing.T) {
	a := stubApp(&Config{})

	t.Run("prints body", func(t *testing.T) {
		out, err := run(t, a, "write", "coffee", "brewing")
		require.NoError(t, err)
		assert.Equal(t, "<body text>\n", out)
	})

	t.Run("shows title", func(t *testing.T) {
		out, err := run(t, a, "write", "--variant", "alternative", "--show-title", "coffee brewing")
		require.NoError(t, err)
		assert.Equal(t, "5 Tips for the Perfect Cup\n\n<body text>\n", out)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := run(t, a, "write", "--variant", "nope", "coffee")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alternative, default")
	})

	t.Run("requires topic", func(t *testing.T) {
		_, err := run(t, a, "write")
		assert.Error(t, err)
	})
}

func TestWriteCmd_ValidatesConfig(t *testing.T) {
	a := &app{cfg: &Config{}, logger: logging.NewNop(), build: buildRegistry}

	_, err := run(t, a, "write", "coffee")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRIBE_PROVIDER")
}

func TestGraphCmd(t *testing.T) {
	// No provider is configured; graph rendering must not need one.
	a := &app{cfg: &Config{}, logger: logging.NewNop(), build: buildRegistry}

	out, err := run(t, a, "graph")

	require.NoError(t, err)
	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, `s0["title_generator"]`)
	assert.Contains(t, out, `s1["blog_writer"]`)
	assert.Contains(t, out, "__start__ --> s0")
	assert.Contains(t, out, "s0 --> s1")
	assert.Contains(t, out, "s1 --> __end__")
}

func TestGraphCmd_CustomTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`variants:
  punchy:
    title: "Punchy title for {{.Topic}}"
    body: "Short post titled {{.Title}}"
`), 0o600))
	a := stubApp(&Config{TemplatesPath: path})

	_, err := run(t, a, "graph", "--variant", "punchy")
	require.NoError(t, err)

	out, err := run(t, a, "write", "--variant", "punchy", "tea")
	require.NoError(t, err)
	assert.Equal(t, "<body text>\n", out)
}

func TestWriteCmd_ReportsProviderFailure(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		expected string
	}{
		{
			name:     "transient",
			cause:    ai.NewProviderError(ai.ProviderAnthropic, http.StatusTooManyRequests, 12*time.Second, errors.New("slow down")),
			expected: "title_generator failed (anthropic, transient, status 429, retry after 12s), try again later: ",
		},
		{
			name:     "permanent",
			cause:    ai.NewProviderError(ai.ProviderOpenAI, http.StatusUnauthorized, 0, errors.New("bad key")),
			expected: "title_generator failed (openai, permanent, status 401): ",
		},
		{
			name:     "no status",
			cause:    textgen.ErrEmptyCompletion,
			expected: "title_generator failed: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{
				cfg:    &Config{},
				logger: logging.NewNop(),
				build: func(cfg *Config, logger *slog.Logger) (*blog.Registry, error) {
					failing := textgen.Func(func(ctx context.Context, prompt string) (string, error) {
						return "", tt.cause
					})
					return newRegistry(cfg, blog.Generators{Title: failing, Body: failing}, logger)
				},
			}

			_, err := run(t, a, "write", "coffee")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
