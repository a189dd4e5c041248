package main

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/blog"
	"github.com/spetersoncode/scribe/client"
	"github.com/spetersoncode/scribe/model"
	"github.com/spetersoncode/scribe/textgen"
	"github.com/spetersoncode/scribe/workflow"
)

// errGraphOnly is returned by the placeholder generators used to render
// graphs without provider credentials.
var errGraphOnly = errors.New("generation is disabled for graph inspection")

// variants returns the built-in variants merged with any loaded from TemplatesPath.
func (c *Config) variants() (map[string]blog.Templates, error) {
	v := blog.Variants()
	if c.TemplatesPath == "" {
		return v, nil
	}
	loaded, err := blog.LoadTemplates(c.TemplatesPath)
	if err != nil {
		return nil, err
	}
	maps.Copy(v, loaded)
	return v, nil
}

// buildRegistry wires the configured provider into one agent per variant.
// The title and body steps get their own generators so their temperatures
// can differ.
func buildRegistry(cfg *Config, logger *slog.Logger) (*blog.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := model.Parse(ai.Provider(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}

	c := client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: cfg.AnthropicKey,
			OpenAI:    cfg.OpenAIKey,
			Google:    cfg.GoogleKey,
		},
		Default: m,
		Logger:  logger,
	})

	gens := blog.Generators{
		Title: textgen.NewChatGenerator(c, textgen.Config{
			Temperature: cfg.TitleTemperature,
			MaxTokens:   cfg.MaxTokens,
		}),
		Body: textgen.NewChatGenerator(c, textgen.Config{
			Temperature: cfg.BodyTemperature,
			MaxTokens:   cfg.MaxTokens,
		}),
	}
	logger.Debug("generators configured",
		"model", m.String(),
		"title", gens.Title,
		"body", gens.Body,
	)

	return newRegistry(cfg, gens, logger)
}

// buildGraphRegistry compiles every variant without touching a provider.
func buildGraphRegistry(cfg *Config, logger *slog.Logger) (*blog.Registry, error) {
	disabled := textgen.Func(func(ctx context.Context, prompt string) (string, error) {
		return "", errGraphOnly
	})
	return newRegistry(cfg, blog.Generators{Title: disabled, Body: disabled}, logger)
}

func newRegistry(cfg *Config, gens blog.Generators, logger *slog.Logger) (*blog.Registry, error) {
	variants, err := cfg.variants()
	if err != nil {
		return nil, err
	}
	return blog.Build(variants, gens,
		workflow.WithStepTimeout(cfg.StepTimeout),
		workflow.WithLogger(logger),
	)
}
