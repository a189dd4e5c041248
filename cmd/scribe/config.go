package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	LogLevel string // debug, info, warn, error

	// Provider selection
	Provider string
	Model    string

	// API Keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string

	// Generation
	TitleTemperature float64
	BodyTemperature  float64
	MaxTokens        int
	StepTimeout      time.Duration

	// TemplatesPath optionally names a YAML file of extra prompt variants.
	TemplatesPath string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() *Config {
	godotenv.Load() // Load .env file if present

	return &Config{
		LogLevel:         getEnvOrDefault("SCRIBE_LOG_LEVEL", "info"),
		Provider:         os.Getenv("SCRIBE_PROVIDER"),
		Model:            os.Getenv("SCRIBE_MODEL"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		GoogleKey:        os.Getenv("GOOGLE_API_KEY"),
		TitleTemperature: getEnvFloatOrDefault("SCRIBE_TITLE_TEMPERATURE", 0.7),
		BodyTemperature:  getEnvFloatOrDefault("SCRIBE_BODY_TEMPERATURE", 0.9),
		MaxTokens:        getEnvIntOrDefault("SCRIBE_MAX_TOKENS", 0),
		StepTimeout:      getEnvDurationOrDefault("SCRIBE_STEP_TIMEOUT", 2*time.Minute),
		TemplatesPath:    os.Getenv("SCRIBE_TEMPLATES"),
	}
}

// Validate checks that the configuration can drive a real provider.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("SCRIBE_PROVIDER is required (anthropic, openai, or google)")
	}

	maxTemperature := 2.0
	switch c.Provider {
	case "anthropic":
		maxTemperature = 1.0
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case "google":
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", c.Provider)
	}

	if err := checkTemperature("SCRIBE_TITLE_TEMPERATURE", c.TitleTemperature, c.Provider, maxTemperature); err != nil {
		return err
	}
	if err := checkTemperature("SCRIBE_BODY_TEMPERATURE", c.BodyTemperature, c.Provider, maxTemperature); err != nil {
		return err
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("SCRIBE_MAX_TOKENS must not be negative")
	}

	return nil
}

// checkTemperature enforces the provider's accepted range: Anthropic
// allows [0, 1], OpenAI and Google [0, 2].
func checkTemperature(key string, t float64, provider string, limit float64) error {
	if t < 0 || t > limit {
		return fmt.Errorf("%s must be between 0 and %g for %s provider, got %g", key, limit, provider, t)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
