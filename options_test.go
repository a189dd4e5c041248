package scribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel string

func (m testModel) String() string     { return string(m) }
func (m testModel) Provider() Provider { return ProviderOpenAI }

func TestApplyOptions_Empty(t *testing.T) {
	opts := ApplyOptions()

	assert.Nil(t, opts.Model)
	assert.Zero(t, opts.MaxTokens)
	assert.Nil(t, opts.Temperature)
}

func TestWithModel(t *testing.T) {
	opts := ApplyOptions(WithModel(testModel("gpt-5-mini")))

	require.NotNil(t, opts.Model)
	assert.Equal(t, "gpt-5-mini", opts.Model.String())
	assert.Equal(t, ProviderOpenAI, opts.Model.Provider())
}

func TestWithMaxTokens(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		expected int
	}{
		{"sets positive value", 1000, 1000},
		{"sets zero", 0, 0},
		{"sets large value", 100000, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ApplyOptions(WithMaxTokens(tt.tokens))
			assert.Equal(t, tt.expected, opts.MaxTokens)
		})
	}
}

func TestWithTemperature(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected float64
	}{
		{"sets zero", 0.0, 0.0},
		{"sets title value", 0.7, 0.7},
		{"sets body value", 0.9, 0.9},
		{"sets max value", 2.0, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ApplyOptions(WithTemperature(tt.temp))
			require.NotNil(t, opts.Temperature)
			assert.Equal(t, tt.expected, *opts.Temperature)
		})
	}
}

func TestApplyOptions_LaterOverridesEarlier(t *testing.T) {
	opts := ApplyOptions(WithTemperature(0.7), WithTemperature(0.9))

	require.NotNil(t, opts.Temperature)
	assert.Equal(t, 0.9, *opts.Temperature)
}
