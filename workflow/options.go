package workflow

import (
	"context"
	"log/slog"
	"time"

	ai "github.com/spetersoncode/scribe"
)

// StepReport describes a step that has just completed and been merged.
type StepReport struct {
	StepName string
	// Index is the step's position in execution order, starting at 0.
	Index    int
	Added    []ai.Message
	Duration time.Duration
	// State is the conversation after the step's messages were appended.
	State State
}

// StepCompleteFunc is called after each step's output has been merged.
type StepCompleteFunc func(ctx context.Context, report StepReport)

// Options contains configuration for workflow execution.
type Options struct {
	// Timeout sets a deadline for the entire run. Zero means none.
	Timeout time.Duration

	// StepTimeout bounds each individual step. Zero means none.
	StepTimeout time.Duration

	// OnStepComplete is called after each successful step.
	OnStepComplete StepCompleteFunc

	// Logger receives step lifecycle records. Nil disables logging.
	Logger *slog.Logger
}

// Option is a functional option for workflow configuration.
type Option func(*Options)

// WithTimeout sets the overall run timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithStepTimeout sets the timeout for each step.
func WithStepTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.StepTimeout = d
	}
}

// WithOnStepComplete registers a callback invoked after each step.
func WithOnStepComplete(fn StepCompleteFunc) Option {
	return func(o *Options) {
		o.OnStepComplete = fn
	}
}

// WithLogger sets the logger used for step lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// ApplyOptions applies functional options with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		StepTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
