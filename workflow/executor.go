package workflow

import (
	"context"
	"time"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/internal/logging"
)

// Executor runs compiled graphs. An Executor holds only configuration and
// may be shared between goroutines.
type Executor struct {
	opts *Options
}

// NewExecutor creates an executor with the given options.
func NewExecutor(opts ...Option) *Executor {
	o := ApplyOptions(opts...)
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	return &Executor{opts: o}
}

// Run executes the compiled steps in order, appending each step's messages to
// the state before the next step starts.
//
// The first failing step stops the run. Its error is returned exactly as the
// step produced it, together with a zero State; no partial result is returned.
func (e *Executor) Run(ctx context.Context, compiled *Compiled, initial State) (State, error) {
	if compiled == nil {
		return State{}, ErrNotCompiled
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	log := e.opts.Logger.With("workflow", compiled.Name())
	state := initial

	for i, step := range compiled.steps {
		if err := ctx.Err(); err != nil {
			log.WarnContext(ctx, "run aborted", "step", step.Name(), "error", err)
			return State{}, err
		}

		start := time.Now()
		log.DebugContext(ctx, "step started", "step", step.Name(), "messages", state.Len())

		added, err := e.invoke(ctx, step, state)
		if err != nil {
			log.WarnContext(ctx, "step failed",
				"step", step.Name(),
				"duration", time.Since(start),
				"error", err,
			)
			return State{}, err
		}

		state = state.Append(added...)
		duration := time.Since(start)
		log.InfoContext(ctx, "step completed",
			"step", step.Name(),
			"added", len(added),
			"duration", duration,
		)

		if e.opts.OnStepComplete != nil {
			e.opts.OnStepComplete(ctx, StepReport{
				StepName: step.Name(),
				Index:    i,
				Added:    added,
				Duration: duration,
				State:    state,
			})
		}
	}

	return state, nil
}

func (e *Executor) invoke(ctx context.Context, step Step, state State) ([]ai.Message, error) {
	if e.opts.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.StepTimeout)
		defer cancel()
	}
	return step.Invoke(ctx, state)
}

// Run executes a compiled graph with a one-off executor.
func Run(ctx context.Context, compiled *Compiled, initial State, opts ...Option) (State, error) {
	return NewExecutor(opts...).Run(ctx, compiled, initial)
}
