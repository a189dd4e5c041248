package workflow

import (
	"context"
	"errors"
)

// Termination describes how a run ended.
type Termination string

const (
	TerminationComplete  Termination = "complete"
	TerminationError     Termination = "error"
	TerminationCancelled Termination = "cancelled"
	TerminationTimeout   Termination = "timeout"
)

// Result is the outcome of a workflow run.
type Result struct {
	WorkflowName string
	// State is the final conversation. It is empty when the run failed.
	State State
	// Output is the content of the final message.
	Output      string
	Error       error
	Termination Termination
}

// Workflow pairs a compiled graph with the executor that runs it.
type Workflow struct {
	name     string
	compiled *Compiled
	executor *Executor
}

// New creates a workflow around a compiled graph. A nil graph is accepted;
// Run then fails with ErrNotCompiled.
func New(compiled *Compiled, opts ...Option) *Workflow {
	w := &Workflow{
		compiled: compiled,
		executor: NewExecutor(opts...),
	}
	if compiled != nil {
		w.name = compiled.Name()
	}
	return w
}

// Name returns the workflow name.
func (w *Workflow) Name() string { return w.name }

// Compiled returns the underlying compiled graph.
func (w *Workflow) Compiled() *Compiled { return w.compiled }

// Run executes the workflow synchronously.
func (w *Workflow) Run(ctx context.Context, state State) (*Result, error) {
	final, err := w.executor.Run(ctx, w.compiled, state)
	if err != nil {
		termination := TerminationError
		if errors.Is(err, context.Canceled) {
			termination = TerminationCancelled
		} else if errors.Is(err, context.DeadlineExceeded) {
			termination = TerminationTimeout
		}
		return &Result{
			WorkflowName: w.name,
			Error:        err,
			Termination:  termination,
		}, err
	}

	last, err := final.Latest()
	if err != nil {
		return &Result{WorkflowName: w.name, Error: err, Termination: TerminationError}, err
	}

	return &Result{
		WorkflowName: w.name,
		State:        final,
		Output:       last.Content,
		Termination:  TerminationComplete,
	}, nil
}
