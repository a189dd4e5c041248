package workflow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyState indicates a read of the latest message from a state with no messages.
	ErrEmptyState = errors.New("workflow: state has no messages")

	// ErrNotCompiled indicates a run was attempted without a compiled graph.
	ErrNotCompiled = errors.New("workflow: graph is not compiled")
)

// GenerationError reports a failed call to the text-generation backend inside a step.
type GenerationError struct {
	StepName string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("workflow: step %q generation failed: %v", e.StepName, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// DuplicateStepError is returned when a step name is registered twice.
type DuplicateStepError struct {
	Name string
}

func (e *DuplicateStepError) Error() string {
	return fmt.Sprintf("workflow: step %q already registered", e.Name)
}

// InvalidStepError is returned for a step that cannot be registered at all.
type InvalidStepError struct {
	Name   string
	Reason string
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("workflow: invalid step %q: %s", e.Name, e.Reason)
}

// UnknownNodeError is returned when an edge endpoint is not a registered step
// or is a sentinel used on the wrong side of the edge.
type UnknownNodeError struct {
	Name string
	// Endpoint is "from" or "to".
	Endpoint string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("workflow: unknown %s node %q", e.Endpoint, e.Name)
}

// CycleError is returned by Compile when the edges form a cycle.
type CycleError struct {
	// Path lists the nodes of the cycle, starting and ending with the same node.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("workflow: cycle detected: %s", strings.Join(e.Path, " -> "))
}

// DisconnectedGraphError is returned by Compile when the graph is not a single
// chain from START to END.
type DisconnectedGraphError struct {
	Reason string
	Nodes  []string
}

func (e *DisconnectedGraphError) Error() string {
	if len(e.Nodes) == 0 {
		return fmt.Sprintf("workflow: disconnected graph: %s", e.Reason)
	}
	return fmt.Sprintf("workflow: disconnected graph: %s: %s", e.Reason, strings.Join(e.Nodes, ", "))
}
