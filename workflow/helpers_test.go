package workflow

import (
	"context"
	"sync/atomic"

	ai "github.com/spetersoncode/scribe"
)

// countingStep returns a step that appends a fixed assistant message and
// counts its invocations.
func countingStep(name, reply string, calls *atomic.Int32) Step {
	return NewStep(name, func(ctx context.Context, state State) ([]ai.Message, error) {
		if calls != nil {
			calls.Add(1)
		}
		return []ai.Message{{Role: ai.RoleAssistant, Content: reply}}, nil
	})
}

func noopStep(ctx context.Context, state State) ([]ai.Message, error) {
	return nil, nil
}

// chain builds and compiles Start -> names[0] -> ... -> End using steps.
func chain(name string, steps ...Step) (*Compiled, error) {
	g := NewGraph(name)
	prev := Start
	for _, s := range steps {
		if err := g.Add(s); err != nil {
			return nil, err
		}
		if err := g.AddEdge(prev, s.Name()); err != nil {
			return nil, err
		}
		prev = s.Name()
	}
	if err := g.AddEdge(prev, End); err != nil {
		return nil, err
	}
	return g.Compile()
}
