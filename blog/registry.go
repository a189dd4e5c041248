package blog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/spetersoncode/scribe/textgen"
	"github.com/spetersoncode/scribe/workflow"
)

// ErrAgentExists is returned when a variant name is registered twice.
type ErrAgentExists struct {
	Name string
}

func (e *ErrAgentExists) Error() string {
	return fmt.Sprintf("blog: variant %q already registered", e.Name)
}

// Registry holds named agents. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]*Agent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]*Agent)}
}

// Register adds an agent under its graph name.
func (r *Registry) Register(a *Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[a.Name()]; exists {
		return &ErrAgentExists{Name: a.Name()}
	}
	r.agents[a.Name()] = a
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(a *Agent) *Registry {
	if err := r.Register(a); err != nil {
		panic(err)
	}
	return r
}

// Get returns the agent registered under name.
func (r *Registry) Get(name string) (*Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// Names returns the registered variant names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Generators are the per-step text generators shared by every variant.
type Generators struct {
	Title textgen.Generator
	Body  textgen.Generator
}

// Build compiles one agent per variant. Every variant uses gens.Title for its
// title step and gens.Body for its body step.
func Build(variants map[string]Templates, gens Generators, opts ...workflow.Option) (*Registry, error) {
	if gens.Title == nil || gens.Body == nil {
		return nil, fmt.Errorf("blog: title and body generators are required")
	}

	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)

	reg := NewRegistry()
	for _, name := range names {
		compiled, err := NewGraph(name, variants[name], gens.Title, gens.Body)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(NewAgent(compiled, opts...)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
