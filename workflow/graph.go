package workflow

import (
	"fmt"
	"slices"
)

// Sentinel node names marking where a run begins and ends.
const (
	Start = "__start__"
	End   = "__end__"
)

// Graph builds a workflow from named steps and the edges between them.
// A Graph is not safe for concurrent use; compile it once and share the
// resulting *Compiled instead.
type Graph struct {
	name  string
	steps map[string]Step
	order []string
	edges map[string][]string
}

// NewGraph creates an empty graph.
func NewGraph(name string) *Graph {
	return &Graph{
		name:  name,
		steps: make(map[string]Step),
		edges: make(map[string][]string),
	}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// AddStep registers a step built from fn.
func (g *Graph) AddStep(name string, fn StepFunc) error {
	return g.Add(NewStep(name, fn))
}

// Add registers a step.
func (g *Graph) Add(step Step) error {
	name := step.Name()
	switch {
	case name == "":
		return &InvalidStepError{Name: name, Reason: "name is empty"}
	case name == Start || name == End:
		return &InvalidStepError{Name: name, Reason: "name is reserved"}
	case step.fn == nil:
		return &InvalidStepError{Name: name, Reason: "function is nil"}
	}
	if _, ok := g.steps[name]; ok {
		return &DuplicateStepError{Name: name}
	}
	g.steps[name] = step
	g.order = append(g.order, name)
	return nil
}

// AddEdge registers a directed edge. from must be Start or a registered step;
// to must be End or a registered step.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.steps[from]; !ok && from != Start {
		return &UnknownNodeError{Name: from, Endpoint: "from"}
	}
	if _, ok := g.steps[to]; !ok && to != End {
		return &UnknownNodeError{Name: to, Endpoint: "to"}
	}
	if from == Start && to == End {
		return &UnknownNodeError{Name: to, Endpoint: "to"}
	}
	g.edges[from] = append(g.edges[from], to)
	return nil
}

// MustAdd is like Add but panics on error. Use it for static graph definitions.
func (g *Graph) MustAdd(step Step) *Graph {
	if err := g.Add(step); err != nil {
		panic(err)
	}
	return g
}

// MustAddEdge is like AddEdge but panics on error.
func (g *Graph) MustAddEdge(from, to string) *Graph {
	if err := g.AddEdge(from, to); err != nil {
		panic(err)
	}
	return g
}

// Compile validates the graph and returns its executable form.
//
// The graph must be acyclic, have exactly one edge out of Start, reach every
// step from Start, and give every step exactly one outgoing edge so that the
// steps form a single chain ending at End.
func (g *Graph) Compile() (*Compiled, error) {
	if err := g.checkCycles(); err != nil {
		return nil, err
	}

	entries := g.edges[Start]
	if len(entries) != 1 {
		return nil, &DisconnectedGraphError{
			Reason: fmt.Sprintf("expected exactly one edge from START, found %d", len(entries)),
		}
	}

	if unreachable := g.unreachable(); len(unreachable) > 0 {
		return nil, &DisconnectedGraphError{Reason: "steps unreachable from START", Nodes: unreachable}
	}

	for _, name := range g.order {
		switch n := len(g.edges[name]); {
		case n == 0:
			return nil, &DisconnectedGraphError{Reason: "step has no outgoing edge", Nodes: []string{name}}
		case n > 1:
			return nil, &DisconnectedGraphError{
				Reason: fmt.Sprintf("step has %d outgoing edges, expected 1", n),
				Nodes:  []string{name},
			}
		}
	}

	sorted, err := g.topoSort()
	if err != nil {
		return nil, err
	}
	if sorted[0] != entries[0] {
		return nil, &DisconnectedGraphError{Reason: "START does not point at the entry step", Nodes: []string{entries[0]}}
	}

	steps := make([]Step, len(sorted))
	for i, name := range sorted {
		steps[i] = g.steps[name]
	}

	return &Compiled{
		name:  g.name,
		steps: steps,
		edges: g.edgeList(),
	}, nil
}

type color int

const (
	white color = iota // not yet visited
	gray               // on the current DFS path
	black              // fully explored
)

// checkCycles runs a DFS from Start and then from every step in insertion
// order, so cycles outside the reachable part are reported too.
func (g *Graph) checkCycles() error {
	colors := make(map[string]color, len(g.steps)+1)
	var path []string

	var visit func(node string) error
	visit = func(node string) error {
		colors[node] = gray
		path = append(path, node)
		for _, next := range g.edges[node] {
			if next == End {
				continue
			}
			switch colors[next] {
			case gray:
				i := slices.Index(path, next)
				cycle := append(slices.Clone(path[i:]), next)
				return &CycleError{Path: cycle}
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		colors[node] = black
		return nil
	}

	roots := append([]string{Start}, g.order...)
	for _, root := range roots {
		if colors[root] == white {
			if err := visit(root); err != nil {
				return err
			}
		}
	}
	return nil
}

// unreachable returns the steps not reachable from Start, in insertion order.
func (g *Graph) unreachable() []string {
	seen := map[string]bool{Start: true}
	queue := []string{Start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range g.edges[node] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	var missing []string
	for _, name := range g.order {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// topoSort orders the steps with Kahn's algorithm. Among steps that become
// ready at the same time, the one registered first goes first.
func (g *Graph) topoSort() ([]string, error) {
	indegree := make(map[string]int, len(g.steps))
	for _, name := range g.order {
		for _, next := range g.edges[name] {
			if next != End {
				indegree[next]++
			}
		}
	}

	var ready []string
	for _, name := range g.order {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}
	if len(ready) != 1 {
		return nil, &DisconnectedGraphError{Reason: "expected exactly one entry step", Nodes: ready}
	}

	position := make(map[string]int, len(g.order))
	for i, name := range g.order {
		position[name] = i
	}

	sorted := make([]string, 0, len(g.steps))
	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		sorted = append(sorted, node)

		for _, next := range g.edges[node] {
			if next == End {
				continue
			}
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
		slices.SortFunc(ready, func(a, b string) int { return position[a] - position[b] })
	}

	if len(sorted) != len(g.steps) {
		var remaining []string
		for _, name := range g.order {
			if indegree[name] > 0 {
				remaining = append(remaining, name)
			}
		}
		return nil, &CycleError{Path: remaining}
	}
	return sorted, nil
}

// edgeList returns all edges, Start first and then by step insertion order.
func (g *Graph) edgeList() []Edge {
	var edges []Edge
	for _, from := range append([]string{Start}, g.order...) {
		for _, to := range g.edges[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}
