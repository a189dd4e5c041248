package workflow

import (
	"fmt"
	"slices"
	"strings"
)

// Edge is a directed connection between two nodes of a graph.
type Edge struct {
	From string
	To   string
}

// Compiled is the validated, immutable form of a Graph: its steps in
// execution order. A Compiled may be run any number of times, concurrently.
type Compiled struct {
	name  string
	steps []Step
	edges []Edge
}

// Name returns the name of the graph this was compiled from.
func (c *Compiled) Name() string { return c.name }

// Steps returns the steps in execution order.
func (c *Compiled) Steps() []Step { return slices.Clone(c.steps) }

// StepNames returns the step names in execution order.
func (c *Compiled) StepNames() []string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of steps.
func (c *Compiled) Len() int { return len(c.steps) }

// Edges returns the graph's edges.
func (c *Compiled) Edges() []Edge { return slices.Clone(c.edges) }

// Mermaid renders the graph as a Mermaid flowchart.
// START and END are drawn as circles and steps as rectangles. Step node IDs
// are positional (s0, s1, ...) so distinct names never collide; the step
// name is shown as the label.
func (c *Compiled) Mermaid() string {
	ids := map[string]string{Start: Start, End: End}
	for i, s := range c.steps {
		ids[s.Name()] = fmt.Sprintf("s%d", i)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	fmt.Fprintf(&sb, "    %s((START))\n", Start)
	for _, s := range c.steps {
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", ids[s.Name()], mermaidLabel(s.Name()))
	}
	fmt.Fprintf(&sb, "    %s((END))\n", End)
	for _, e := range c.edges {
		fmt.Fprintf(&sb, "    %s --> %s\n", ids[e.From], ids[e.To])
	}
	return sb.String()
}

// mermaidLabel escapes characters that would end a quoted Mermaid label.
func mermaidLabel(name string) string {
	return strings.NewReplacer(`"`, "#quot;", "\n", " ").Replace(name)
}
