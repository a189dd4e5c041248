package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_TwoStepChainKeepsInsertionOrder(t *testing.T) {
	compiled, err := chain("blog",
		countingStep("title_generator", "title", nil),
		countingStep("blog_writer", "body", nil),
	)

	require.NoError(t, err)
	assert.Equal(t, "blog", compiled.Name())
	assert.Equal(t, 2, compiled.Len())
	assert.Equal(t, []string{"title_generator", "blog_writer"}, compiled.StepNames())
}

func TestCompile_OrderFollowsEdgesNotRegistration(t *testing.T) {
	g := NewGraph("reversed")
	require.NoError(t, g.AddStep("second", noopStep))
	require.NoError(t, g.AddStep("first", noopStep))
	require.NoError(t, g.AddEdge(Start, "first"))
	require.NoError(t, g.AddEdge("first", "second"))
	require.NoError(t, g.AddEdge("second", End))

	compiled, err := g.Compile()

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, compiled.StepNames())
}

func TestAddStep_Duplicate(t *testing.T) {
	g := NewGraph("g")
	require.NoError(t, g.AddStep("a", noopStep))

	err := g.AddStep("a", noopStep)

	var dup *DuplicateStepError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
}

func TestAddStep_Invalid(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{"empty name", NewStep("", noopStep)},
		{"start sentinel", NewStep(Start, noopStep)},
		{"end sentinel", NewStep(End, noopStep)},
		{"nil function", NewStep("a", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invalid *InvalidStepError
			assert.ErrorAs(t, NewGraph("g").Add(tt.step), &invalid)
		})
	}
}

func TestAddEdge_UnknownNode(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		bad      string
		endpoint string
	}{
		{"unknown source", "ghost", "a", "ghost", "from"},
		{"unknown target", "a", "ghost", "ghost", "to"},
		{"end as source", End, "a", End, "from"},
		{"start as target", "a", Start, Start, "to"},
		{"start straight to end", Start, End, End, "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph("g")
			require.NoError(t, g.AddStep("a", noopStep))

			err := g.AddEdge(tt.from, tt.to)

			var unknown *UnknownNodeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.bad, unknown.Name)
			assert.Equal(t, tt.endpoint, unknown.Endpoint)
		})
	}
}

func TestCompile_Cycle(t *testing.T) {
	g := NewGraph("loop")
	g.MustAdd(NewStep("A", noopStep)).MustAdd(NewStep("B", noopStep))
	g.MustAddEdge(Start, "A").MustAddEdge("A", "B").MustAddEdge("B", "A")

	_, err := g.Compile()

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"A", "B", "A"}, cycle.Path)
	assert.Equal(t, "workflow: cycle detected: A -> B -> A", err.Error())
}

func TestCompile_CycleWithoutStartEdge(t *testing.T) {
	g := NewGraph("loop")
	g.MustAdd(NewStep("A", noopStep)).MustAdd(NewStep("B", noopStep))
	g.MustAddEdge("A", "B").MustAddEdge("B", "A")

	_, err := g.Compile()

	var cycle *CycleError
	assert.ErrorAs(t, err, &cycle)
}

func TestCompile_SelfLoop(t *testing.T) {
	g := NewGraph("self")
	g.MustAdd(NewStep("A", noopStep))
	g.MustAddEdge(Start, "A").MustAddEdge("A", "A")

	_, err := g.Compile()

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"A", "A"}, cycle.Path)
}

func TestCompile_UnreachableStep(t *testing.T) {
	g := NewGraph("orphan")
	g.MustAdd(NewStep("title_generator", noopStep)).
		MustAdd(NewStep("blog_writer", noopStep)).
		MustAdd(NewStep("orphan", noopStep))
	g.MustAddEdge(Start, "title_generator").
		MustAddEdge("title_generator", "blog_writer").
		MustAddEdge("blog_writer", End).
		MustAddEdge("orphan", End)

	_, err := g.Compile()

	var disc *DisconnectedGraphError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, []string{"orphan"}, disc.Nodes)
}

func TestCompile_StartEdgeCount(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		g := NewGraph("g")
		g.MustAdd(NewStep("a", noopStep)).MustAddEdge("a", End)

		_, err := g.Compile()

		var disc *DisconnectedGraphError
		assert.ErrorAs(t, err, &disc)
	})

	t.Run("two", func(t *testing.T) {
		g := NewGraph("g")
		g.MustAdd(NewStep("a", noopStep)).MustAdd(NewStep("b", noopStep))
		g.MustAddEdge(Start, "a").MustAddEdge(Start, "b").
			MustAddEdge("a", End).MustAddEdge("b", End)

		_, err := g.Compile()

		var disc *DisconnectedGraphError
		assert.ErrorAs(t, err, &disc)
	})

	t.Run("empty graph", func(t *testing.T) {
		_, err := NewGraph("g").Compile()

		var disc *DisconnectedGraphError
		assert.ErrorAs(t, err, &disc)
	})
}

func TestCompile_StepWithoutOutgoingEdge(t *testing.T) {
	g := NewGraph("g")
	g.MustAdd(NewStep("a", noopStep)).MustAdd(NewStep("b", noopStep))
	g.MustAddEdge(Start, "a").MustAddEdge("a", "b")

	_, err := g.Compile()

	var disc *DisconnectedGraphError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, []string{"b"}, disc.Nodes)
}

func TestCompile_BranchingRejected(t *testing.T) {
	g := NewGraph("g")
	g.MustAdd(NewStep("a", noopStep)).MustAdd(NewStep("b", noopStep)).MustAdd(NewStep("c", noopStep))
	g.MustAddEdge(Start, "a").
		MustAddEdge("a", "b").MustAddEdge("a", "c").
		MustAddEdge("b", End).MustAddEdge("c", End)

	_, err := g.Compile()

	var disc *DisconnectedGraphError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, []string{"a"}, disc.Nodes)
}

func TestCompile_IsRepeatable(t *testing.T) {
	g := NewGraph("g")
	g.MustAdd(NewStep("a", noopStep)).MustAddEdge(Start, "a").MustAddEdge("a", End)

	first, err := g.Compile()
	require.NoError(t, err)
	second, err := g.Compile()
	require.NoError(t, err)

	assert.Equal(t, first.StepNames(), second.StepNames())
}

func TestMustAdd_Panics(t *testing.T) {
	g := NewGraph("g").MustAdd(NewStep("a", noopStep))

	assert.Panics(t, func() { g.MustAdd(NewStep("a", noopStep)) })
	assert.Panics(t, func() { g.MustAddEdge("a", "ghost") })
}

func TestCompiled_StepsIsACopy(t *testing.T) {
	compiled, err := chain("g", NewStep("a", noopStep), NewStep("b", noopStep))
	require.NoError(t, err)

	steps := compiled.Steps()
	steps[0] = NewStep("mutated", noopStep)

	assert.Equal(t, []string{"a", "b"}, compiled.StepNames())
}

func TestCompiled_Mermaid(t *testing.T) {
	compiled, err := chain("blog", NewStep("title_generator", noopStep), NewStep("blog-writer", noopStep))
	require.NoError(t, err)

	expected := "graph TD\n" +
		"    __start__((START))\n" +
		"    s0[\"title_generator\"]\n" +
		"    s1[\"blog-writer\"]\n" +
		"    __end__((END))\n" +
		"    __start__ --> s0\n" +
		"    s0 --> s1\n" +
		"    s1 --> __end__\n"
	assert.Equal(t, expected, compiled.Mermaid())
	assert.Len(t, compiled.Edges(), 3)
}

func TestCompiled_MermaidDistinctNodesForSimilarNames(t *testing.T) {
	compiled, err := chain("g", NewStep("a-b", noopStep), NewStep("a_b", noopStep))
	require.NoError(t, err)

	out := compiled.Mermaid()

	assert.Contains(t, out, "    s0[\"a-b\"]\n")
	assert.Contains(t, out, "    s1[\"a_b\"]\n")
	assert.Contains(t, out, "    s0 --> s1\n")
	assert.NotContains(t, out, "s0 --> s0")
	assert.NotContains(t, out, "s1 --> s1")
}

func TestCompiled_MermaidEscapesLabels(t *testing.T) {
	compiled, err := chain("g", NewStep(`say "hi"`, noopStep))
	require.NoError(t, err)

	assert.Contains(t, compiled.Mermaid(), "    s0[\"say #quot;hi#quot;\"]\n")
}
