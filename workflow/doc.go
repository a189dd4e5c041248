// Package workflow sequences dependent generation steps over a shared,
// append-only conversation.
//
// A workflow is described as a graph of named steps joined by edges from the
// START sentinel to the END sentinel. Compiling the graph validates it and
// fixes the execution order; the compiled form is immutable and can be run
// any number of times, from any number of goroutines.
//
// # State Model
//
// [State] is an ordered list of [scribe.Message] values. Steps never mutate
// it: each step returns new messages and the executor appends them, producing
// a new State for the next step.
//
//	state := workflow.NewState(scribe.NewUserMessage("coffee brewing"))
//	latest, err := state.Latest()
//
// # Building a Graph
//
//	g := workflow.NewGraph("blog")
//	g.MustAdd(workflow.NewPromptStep("title_generator", titleGen,
//	    workflow.LatestPrompt(func(topic string) (string, error) {
//	        return "Generate a blog post title for: " + topic, nil
//	    }),
//	))
//	g.MustAdd(workflow.NewPromptStep("blog_writer", bodyGen,
//	    workflow.LatestPrompt(func(title string) (string, error) {
//	        return "Write a blog post titled: " + title, nil
//	    }),
//	))
//	g.MustAddEdge(workflow.Start, "title_generator")
//	g.MustAddEdge("title_generator", "blog_writer")
//	g.MustAddEdge("blog_writer", workflow.End)
//
//	compiled, err := g.Compile()
//
// Compile reports construction problems as typed errors: [*CycleError] and
// [*DisconnectedGraphError]. AddStep and AddEdge report [*DuplicateStepError]
// and [*UnknownNodeError] as soon as they happen.
//
// # Running
//
//	final, err := workflow.Run(ctx, compiled, state,
//	    workflow.WithStepTimeout(time.Minute),
//	)
//
// Runs are fail-fast. The first step error ends the run and is returned
// unchanged; a failing generation call surfaces as [*GenerationError] naming
// the step.
package workflow
