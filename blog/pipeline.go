package blog

import (
	"github.com/spetersoncode/scribe/textgen"
	"github.com/spetersoncode/scribe/workflow"
)

// Step names used by every blog pipeline.
const (
	TitleStep = "title_generator"
	BodyStep  = "blog_writer"
)

// NewGraph compiles Start -> title_generator -> blog_writer -> End.
// The title step renders tmpl.Title from the topic and asks title for text;
// the body step renders tmpl.Body from the generated title and asks body.
func NewGraph(name string, tmpl Templates, title, body textgen.Generator) (*workflow.Compiled, error) {
	p, err := tmpl.parse(name)
	if err != nil {
		return nil, err
	}

	g := workflow.NewGraph(name)
	if err := g.Add(workflow.NewPromptStep(TitleStep, title, workflow.LatestPrompt(p.renderTitle))); err != nil {
		return nil, err
	}
	if err := g.Add(workflow.NewPromptStep(BodyStep, body, workflow.LatestPrompt(p.renderBody))); err != nil {
		return nil, err
	}
	for _, e := range []workflow.Edge{
		{From: workflow.Start, To: TitleStep},
		{From: TitleStep, To: BodyStep},
		{From: BodyStep, To: workflow.End},
	} {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g.Compile()
}
