package blog

import (
	"context"
	"errors"
	"strings"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/workflow"
)

// ErrEmptyTopic is returned when Write is called with a blank topic.
var ErrEmptyTopic = errors.New("blog: topic is empty")

// Post is a finished blog post.
type Post struct {
	Topic string
	Title string
	Body  string
}

// Agent runs one compiled blog pipeline. It is safe for concurrent use.
type Agent struct {
	wf *workflow.Workflow
}

// NewAgent wraps a compiled pipeline.
func NewAgent(compiled *workflow.Compiled, opts ...workflow.Option) *Agent {
	return &Agent{wf: workflow.New(compiled, opts...)}
}

// Name returns the variant name of the underlying graph.
func (a *Agent) Name() string { return a.wf.Name() }

// Graph returns the compiled pipeline.
func (a *Agent) Graph() *workflow.Compiled { return a.wf.Compiled() }

// Write generates a blog post for topic and returns its body.
func (a *Agent) Write(ctx context.Context, topic string) (string, error) {
	post, err := a.Compose(ctx, topic)
	if err != nil {
		return "", err
	}
	return post.Body, nil
}

// Compose generates a blog post for topic and returns both title and body.
// Errors from the pipeline are returned unchanged.
func (a *Agent) Compose(ctx context.Context, topic string) (*Post, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	result, err := a.wf.Run(ctx, workflow.NewState(ai.NewUserMessage(topic)))
	if err != nil {
		return nil, err
	}

	post := &Post{Topic: topic, Body: result.Output}
	// The title is the message appended just before the body.
	if msgs := result.State.Messages(); len(msgs) >= 3 {
		post.Title = msgs[len(msgs)-2].Content
	}
	return post, nil
}
