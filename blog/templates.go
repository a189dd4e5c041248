package blog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Variant names built in to scribe.
const (
	DefaultVariant     = "default"
	AlternativeVariant = "alternative"
)

// ErrEmptyTemplate is returned when a variant is missing its title or body prompt.
var ErrEmptyTemplate = errors.New("blog: empty prompt template")

// Templates holds the prompt wording for one pipeline variant.
// Title is rendered with {{.Topic}} and Body with {{.Title}}.
type Templates struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// DefaultTemplates is the wording of the default pipeline.
var DefaultTemplates = Templates{
	Title: "Generate a creative and engaging blog post title for the topic: {{.Topic}}",
	Body:  "Write a detailed and well-structured blog post based on the title: {{.Title}}",
}

// AlternativeTemplates is the shorter wording of the alternative pipeline.
var AlternativeTemplates = Templates{
	Title: "Create a blog title for: {{.Topic}}",
	Body:  "Create a blog post for title: {{.Title}}",
}

// Variants returns the built-in variants keyed by name.
func Variants() map[string]Templates {
	return map[string]Templates{
		DefaultVariant:     DefaultTemplates,
		AlternativeVariant: AlternativeTemplates,
	}
}

type titleData struct{ Topic string }

type bodyData struct{ Title string }

// prompts is the parsed form of Templates.
type prompts struct {
	title *template.Template
	body  *template.Template
}

func (t Templates) parse(variant string) (*prompts, error) {
	if t.Title == "" || t.Body == "" {
		return nil, fmt.Errorf("%w: variant %q", ErrEmptyTemplate, variant)
	}
	title, err := template.New(variant + ".title").Option("missingkey=error").Parse(t.Title)
	if err != nil {
		return nil, fmt.Errorf("blog: parse title template for %q: %w", variant, err)
	}
	body, err := template.New(variant + ".body").Option("missingkey=error").Parse(t.Body)
	if err != nil {
		return nil, fmt.Errorf("blog: parse body template for %q: %w", variant, err)
	}
	return &prompts{title: title, body: body}, nil
}

func (p *prompts) renderTitle(topic string) (string, error) {
	return execute(p.title, titleData{Topic: topic})
}

func (p *prompts) renderBody(title string) (string, error) {
	return execute(p.body, bodyData{Title: title})
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("blog: render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// templateFile is the on-disk layout read by LoadTemplates:
//
//	variants:
//	  punchy:
//	    title: "A punchy title about {{.Topic}}"
//	    body: "A short post titled {{.Title}}"
type templateFile struct {
	Variants map[string]Templates `yaml:"variants"`
}

// LoadTemplates reads named variants from a YAML file. Every variant is
// parsed before returning so template errors surface at startup.
func LoadTemplates(path string) (map[string]Templates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blog: open templates: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file templateFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("blog: decode %s: %w", path, err)
	}
	if len(file.Variants) == 0 {
		return nil, fmt.Errorf("blog: %s defines no variants", path)
	}
	for name, tmpl := range file.Variants {
		if _, err := tmpl.parse(name); err != nil {
			return nil, err
		}
	}
	return file.Variants, nil
}
