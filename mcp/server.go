// Package mcp exposes blog pipelines as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spetersoncode/scribe/blog"
	"github.com/spetersoncode/scribe/internal/logging"
)

// Tool names registered by NewServer.
const (
	WriteBlogTool    = "write_blog"
	ListVariantsTool = "list_variants"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithLogger sets the logger used for tool calls.
func WithLogger(l *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = l
	}
}

// NewServer creates an MCP server exposing the agents in registry.
//
//	reg, _ := blog.Build(blog.Variants(), gens)
//	s := mcp.NewServer(reg, mcp.WithName("scribe"))
//	server.ServeStdio(s)
func NewServer(registry *blog.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "scribe",
		version: "1.0.0",
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{registry: registry, logger: cfg.logger}

	variantOpts := []mcp.PropertyOption{
		mcp.Description("Pipeline variant to run (defaults to " + blog.DefaultVariant + ")"),
	}
	if names := registry.Names(); len(names) > 0 {
		variantOpts = append(variantOpts, mcp.Enum(names...))
	}

	s.AddTool(mcp.NewTool(WriteBlogTool,
		mcp.WithDescription("Generate a blog post for a topic: first a title, then a body based on that title."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("What the blog post is about")),
		mcp.WithString("variant", variantOpts...),
		mcp.WithBoolean("include_title", mcp.Description("Prefix the body with the generated title")),
	), h.writeBlog)

	s.AddTool(mcp.NewTool(ListVariantsTool,
		mcp.WithDescription("List the available blog pipeline variants."),
	), h.listVariants)

	return s
}

type handlers struct {
	registry *blog.Registry
	logger   *slog.Logger
}

func (h *handlers) writeBlog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	variant := req.GetString("variant", blog.DefaultVariant)

	agent, ok := h.registry.Get(variant)
	if !ok {
		return mcp.NewToolResultError("unknown variant: " + variant), nil
	}

	h.logger.InfoContext(ctx, "tool called", "tool", WriteBlogTool, "variant", variant)
	post, err := agent.Compose(ctx, topic)
	if err != nil {
		if errors.Is(err, blog.ErrEmptyTopic) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary := "blog generation failed"
		if f, ok := blog.Diagnose(err); ok {
			summary = f.String()
			h.logger.WarnContext(ctx, "tool failed",
				"tool", WriteBlogTool,
				"variant", variant,
				"step", f.Step,
				"category", f.Category,
				"status", f.Status,
				"error", err,
			)
		} else {
			h.logger.WarnContext(ctx, "tool failed", "tool", WriteBlogTool, "variant", variant, "error", err)
		}
		return mcp.NewToolResultErrorFromErr(summary, err), nil
	}

	if req.GetBool("include_title", false) && post.Title != "" {
		return mcp.NewToolResultText(post.Title + "\n\n" + post.Body), nil
	}
	return mcp.NewToolResultText(post.Body), nil
}

func (h *handlers) listVariants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(h.registry.Names(), "\n")), nil
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
func ServeStdio(registry *blog.Registry, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(registry, opts...))
}
