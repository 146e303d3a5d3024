package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
	"github.com/ckkulkarni/tatvam/internal/router"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Base      *knowledge.Base
	Responder *router.Responder
}

// NewMCPServer creates an MCP server exposing the responder as an `ask` tool
// plus the profile as a resource, so editor agents can query the bot over
// stdio. All ask calls through one MCP connection share a conversation, which
// keeps follow-ups ("more", "continue") working.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"tatvam",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("tatvam — rule-based responder for career questions, smalltalk, jokes, and quick math."),
		server.WithRecovery(),
	)

	state := router.NewState()

	s.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Ask the responder a question: career topics, smalltalk, jokes, memes, or arithmetic."),
			mcp.WithString("message", mcp.Description("The question or message to respond to"), mcp.Required()),
		),
		mcpAsk(deps, state),
	)

	s.AddResource(
		mcp.NewResource(
			"tatvam://profile",
			"Profile",
			mcp.WithResourceDescription("The career profile record as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	return s
}

func mcpAsk(deps MCPDeps, state *router.State) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil || strings.TrimSpace(message) == "" {
			return mcpError("message is required"), nil
		}

		return mcpText(deps.Responder.Respond(ctx, message, state)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Base.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
