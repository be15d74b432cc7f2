// Package mcp exposes a token project to MCP clients: token
// resolution, the flattened token list and contrast checks as tools,
// plus the raw tree as a resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/pkg/contrast"
	"github.com/weftlabs/weft/pkg/tokens"
)

// ResolveResponse is the structured output of the resolve_token tool.
type ResolveResponse struct {
	Ref   string `json:"ref" jsonschema_description:"The reference that was resolved"`
	Value string `json:"value" jsonschema_description:"The fully resolved string value"`
}

// ContrastResponse is the structured output of the check_contrast tool.
type ContrastResponse struct {
	Foreground string  `json:"foreground" jsonschema_description:"Resolved foreground colour"`
	Background string  `json:"background" jsonschema_description:"Resolved background colour"`
	Ratio      float64 `json:"ratio" jsonschema_description:"WCAG contrast ratio (1 to 21)"`
	Grade      string  `json:"grade" jsonschema_description:"WCAG grade: AAA, AA, AA-large or fail"`
}

// Resolver defines the token project surface the MCP adapter needs.
type Resolver interface {
	Resolve(ref string) (string, error)
	Tree() tokens.Tree
	Flatten() ([]tokens.FlatToken, error)
}

// Server wraps a token project and exposes it as an MCP server.
type Server struct {
	resolver  Resolver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(resolver Resolver) *Server {
	s := &Server{
		resolver:  resolver,
		mcpServer: server.NewMCPServer("weft-mcp", strings.TrimSpace(weft.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: resolve_token
	resolveTool := mcp.NewTool("resolve_token",
		mcp.WithDescription("Resolve a design token reference like {color.brand.primary} to its final string value, following chained aliases."),
		mcp.WithString("ref", mcp.Required(), mcp.Description("Token reference ({dot.path}) or literal value")),
		mcp.WithOutputSchema[ResolveResponse](),
	)
	s.mcpServer.AddTool(resolveTool, mcp.NewStructuredToolHandler(s.handleResolve))

	// TOOL: check_contrast
	contrastTool := mcp.NewTool("check_contrast",
		mcp.WithDescription("Compute the WCAG contrast ratio between two colours. Both arguments accept token references or literal hex colours."),
		mcp.WithString("fg", mcp.Required(), mcp.Description("Foreground colour or token reference")),
		mcp.WithString("bg", mcp.Required(), mcp.Description("Background colour or token reference")),
		mcp.WithOutputSchema[ContrastResponse](),
	)
	s.mcpServer.AddTool(contrastTool, mcp.NewStructuredToolHandler(s.handleContrast))

	// TOOL: list_tokens
	s.mcpServer.AddTool(mcp.NewTool("list_tokens",
		mcp.WithDescription("List every token in the project, fully resolved. Optionally filter by a dot-path prefix."),
		mcp.WithString("prefix", mcp.Description("Dot-path prefix to filter by (optional)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flat, err := s.resolver.Flatten()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("flatten failed: %v", err)), nil
		}

		if prefix := request.GetString("prefix", ""); prefix != "" {
			filtered := flat[:0]
			for _, tok := range flat {
				if strings.HasPrefix(tok.Path, prefix) {
					filtered = append(filtered, tok)
				}
			}
			flat = filtered
		}

		jsonBytes, _ := json.Marshal(flat)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleResolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ResolveResponse, error) {
	ref, _ := args["ref"].(string)
	if ref == "" {
		return ResolveResponse{}, fmt.Errorf("ref is required")
	}

	value, err := s.resolver.Resolve(ref)
	if err != nil {
		return ResolveResponse{}, fmt.Errorf("resolve failed: %w", err)
	}

	return ResolveResponse{Ref: ref, Value: value}, nil
}

func (s *Server) handleContrast(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ContrastResponse, error) {
	fg, _ := args["fg"].(string)
	bg, _ := args["bg"].(string)
	if fg == "" || bg == "" {
		return ContrastResponse{}, fmt.Errorf("fg and bg are required")
	}

	fgValue, err := s.resolver.Resolve(fg)
	if err != nil {
		return ContrastResponse{}, fmt.Errorf("resolve fg failed: %w", err)
	}
	bgValue, err := s.resolver.Resolve(bg)
	if err != nil {
		return ContrastResponse{}, fmt.Errorf("resolve bg failed: %w", err)
	}

	ratio, err := contrast.Ratio(fgValue, bgValue)
	if err != nil {
		return ContrastResponse{}, err
	}

	return ContrastResponse{
		Foreground: fgValue,
		Background: bgValue,
		Ratio:      ratio,
		Grade:      string(contrast.Grade(ratio)),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: weft://tokens
	s.mcpServer.AddResource(mcp.NewResource("weft://tokens", "Project Token Tree",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.resolver.Tree())
		if err != nil {
			return nil, fmt.Errorf("failed to encode token tree: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "weft://tokens",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
