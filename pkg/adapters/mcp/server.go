package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/taproom"
	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/aretw0/taproom/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MenuURI is the resource exposing the catalog.
const MenuURI = "taproom://menu"

// ResolveResponse is the structured result of resolve_order.
type ResolveResponse struct {
	Outcome *domain.Outcome `json:"outcome" jsonschema_description:"The resolved turn: a proposal, a clarification or an empty order"`
	Tree    tree.Tree       `json:"tree" jsonschema_description:"The UI tree a client would render for the outcome"`
}

// MenuResponse is the structured result of list_menu.
type MenuResponse struct {
	Items []domain.MenuItem `json:"items" jsonschema_description:"Catalog items in menu order"`
}

// Server wraps the resolver and exposes it as an MCP Server.
type Server struct {
	resolver  ports.Resolver
	logger    *slog.Logger
	maxInput  int
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. MCP over stdio owns stdout, so it must not write there.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxInputSize overrides the prompt size limit.
func WithMaxInputSize(limit int) Option {
	return func(s *Server) {
		s.maxInput = limit
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(resolver ports.Resolver, opts ...Option) *Server {
	s := &Server{
		resolver:  resolver,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("taproom-mcp", strings.TrimSpace(taproom.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for in-process transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: resolve_order
	resolveTool := mcp.NewTool("resolve_order",
		mcp.WithDescription("Resolve one turn of a pub order. Returns a priced proposal, a question to answer, or an empty order. "+
			"Answer questions by calling again with the same prompt and the answers added to context."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("What the customer said, e.g. \"2 pints of guinness for table 4\"")),
		mcp.WithString("context", mcp.Description("JSON object with the answers so far: {\"table\": 4, \"snacks\": [\"Ready Salted\"]} (optional)")),
		mcp.WithOutputSchema[ResolveResponse](),
	)
	s.mcpServer.AddTool(resolveTool, mcp.NewStructuredToolHandler(s.handleResolve))

	// TOOL: list_menu
	menuTool := mcp.NewTool("list_menu",
		mcp.WithDescription("List the menu with prices in pence."),
		mcp.WithOutputSchema[MenuResponse](),
	)
	s.mcpServer.AddTool(menuTool, mcp.NewStructuredToolHandler(s.handleListMenu))
}

func (s *Server) handleResolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ResolveResponse, error) {
	prompt, _ := args["prompt"].(string)

	var sessionCtx domain.SessionContext
	switch raw := args["context"].(type) {
	case string:
		if strings.TrimSpace(raw) != "" {
			// Malformed context is treated as empty, like wrongly-typed fields.
			_ = json.Unmarshal([]byte(raw), &sessionCtx)
		}
	case map[string]interface{}:
		sessionCtx = domain.ParseSessionContext(raw)
	}

	clean, err := runner.SanitizeInput(prompt, s.maxInput)
	if err != nil {
		s.logger.Warn("MCP resolve: input rejected", "error", err, "size", len(prompt))
		return ResolveResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	outcome, err := s.resolver.Resolve(ctx, domain.Turn{Text: clean, Context: sessionCtx})
	if err != nil {
		return ResolveResponse{}, fmt.Errorf("resolve failed: %w", err)
	}
	s.logger.Debug("MCP resolve", "kind", outcome.Kind)

	return ResolveResponse{Outcome: outcome, Tree: tree.FromOutcome(outcome)}, nil
}

func (s *Server) handleListMenu(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MenuResponse, error) {
	return MenuResponse{Items: s.resolver.Menu()}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: taproom://menu
	s.mcpServer.AddResource(mcp.NewResource(MenuURI, "Menu",
		mcp.WithResourceDescription("The catalog orders are priced against"),
		mcp.WithMIMEType("application/json"),
	), s.readMenu)
}

func (s *Server) readMenu(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.resolver.Menu())
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      MenuURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
