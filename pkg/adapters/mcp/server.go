package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/input"
	"github.com/aretw0/arbor/internal/presentation/format"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DocumentsURI is the resource listing the corpus.
const DocumentsURI = "arbor://documents"

// InspectArgs are the arguments of the inspect_markup tool.
type InspectArgs struct {
	Markup string `json:"markup"`
}

// InspectResponse summarizes a parsed tree.
type InspectResponse struct {
	Nodes      int            `json:"nodes" jsonschema_description:"Total node count including the document"`
	Elements   int            `json:"elements" jsonschema_description:"Element count"`
	Texts      int            `json:"texts" jsonschema_description:"Text node count"`
	Attributes int            `json:"attributes" jsonschema_description:"Attribute count over all elements"`
	Depth      int            `json:"depth" jsonschema_description:"Maximum element nesting depth"`
	Tags       map[string]int `json:"tags" jsonschema_description:"Occurrences per tag name"`
}

// Parser defines the parsing core exposed over MCP.
type Parser interface {
	Parse(ctx context.Context, markup string) (*dom.Tree, error)
}

// Server wraps the parser and exposes it as an MCP Server.
type Server struct {
	parser    Parser
	source    ports.DocumentSource
	maxInput  int64
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithSource exposes a corpus as a resource and through the get_document tool.
func WithSource(source ports.DocumentSource) Option {
	return func(s *Server) {
		s.source = source
	}
}

// WithMaxInputSize bounds markup arguments.
func WithMaxInputSize(n int64) Option {
	return func(s *Server) {
		s.maxInput = n
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(parser Parser, opts ...Option) *Server {
	s := &Server{
		parser:    parser,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("arbor-mcp", strings.TrimSpace(arbor.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.maxInput = input.MaxSize(s.maxInput)

	s.registerTools()
	if s.source != nil {
		s.registerResources()
	}
	return s
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
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
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
	// TOOL: parse_markup
	s.mcpServer.AddTool(mcp.NewTool("parse_markup",
		mcp.WithDescription("Parse markup into a document tree and return it in the requested format."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup to parse")),
		mcp.WithString("format", mcp.Description("Output format"), mcp.Enum("json", "text", "mermaid", "html")),
	), s.handleParse)

	// TOOL: dump_markup
	s.mcpServer.AddTool(mcp.NewTool("dump_markup",
		mcp.WithDescription("Parse markup and return the indented debug dump of the tree."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup to parse")),
	), s.formatted(format.Text))

	// TOOL: mermaid_markup
	s.mcpServer.AddTool(mcp.NewTool("mermaid_markup",
		mcp.WithDescription("Parse markup and return a Mermaid flowchart of the tree."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup to parse")),
	), s.formatted(format.Mermaid))

	// TOOL: inspect_markup
	s.mcpServer.AddTool(mcp.NewTool("inspect_markup",
		mcp.WithDescription("Parse markup and return node counts, depth and a tag histogram."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup to parse")),
		mcp.WithOutputSchema[InspectResponse](),
	), mcp.NewStructuredToolHandler(s.handleInspect))

	if s.source != nil {
		// TOOL: get_document
		s.mcpServer.AddTool(mcp.NewTool("get_document",
			mcp.WithDescription("Parse a corpus document by ID."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Document ID")),
			mcp.WithString("format", mcp.Description("Output format"), mcp.Enum("json", "text", "mermaid", "html")),
		), s.handleGetDocument)
	}
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := format.Parse(request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.render(ctx, request, f), nil
}

func (s *Server) formatted(f format.Format) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.render(ctx, request, f), nil
	}
}

func (s *Server) render(ctx context.Context, request mcp.CallToolRequest, f format.Format) *mcp.CallToolResult {
	markup, err := request.RequireString("markup")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	tree, err := s.parse(ctx, markup)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return s.encode(tree, f)
}

func (s *Server) handleInspect(ctx context.Context, request mcp.CallToolRequest, args InspectArgs) (InspectResponse, error) {
	tree, err := s.parse(ctx, args.Markup)
	if err != nil {
		return InspectResponse{}, err
	}

	r := tui.NewReport("", tree)
	resp := InspectResponse{
		Nodes:      r.Nodes,
		Elements:   r.Elements,
		Texts:      r.Texts,
		Attributes: r.Attributes,
		Depth:      r.Depth,
		Tags:       make(map[string]int, len(r.Tags)),
	}
	for _, t := range r.Tags {
		resp.Tags[t.Tag] = t.Count
	}
	return resp, nil
}

func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := format.Parse(request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.source.Get(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get document failed: %v", err)), nil
	}
	tree, err := s.parser.Parse(ctx, doc.Markup)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
	}
	return s.encode(tree, f), nil
}

func (s *Server) parse(ctx context.Context, markup string) (*dom.Tree, error) {
	clean, err := input.Sanitize(markup, s.maxInput)
	if err != nil {
		s.logger.Warn("MCP: Input rejected", "error", err, "size", len(markup))
		return nil, fmt.Errorf("input rejected: %w", err)
	}
	tree, err := s.parser.Parse(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return tree, nil
}

func (s *Server) encode(tree *dom.Tree, f format.Format) *mcp.CallToolResult {
	var sb strings.Builder
	if err := format.Write(&sb, tree, f); err != nil {
		s.logger.Error("MCP: Encode failed", "format", f, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err))
	}
	return mcp.NewToolResultText(sb.String())
}

func (s *Server) registerResources() {
	// EXPOSE: arbor://documents
	s.mcpServer.AddResource(mcp.NewResource(DocumentsURI, "Corpus Documents",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.source.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		if ids == nil {
			ids = []string{}
		}
		jsonBytes, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to encode document list: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      DocumentsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
