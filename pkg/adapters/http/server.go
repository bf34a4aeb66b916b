package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/input"
	"github.com/aretw0/arbor/internal/presentation/format"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// Parser defines the parsing core served over HTTP.
type Parser interface {
	Parse(ctx context.Context, markup string) (*dom.Tree, error)
}

// Server implements the generated ServerInterface
type Server struct {
	Parser       Parser
	Source       ports.DocumentSource
	Cache        ports.DocumentCache
	Gatherer     prometheus.Gatherer
	MaxInputSize int64
	Logger       *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithSource exposes a corpus under /documents and, if it is watchable, /events.
func WithSource(source ports.DocumentSource) Option {
	return func(s *Server) {
		s.Source = source
	}
}

// WithCache reports the number of cached documents under /info when the cache
// can enumerate its keys.
func WithCache(cache ports.DocumentCache) Option {
	return func(s *Server) {
		s.Cache = cache
	}
}

// WithMetrics serves the gatherer's metrics under /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithMaxInputSize bounds request bodies.
func WithMaxInputSize(n int64) Option {
	return func(s *Server) {
		s.MaxInputSize = n
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the parser.
func NewHandler(parser Parser, opts ...Option) http.Handler {
	server := &Server{
		Parser: parser,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.MaxInputSize = input.MaxSize(server.MaxInputSize)

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(HandlerFromMux(server, r))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Arbor API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ParseMarkup handles the POST /parse request. The body is the raw markup.
func (s *Server) ParseMarkup(w http.ResponseWriter, r *http.Request, params ParseMarkupParams) {
	f, ok := s.resolveFormat(w, params.Format)
	if !ok {
		return
	}

	markup, err := input.Read(r.Body, s.MaxInputSize)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrInputTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		s.Logger.Warn("Parse: Input rejected", "error", err)
		return
	}

	s.respond(w, r, markup, f)
}

// ListDocuments handles the GET /documents request.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.Source == nil {
		http.Error(w, "No corpus configured", http.StatusNotFound)
		return
	}
	ids, err := s.Source.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ListDocuments failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ids); err != nil {
		s.Logger.Error("ListDocuments response encode failed", "error", err)
	}
}

// GetDocument handles the GET /documents/{id} request. Slashes in id arrive
// percent-encoded and are already decoded.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, id string, params GetDocumentParams) {
	if s.Source == nil {
		http.Error(w, "No corpus configured", http.StatusNotFound)
		return
	}
	f, ok := s.resolveFormat(w, params.Format)
	if !ok {
		return
	}

	doc, err := s.Source.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Get error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetDocument failed", "id", id, "error", err)
		return
	}

	s.respond(w, r, doc.Markup, f)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	resp := map[string]any{
		"app":         "arbor-http",
		"version":     strings.TrimSpace(arbor.Version),
		"api_version": apiVersion,
	}
	if index, ok := s.Cache.(ports.CacheIndex); ok {
		keys, err := index.Keys(r.Context())
		if err != nil {
			s.Logger.Warn("GetInfo: Cache index unavailable", "error", err)
		} else {
			resp["cache_entries"] = len(keys)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	watchable, ok := s.Source.(ports.Watchable)
	if !ok {
		http.Error(w, "No watchable corpus configured", http.StatusNotFound)
		return
	}
	events, err := watchable.Watch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected")
			return
		case id, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", id)
			flusher.Flush()
		}
	}
}

func (s *Server) resolveFormat(w http.ResponseWriter, requested *Format) (format.Format, bool) {
	var raw string
	if requested != nil {
		raw = string(*requested)
	}
	f, err := format.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return f, true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, markup string, f format.Format) {
	tree, err := s.Parser.Parse(r.Context(), markup)
	if err != nil {
		http.Error(w, fmt.Sprintf("Parse error: %v", err), http.StatusServiceUnavailable)
		s.Logger.Error("Parse failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	if err := format.Write(w, tree, f); err != nil {
		s.Logger.Error("Parse response encode failed", "error", err)
	}
}
