// Package http exposes the analysis pipeline over a small JSON API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/logging"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

//go:embed openapi.yaml
var openAPISpec []byte

// DefaultMaxBodyBytes bounds request bodies; documents larger than this
// are rejected with 413 before any parsing happens.
const DefaultMaxBodyBytes = 2 << 20

// Pipeline is the slice of the engine the HTTP adapter needs.
type Pipeline interface {
	Formats() []domain.Format
	Detect(text string) domain.Format
	Validate(ctx context.Context, text string) (domain.Format, domain.Report, error)
	Generate(ctx context.Context, text string) (*domain.Result, error)
}

var _ Pipeline = (*visualizer.Pipeline)(nil)

// Server holds the handlers behind the router.
type Server struct {
	pipeline     Pipeline
	logger       *slog.Logger
	metrics      *metrics
	maxBodyBytes int64
	apiVersion   string
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxBodyBytes overrides the request body ceiling.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewHandler creates the HTTP handler for the pipeline. The embedded
// OpenAPI document is loaded and validated here so a contract drift
// fails server startup instead of surfacing at request time.
func NewHandler(pipeline Pipeline, opts ...Option) (http.Handler, error) {
	server := &Server{
		pipeline:     pipeline,
		logger:       logging.NewNop(),
		metrics:      newMetrics(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("failed to validate OpenAPI spec: %w", err)
	}
	server.apiVersion = doc.Info.Version

	r := chi.NewRouter()

	r.Get("/healthz", server.getHealth)
	r.Get("/info", server.getInfo)
	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openAPISpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/formats", server.listFormats)
		r.Post("/detect", server.detectFormat)
		r.Post("/validate", server.validateDocument)
		r.Post("/diagram", server.generateDiagram)
	})

	return enableCORS(r), nil
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
    <title>ArchViz API Documentation</title>
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

type documentRequest struct {
	Content string `json:"content"`
}

type diagramResponse struct {
	Success     bool           `json:"success"`
	Format      domain.Format  `json:"format"`
	DiagramKind string         `json:"diagramKind"`
	Markup      string         `json:"markup"`
	Issues      []domain.Issue `json:"issues"`
}

type detectResponse struct {
	Success bool          `json:"success"`
	Format  domain.Format `json:"format"`
}

type validateResponse struct {
	Success bool           `json:"success"`
	Format  domain.Format  `json:"format"`
	Valid   bool           `json:"isValid"`
	Issues  []domain.Issue `json:"issues"`
}

type formatsResponse struct {
	Success bool     `json:"success"`
	Formats []string `json:"formats"`
}

type errorResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Issues  []domain.Issue `json:"issues,omitempty"`
}

// generateDiagram handles the POST /api/v1/diagram request.
func (s *Server) generateDiagram(w http.ResponseWriter, r *http.Request) {
	content, ok := s.decodeContent(w, r)
	if !ok {
		return
	}

	start := time.Now()
	res, err := s.pipeline.Generate(r.Context(), content)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.failures.WithLabelValues(stageOf(err)).Inc()
		s.logger.Warn("diagram generation failed", "error", err)
		s.writeError(w, err)
		return
	}
	s.metrics.generated.WithLabelValues(string(res.Format)).Inc()

	issues := res.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	s.writeJSON(w, http.StatusOK, diagramResponse{
		Success:     true,
		Format:      res.Format,
		DiagramKind: res.DiagramKind,
		Markup:      res.Markup,
		Issues:      issues,
	})
}

// detectFormat handles the POST /api/v1/detect request. Detection never
// fails: unrecognized input reports the unknown format.
func (s *Server) detectFormat(w http.ResponseWriter, r *http.Request) {
	content, ok := s.decodeContent(w, r)
	if !ok {
		return
	}
	format := s.pipeline.Detect(content)
	s.writeJSON(w, http.StatusOK, detectResponse{Success: true, Format: format})
}

// validateDocument handles the POST /api/v1/validate request.
func (s *Server) validateDocument(w http.ResponseWriter, r *http.Request) {
	content, ok := s.decodeContent(w, r)
	if !ok {
		return
	}

	format, report, err := s.pipeline.Validate(r.Context(), content)
	if err != nil {
		s.metrics.failures.WithLabelValues(stageOf(err)).Inc()
		s.logger.Warn("validation failed", "error", err)
		s.writeError(w, err)
		return
	}

	issues := report.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	s.writeJSON(w, http.StatusOK, validateResponse{
		Success: true,
		Format:  format,
		Valid:   report.Valid,
		Issues:  issues,
	})
}

// listFormats handles the GET /api/v1/formats request.
func (s *Server) listFormats(w http.ResponseWriter, r *http.Request) {
	formats := s.pipeline.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	s.writeJSON(w, http.StatusOK, formatsResponse{Success: true, Formats: names})
}

// getHealth handles the GET /healthz request.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getInfo handles the GET /info request.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "archviz-http",
		"version":     strings.TrimSpace(visualizer.Version),
		"api_version": s.apiVersion,
	})
}

// decodeContent reads the request body into the shared document
// envelope, answering 413 or 400 itself when the body is oversized or
// not the expected JSON.
func (s *Server) decodeContent(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var body documentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.metrics.failures.WithLabelValues("read").Inc()
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("request body exceeds the %d byte limit", s.maxBodyBytes),
			})
			return "", false
		}
		s.logger.Warn("invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request body: expected a JSON object with a content field",
		})
		return "", false
	}
	return body.Content, true
}

// writeError maps pipeline errors onto HTTP statuses: malformed input
// is 400, documents that parse but cannot produce a diagram are 422,
// anything unexpected stays 500. Error strings are displayable
// diagnostics, never stack traces.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var parseErr *domain.ParseError
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrEmptyDocument), errors.As(err, &parseErr):
		status = http.StatusBadRequest
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		resp.Issues = validationErr.Issues
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// stageOf names the pipeline stage an error came from, for the failure
// counter's stage label.
func stageOf(err error) string {
	var parseErr *domain.ParseError
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrEmptyDocument), errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &validationErr):
		return "validate"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "detect"
	default:
		return "generate"
	}
}
