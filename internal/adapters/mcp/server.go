// Package mcp exposes the analysis pipeline as a Model Context Protocol
// server, over stdio or SSE.
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

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/logging"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// DiagramResponse aligns with the HTTP API schema so MCP clients and
// HTTP clients see the same shape.
type DiagramResponse struct {
	Format      string         `json:"format" jsonschema_description:"Detected document format"`
	DiagramKind string         `json:"diagramKind" jsonschema_description:"Mermaid rendering mode, flowchart or graph"`
	Markup      string         `json:"markup" jsonschema_description:"Mermaid diagram markup"`
	Issues      []domain.Issue `json:"issues" jsonschema_description:"Validation warnings attached to the result"`
}

// DetectResponse reports the classified format of a document.
type DetectResponse struct {
	Format string `json:"format" jsonschema_description:"Detected document format, unknown when nothing matches"`
}

// ValidateResponse reports the findings of a validation pass.
type ValidateResponse struct {
	Format  string         `json:"format" jsonschema_description:"Detected document format"`
	IsValid bool           `json:"isValid" jsonschema_description:"False when any error-severity issue was found"`
	Issues  []domain.Issue `json:"issues" jsonschema_description:"All findings, errors and warnings"`
}

// Pipeline is the slice of the engine the MCP adapter needs.
type Pipeline interface {
	Formats() []domain.Format
	Detect(text string) domain.Format
	Validate(ctx context.Context, text string) (domain.Format, domain.Report, error)
	Generate(ctx context.Context, text string) (*domain.Result, error)
}

var _ Pipeline = (*visualizer.Pipeline)(nil)

// Server wraps the pipeline and exposes it as an MCP server.
type Server struct {
	pipeline  Pipeline
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for tool-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(pipeline Pipeline, opts ...Option) *Server {
	s := &Server{
		pipeline:  pipeline,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("archviz-mcp", strings.TrimSpace(visualizer.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it
// down gracefully when the context is canceled.
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
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
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
	// TOOL: generate_diagram
	generateTool := mcp.NewTool("generate_diagram",
		mcp.WithDescription("Turn an infrastructure-as-code document (Docker Compose, Kubernetes, Terraform, CloudFormation, Azure ARM, IBM Cloud) into Mermaid diagram markup."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Raw document text")),
		mcp.WithOutputSchema[DiagramResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerateDiagram))

	// TOOL: detect_format
	detectTool := mcp.NewTool("detect_format",
		mcp.WithDescription("Classify a document without validating it. Reports unknown when no supported format matches."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Raw document text")),
		mcp.WithOutputSchema[DetectResponse](),
	)
	s.mcpServer.AddTool(detectTool, mcp.NewStructuredToolHandler(s.handleDetectFormat))

	// TOOL: validate_document
	validateTool := mcp.NewTool("validate_document",
		mcp.WithDescription("Validate a document and report errors and warnings without generating a diagram."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Raw document text")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidateDocument))

	// TOOL: list_formats
	s.mcpServer.AddTool(mcp.NewTool("list_formats",
		mcp.WithDescription("List the supported document formats in detection order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := s.formatsJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list formats failed: %v", err)), nil
		}
		return mcp.NewToolResultText(data), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleGenerateDiagram(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DiagramResponse, error) {
	content, _ := args["content"].(string)

	res, err := s.pipeline.Generate(ctx, content)
	if err != nil {
		s.logger.Warn("MCP generate_diagram failed", "error", err)
		return DiagramResponse{}, fmt.Errorf("generate failed: %w", err)
	}

	issues := res.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	return DiagramResponse{
		Format:      string(res.Format),
		DiagramKind: res.DiagramKind,
		Markup:      res.Markup,
		Issues:      issues,
	}, nil
}

func (s *Server) handleDetectFormat(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DetectResponse, error) {
	content, _ := args["content"].(string)
	return DetectResponse{Format: string(s.pipeline.Detect(content))}, nil
}

func (s *Server) handleValidateDocument(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	content, _ := args["content"].(string)

	format, report, err := s.pipeline.Validate(ctx, content)
	if err != nil {
		s.logger.Warn("MCP validate_document failed", "error", err)
		return ValidateResponse{}, fmt.Errorf("validate failed: %w", err)
	}

	issues := report.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	return ValidateResponse{
		Format:  string(format),
		IsValid: report.Valid,
		Issues:  issues,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: archviz://formats
	s.mcpServer.AddResource(mcp.NewResource("archviz://formats", "Supported Document Formats",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := s.formatsJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to list formats: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "archviz://formats",
				MIMEType: "application/json",
				Text:     data,
			},
		}, nil
	})
}

func (s *Server) formatsJSON() (string, error) {
	formats := s.pipeline.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
