package visualizer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/classify"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/diagram"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/logging"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/parser"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/validate"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// Pipeline is the high-level entry point for the library. It bundles
// the parse, classify, validate and generate stages behind a small API.
// A Pipeline holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	registry *diagram.Registry
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom structured logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New initializes a Pipeline with the built-in generator set.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{registry: diagram.NewRegistry()}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	return p
}

// Formats lists the supported input formats.
func (p *Pipeline) Formats() []domain.Format {
	return p.registry.Formats()
}

// Detect classifies raw text without validating or generating. It never
// fails: unparseable or unrecognized input comes back as FormatUnknown.
func (p *Pipeline) Detect(text string) domain.Format {
	return classify.Detect(text)
}

// Parse decodes raw text into a structural document and stamps it with
// the classified format.
func (p *Pipeline) Parse(text string) (*domain.Document, error) {
	doc, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	doc.Format = classify.Document(doc)
	return doc, nil
}

// Validate parses, classifies and checks the document, returning the
// classified format alongside the issue report. Parse failures are
// returned as an error; validation findings, the unsupported-format
// case included, land in the report.
func (p *Pipeline) Validate(ctx context.Context, text string) (domain.Format, domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.FormatUnknown, domain.Report{}, err
	}
	doc, err := p.Parse(text)
	if err != nil {
		return domain.FormatUnknown, domain.Report{}, err
	}
	return doc.Format, validate.Document(doc), nil
}

// Generate runs the full pipeline on raw text: parse, classify, refuse
// unknown formats, validate, and render Mermaid markup. Validation
// errors block generation and surface as *domain.ValidationError;
// warnings ride along on the result. The context is checked between
// stages; the computation itself is synchronous.
func (p *Pipeline) Generate(ctx context.Context, text string) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := p.Parse(text)
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	if !doc.Format.Known() {
		return nil, fmt.Errorf("%w: input does not match any supported format", domain.ErrUnsupportedFormat)
	}

	report := validate.Document(doc)
	if !report.Valid {
		p.logger.Debug("validation blocked generation",
			"format", doc.Format, "issues", len(report.Issues))
		return nil, &domain.ValidationError{Issues: report.Issues}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := p.registry.Generate(doc)
	if err != nil {
		p.logger.Debug("generation failed", "format", doc.Format, "error", err)
		return nil, err
	}
	res.Issues = report.Issues

	p.logger.Debug("diagram generated",
		"format", res.Format, "kind", res.DiagramKind,
		"bytes", len(res.Markup), "warnings", len(res.Issues))
	return res, nil
}
