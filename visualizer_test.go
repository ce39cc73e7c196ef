package visualizer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

func TestGenerateComposePipeline(t *testing.T) {
	p := visualizer.New()

	res, err := p.Generate(context.Background(), `version: "3.8"
services:
  web:
    image: nginx
    depends_on:
      - api
  api:
    image: node:20
`)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDockerCompose, res.Format)
	assert.Equal(t, domain.KindFlowchart, res.DiagramKind)
	assert.True(t, strings.HasPrefix(res.Markup, "flowchart TD"))
	assert.Contains(t, res.Markup, "svc_api -->|depends on| svc_web")
	assert.Empty(t, res.Issues)
}

func TestGenerateAttachesWarnings(t *testing.T) {
	p := visualizer.New()

	// A service without image or build is a warning, not an error, so
	// generation proceeds and the issue ships with the result.
	res, err := p.Generate(context.Background(), `version: "3.8"
services:
  mystery:
    restart: always
`)
	require.NoError(t, err)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, domain.SeverityWarning, res.Issues[0].Severity)
}

func TestGenerateMalformedJSON(t *testing.T) {
	p := visualizer.New()

	_, err := p.Generate(context.Background(),
		`{"version": "3.8", "services": {"web": {"image": "nginx" "ports": ["80:80"]}}}`)
	require.Error(t, err)

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Error())
}

func TestGenerateUnknownFormat(t *testing.T) {
	p := visualizer.New()

	_, err := p.Generate(context.Background(), "Just some prose about architecture diagrams.\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestGenerateValidationErrorBlocks(t *testing.T) {
	p := visualizer.New()

	// Compose requires a non-empty services map; its absence is an
	// error-severity issue and must stop generation.
	_, err := p.Generate(context.Background(), `version: "3.8"
services: {}
`)
	require.Error(t, err)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.NotEmpty(t, valErr.Issues)
	assert.Equal(t, domain.SeverityError, valErr.Issues[0].Severity)
}

func TestGenerateEmptyInput(t *testing.T) {
	p := visualizer.New()

	_, err := p.Generate(context.Background(), "   \n\t\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestGenerateHonorsContext(t *testing.T) {
	p := visualizer.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, "version: '3'\nservices:\n  web:\n    image: nginx\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestValidateReportsWithoutGenerating(t *testing.T) {
	p := visualizer.New()

	format, report, err := p.Validate(context.Background(), `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Broken: {}
`)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatCloudFormation, format)
	assert.True(t, report.Valid)
	require.NotEmpty(t, report.Issues)
}

func TestDetect(t *testing.T) {
	p := visualizer.New()

	assert.Equal(t, domain.FormatTerraform, p.Detect("resource \"aws_vpc\" \"main\" {\n  cidr_block = \"10.0.0.0/16\"\n}\n"))
	assert.Equal(t, domain.FormatUnknown, p.Detect("not infrastructure at all"))
}

func TestFormats(t *testing.T) {
	p := visualizer.New()
	assert.Equal(t, domain.AllFormats, p.Formats())
}

func TestGenerateIdempotentAcrossPipelines(t *testing.T) {
	src := "version: '3'\nservices:\n  db:\n    image: postgres\n"

	first, err := visualizer.New().Generate(context.Background(), src)
	require.NoError(t, err)
	second, err := visualizer.New().Generate(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, first.Markup, second.Markup)
}

func TestVersionEmbedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(visualizer.Version))
}
