package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/classify"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/parser"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/ports"
)

func parse(t *testing.T, format domain.Format, src string) *domain.Document {
	t.Helper()
	doc, err := parser.Parse(src)
	require.NoError(t, err)
	doc.Format = classify.Document(doc)
	require.Equal(t, format, doc.Format, "test input no longer classifies as %s", format)
	return doc
}

func generate(t *testing.T, format domain.Format, src string) string {
	t.Helper()
	res, err := NewRegistry().Generate(parse(t, format, src))
	require.NoError(t, err)
	require.Equal(t, format, res.Format)
	require.NotEmpty(t, res.Markup)
	return res.Markup
}

func TestRegistryCoversAllFormats(t *testing.T) {
	assert.Equal(t, domain.AllFormats, NewRegistry().Formats())
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	g, ok := r.Lookup(domain.FormatTerraform)
	require.True(t, ok)
	assert.Equal(t, domain.FormatTerraform, g.Format())

	_, ok = r.Lookup(domain.FormatUnknown)
	assert.False(t, ok)
}

func TestDiagramKinds(t *testing.T) {
	kinds := map[domain.Format]string{
		domain.FormatDockerCompose:  domain.KindFlowchart,
		domain.FormatKubernetes:     domain.KindFlowchart,
		domain.FormatTerraform:      domain.KindFlowchart,
		domain.FormatCloudFormation: domain.KindGraph,
		domain.FormatAzureARM:       domain.KindGraph,
		domain.FormatIBMCloud:       domain.KindGraph,
	}
	r := NewRegistry()
	for format, want := range kinds {
		g, ok := r.Lookup(format)
		require.True(t, ok, format)
		assert.Equal(t, want, g.Kind(), format)
	}
}

func TestGenerateNilDocument(t *testing.T) {
	_, err := NewRegistry().Generate(nil)
	require.Error(t, err)
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	doc := &domain.Document{Format: domain.FormatUnknown, Tree: map[string]any{}}
	_, err := NewRegistry().Generate(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

type panicGenerator struct{}

func (panicGenerator) Format() domain.Format { return domain.FormatDockerCompose }
func (panicGenerator) Kind() string          { return domain.KindFlowchart }
func (panicGenerator) Generate(*domain.Document) (string, error) {
	panic("unexpected nil while walking tree")
}

func TestGenerateRecoversPanics(t *testing.T) {
	r := &Registry{byFormat: map[domain.Format]ports.Generator{
		domain.FormatDockerCompose: panicGenerator{},
	}}
	doc := &domain.Document{Format: domain.FormatDockerCompose, Tree: map[string]any{}}

	res, err := r.Generate(doc)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "generate docker-compose diagram")
	assert.Contains(t, err.Error(), "unexpected nil")
}

func TestGenerateIdempotent(t *testing.T) {
	tests := []struct {
		format domain.Format
		src    string
	}{
		{domain.FormatDockerCompose, "version: '3'\nservices:\n  web:\n    image: nginx\n"},
		{domain.FormatKubernetes, "apiVersion: v1\nkind: Pod\nmetadata:\n  name: p\n"},
		{domain.FormatTerraform, "resource \"aws_vpc\" \"main\" {\n  cidr_block = \"10.0.0.0/16\"\n}\n"},
		{domain.FormatCloudFormation, "Resources:\n  VPC:\n    Type: AWS::EC2::VPC\n"},
		{domain.FormatAzureARM, `{"$schema": "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#", "resources": [{"type": "Microsoft.Web/sites", "name": "site"}]}`},
		{domain.FormatIBMCloud, `{"resources": [{"type": "ibm_is_vpc", "name": "vpc1"}]}`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			first := generate(t, tt.format, tt.src)
			second := generate(t, tt.format, tt.src)
			assert.Equal(t, first, second)
		})
	}
}
