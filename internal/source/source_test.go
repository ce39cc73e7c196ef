package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/ports"
)

var _ ports.SourceLoader = (*Loader)(nil)

func TestLoadFromMemoryURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	content := "version: '3'\nservices:\n  web:\n    image: nginx\n"
	err := fs.Upload(ctx, "mem://localhost/docs/compose.yaml", file.DefaultFileOsMode, strings.NewReader(content))
	require.NoError(t, err)

	loader := New()
	got, err := loader.Load(ctx, "mem://localhost/docs/compose.yaml")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadFromLocalPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tf")
	content := "resource \"aws_vpc\" \"main\" {}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := New()
	got, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadFromStdin(t *testing.T) {
	loader := New(WithStdin(strings.NewReader("Resources: {}\n")))
	got, err := loader.Load(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "Resources: {}\n", got)
}

func TestLoadEnforcesSizeCeiling(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	err := fs.Upload(ctx, "mem://localhost/docs/huge.yaml", file.DefaultFileOsMode, strings.NewReader(strings.Repeat("x", 64)))
	require.NoError(t, err)

	loader := New(WithMaxBytes(16))
	_, err = loader.Load(ctx, "mem://localhost/docs/huge.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte input limit")
}

func TestLoadStdinEnforcesSizeCeiling(t *testing.T) {
	loader := New(WithMaxBytes(8), WithStdin(strings.NewReader(strings.Repeat("y", 32))))
	_, err := loader.Load(context.Background(), "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte input limit")
}

func TestLoadMissingLocation(t *testing.T) {
	loader := New()
	_, err := loader.Load(context.Background(), "mem://localhost/docs/absent.yaml")
	assert.Error(t, err)
}

func TestLoadEmptyLocation(t *testing.T) {
	loader := New()
	_, err := loader.Load(context.Background(), "")
	assert.Error(t, err)
}
