// Package source loads raw document text from local paths, remote URLs,
// or standard input so callers can feed it to the analysis pipeline.
package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
)

// DefaultMaxBytes bounds how much input Load accepts. Infrastructure
// documents are small; anything larger is almost certainly not one.
const DefaultMaxBytes = 2 << 20

// Loader reads documents through an afs virtual filesystem, which
// resolves plain paths as well as scheme-qualified URLs (file://,
// mem://, s3://, ...). The location "-" reads standard input.
type Loader struct {
	fs       afs.Service
	maxBytes int
	stdin    io.Reader
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxBytes overrides the input size ceiling.
func WithMaxBytes(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// WithStdin overrides the reader behind the "-" location. Tests use it
// to avoid touching the real standard input.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// New creates a Loader backed by the default afs service.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:       afs.New(),
		maxBytes: DefaultMaxBytes,
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the document at location and returns its text. It fails
// when the content exceeds the configured size ceiling, before any of
// it reaches the pipeline.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("location cannot be empty")
	}

	if location == "-" {
		data, err := io.ReadAll(io.LimitReader(l.stdin, int64(l.maxBytes)+1))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(data) > l.maxBytes {
			return "", fmt.Errorf("stdin exceeds the %d byte input limit", l.maxBytes)
		}
		return string(data), nil
	}

	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", location, err)
	}
	if len(data) > l.maxBytes {
		return "", fmt.Errorf("%s exceeds the %d byte input limit (%d bytes)", location, l.maxBytes, len(data))
	}
	return string(data), nil
}
