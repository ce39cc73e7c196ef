package ports

import "context"

// SourceLoader fetches raw document text from a location. Locations are
// scheme-qualified URLs or plain filesystem paths; implementations
// decide which schemes they support.
type SourceLoader interface {
	Load(ctx context.Context, location string) (string, error)
}
