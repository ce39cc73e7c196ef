package visualizer

import _ "embed"

// Version is the release version, embedded from the VERSION file at the
// repository root. Consumers should trim surrounding whitespace.
//
//go:embed VERSION
var Version string
