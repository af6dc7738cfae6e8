// Package version carries build metadata stamped in at link time.
package version

// Overridden via -ldflags "-X slidebridge/internal/shared/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
