// Package version exposes build-time version metadata.
package version

// Set via -ldflags at build time, e.g.
// go build -ldflags "-X .../internal/version.Version=0.2.0".
var (
	// Version is the release version shown in the About dialog.
	Version = "0.1.0"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"

	// GitCommit is the source commit hash.
	GitCommit = "unknown"
)
