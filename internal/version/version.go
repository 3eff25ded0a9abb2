// Package version exposes build metadata injected via ldflags.
package version

// Populated at build time with
// -ldflags "-X .../internal/version.Version=… -X .../internal/version.Commit=…".
var (
	Version = "dev"
	Commit  = "unknown"
)
