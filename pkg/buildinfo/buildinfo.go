// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Version=...
	Version = "dev"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/ZhangCHW/fast-methods/pkg/buildinfo.Date=...
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns a single-line version string.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
