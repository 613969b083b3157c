// Package buildinfo holds version metadata injected at build time via -ldflags.
package buildinfo

//nolint:gochecknoglobals // Populated by the linker.
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
