// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/example/trimmargin/internal/buildinfo.Version=1.2.3 \
//	    -X github.com/example/trimmargin/internal/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/example/trimmargin/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

var (
	// Version is the semantic version without a leading "v".
	Version = "0.0.0"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template. --version prints the bare
// version followed by a single newline.
func Template() string {
	return "{{.Version}}\n"
}
