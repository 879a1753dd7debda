// Package version exposes the build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
)

// Overridden at link time:
//
//	go build -ldflags "-X github.com/teranos/cxxbind/version.Version=v1.0.0 \
//	  -X github.com/teranos/cxxbind/version.CommitHash=$(git rev-parse HEAD) \
//	  -X github.com/teranos/cxxbind/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info is the resolved build information of the running binary.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get resolves the build information, adding the runtime facts the linker
// cannot know.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form used by the version command.
func (i Info) String() string {
	return fmt.Sprintf("cxxbind %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	const abbrev = 7
	if len(i.CommitHash) > abbrev {
		return i.CommitHash[:abbrev]
	}
	return i.CommitHash
}
