// Package version reports the bytecodec build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/bytecodec/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/bytecodec/internal/version.Commit=abc1234"
//
// Otherwise they come from the module and VCS info Go embeds in the binary.
var (
	Version = ""
	Commit  = ""
)

const shortCommitLen = 7

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo takes the module version recorded by `go install` and
// the revision recorded by `go build` inside a git checkout. Values set via
// ldflags win.
func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit != "" {
		return
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return
	}

	if len(revision) > shortCommitLen {
		revision = revision[:shortCommitLen]
	}
	Commit = revision
	if dirty {
		Commit += "-dirty"
	}
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
