// Package version reports build information for the perfume binary.
// Release builds inject the variables below via ldflags; development builds
// fall back to the VCS stamp the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var resolveOnce sync.Once

// resolve fills GitCommit and BuildDate from the embedded build info when
// ldflags left them unset.
func resolve() {
	resolveOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if GitCommit == "unknown" && s.Value != "" {
					GitCommit = s.Value
				}
			case "vcs.time":
				if BuildDate == "unknown" && s.Value != "" {
					BuildDate = s.Value
				}
			}
		}
	})
}

// Info returns a one-line version string for `perfume version`.
func Info() string {
	resolve()
	return fmt.Sprintf("Perfume %s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, runtime.Version())
}

// Short returns the release version, "dev" for local builds.
func Short() string {
	return Version
}

// Map is the version block of the health response.
func Map() map[string]string {
	resolve()
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
	}
}
