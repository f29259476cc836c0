// Package version provides build information for curryhoward.
package version

import "strings"

var (
	// Version is the semantic version (injected at build time via ldflags).
	Version = "dev"
	// Commit is the git commit hash (injected at build time via ldflags).
	Commit = "none"
	// BuildDate is the build timestamp (injected at build time via ldflags).
	BuildDate = "unknown"
)

// String returns formatted version information.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}

// Short condenses a `git describe --dirty` version such as
// "v0.1.0-20-ga961617-dirty" into "v0.1.0-a961617-20". Tagged builds and
// versions not produced by git describe are returned as is.
func Short() string {
	v := strings.TrimSuffix(Version, "-dirty")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return v
	}

	n := len(parts)
	count, hash := parts[n-2], parts[n-1]
	if !strings.HasPrefix(hash, "g") || strings.Trim(count, "0123456789") != "" {
		return v
	}

	commit := Commit
	if commit == "" || commit == "none" {
		commit = strings.TrimPrefix(hash, "g")
	}
	tag := strings.Join(parts[:n-2], "-")
	return tag + "-" + commit + "-" + count
}
