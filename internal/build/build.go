// Package build holds version information injected at link time.
package build

// Version is the msb release. Overwritten with
// -ldflags "-X go.trai.ch/msb/internal/build.Version=v1.2.3".
var Version = "dev"

// Commit is the source revision, empty for local builds.
var Commit = ""

// String returns the version, followed by the commit when known.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
