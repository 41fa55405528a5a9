package version

import "runtime/debug"

// Version is set at build time with
// -ldflags "-X rcloneexplorer/internal/version.Version=...".
var Version = "dev"

// String returns Version, falling back to the module version recorded in
// the build info for `go install` builds.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
