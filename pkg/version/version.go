// Package version reports the build version of the footprint binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with
//
//	-ldflags "-X github.com/rshade/footprint/pkg/version.version=v1.2.3 -X ...commit=abc123 -X ...buildDate=2026-01-02"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// GetVersion returns the build version. Binaries installed with go install
// report their module version when no version was linked in.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// GetCommit returns the commit the binary was built from, if known.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build date, if known.
func GetBuildDate() string {
	return buildDate
}

// String returns the version with commit and build date when they are known.
func String() string {
	s := GetVersion()
	if commit != "" {
		s += fmt.Sprintf(" (commit %s", commit)
		if buildDate != "" {
			s += ", built " + buildDate
		}
		s += ")"
	}
	return s
}
