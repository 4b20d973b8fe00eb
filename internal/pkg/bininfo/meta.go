// Values in this file are injected at build time with
// -ldflags "-X exusiai.dev/equipsorter/internal/pkg/bininfo.Version=...".
// DO NOT EDIT THE VARIABLE NAMES UNLESS YOU KNOW WHAT YOU ARE DOING.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after [+] when available.
	Version = "v0.0.0-dev"

	// BuildTime is the time at which the binary was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
