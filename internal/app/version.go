package app

import "fmt"

// Build metadata, stamped with
// -ldflags "-X github.com/noah-vh/airbour-web-sub001/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string logged at startup.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildTime)
}
