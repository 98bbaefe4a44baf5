package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

var (
	BuildDate    = "unknown"
	BuildVersion = "0.0.0"
	Commit       = "unknown"
)

// BaseVersion returns the major.minor version of the binary.
func BaseVersion() string {
	v, err := semver.NewVersion(BuildVersion)
	if err != nil {
		return BuildDate
	}

	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Full returns the complete version string used by the root command.
func Full() string {
	return fmt.Sprintf("%s (%s) on %s", BuildVersion, Commit, BuildDate)
}
