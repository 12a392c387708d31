package display

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/chriso345/soya/errors"
)

// BuildVersion formats the version line of a program. Without an explicit
// version it falls back to the main module version recorded in the binary.
func BuildVersion(name, version string) string {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = inferred
	}
	version = "v" + strings.TrimPrefix(version, "v")

	if name == "" {
		return version
	}
	return fmt.Sprintf("%s %s", name, version)
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
