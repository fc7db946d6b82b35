package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NormalizeVersion parses a semantic version, tolerating a leading "v" and
// missing minor/patch parts, and returns it in canonical X.Y.Z form.
func NormalizeVersion(version string) (string, error) {
	v, err := parseSemver(version)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v.String(), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
