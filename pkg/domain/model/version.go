package model

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/types"
)

// PreReleaseChannel is the pre-release identifier put in front of the build number
const PreReleaseChannel = "alpha"

// VersionSet holds the versions computed by one run
type VersionSet struct {
	Old        string // Latest tag (or fallback tag) as found
	New        string // Old incremented by Level
	PreRelease string // New with the "-alpha.<build>" suffix
	Level      Level
}

// ParseVersion parses tag as a strict major.minor.patch semantic version.
// A single leading "v" is accepted since tags are commonly written that way.
func ParseVersion(tag string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, goerr.Wrap(err, fmt.Sprintf("%s is not a valid version", tag),
			goerr.T(types.ErrTagInvalidVersion),
			goerr.V("tag", tag),
		)
	}
	return v, nil
}

// IncrementVersion returns v incremented by level. Build metadata is dropped
// first so that the result always sorts after v.
func IncrementVersion(v *semver.Version, level Level) (semver.Version, error) {
	base, err := v.SetMetadata("")
	if err != nil {
		return semver.Version{}, goerr.Wrap(err, "failed to clear build metadata", goerr.V("version", v.String()))
	}

	switch level {
	case LevelMajor:
		return base.IncMajor(), nil
	case LevelMinor:
		return base.IncMinor(), nil
	case LevelPatch:
		return base.IncPatch(), nil
	default:
		_, err := ParseLevel(string(level))
		return semver.Version{}, err
	}
}

// PreReleaseVersion formats the pre-release version for newVersion and build
func PreReleaseVersion(newVersion string, build uint64) string {
	return fmt.Sprintf("%s-%s.%d", newVersion, PreReleaseChannel, build)
}

// NextVersions computes the full VersionSet for tag
func NextVersions(tag string, level Level, build uint64) (*VersionSet, error) {
	current, err := ParseVersion(tag)
	if err != nil {
		return nil, err
	}

	next, err := IncrementVersion(current, level)
	if err != nil {
		return nil, err
	}

	newVersion := next.String()
	return &VersionSet{
		Old:        tag,
		New:        newVersion,
		PreRelease: PreReleaseVersion(newVersion, build),
		Level:      level,
	}, nil
}
