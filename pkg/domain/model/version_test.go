package model_test

import (
	"fmt"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
)

func TestNextVersions(t *testing.T) {
	tests := []struct {
		tag   string
		level model.Level
		build uint64
		want  model.VersionSet
	}{
		{
			tag: "1.2.3", level: model.LevelMinor, build: 7,
			want: model.VersionSet{Old: "1.2.3", New: "1.3.0", PreRelease: "1.3.0-alpha.7", Level: model.LevelMinor},
		},
		{
			tag: "1.2.3", level: model.LevelMajor, build: 0,
			want: model.VersionSet{Old: "1.2.3", New: "2.0.0", PreRelease: "2.0.0-alpha.0", Level: model.LevelMajor},
		},
		{
			tag: "1.2.3", level: model.LevelPatch, build: 42,
			want: model.VersionSet{Old: "1.2.3", New: "1.2.4", PreRelease: "1.2.4-alpha.42", Level: model.LevelPatch},
		},
		{
			tag: "v0.9.9", level: model.LevelPatch, build: 1,
			want: model.VersionSet{Old: "v0.9.9", New: "0.9.10", PreRelease: "0.9.10-alpha.1", Level: model.LevelPatch},
		},
		{
			tag: "1.2.3+build.5", level: model.LevelPatch, build: 3,
			want: model.VersionSet{Old: "1.2.3+build.5", New: "1.2.4", PreRelease: "1.2.4-alpha.3", Level: model.LevelPatch},
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.tag, tt.level), func(t *testing.T) {
			got, err := model.NextVersions(tt.tag, tt.level, tt.build)
			gt.NoError(t, err)
			gt.Equal(t, *got, tt.want)
		})
	}
}

func TestNextVersions_InvalidTag(t *testing.T) {
	for _, tag := range []string{"not-a-version", "1.2", "", "1.2.3.4", "vv1.2.3"} {
		t.Run(tag, func(t *testing.T) {
			_, err := model.NextVersions(tag, model.LevelPatch, 0)
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, types.ErrTagInvalidVersion))
			gt.String(t, err.Error()).Contains(tag + " is not a valid version")
		})
	}
}

func TestNextVersions_InvalidLevel(t *testing.T) {
	_, err := model.NextVersions("1.0.0", model.Level("huge"), 0)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagInvalidLevel))
}

func TestIncrementVersion_AlwaysGreater(t *testing.T) {
	versions := []string{"0.0.0", "0.0.1", "0.1.0", "1.0.0", "1.2.3", "10.20.30", "1.0.0-rc.1", "2.3.4-beta", "1.2.3+meta"}

	for _, s := range versions {
		for _, level := range model.Levels {
			t.Run(s+"/"+level.String(), func(t *testing.T) {
				current, err := model.ParseVersion(s)
				gt.NoError(t, err)

				next, err := model.IncrementVersion(current, level)
				gt.NoError(t, err)
				gt.True(t, next.GreaterThan(current))
			})
		}
	}
}

func TestIncrementVersion_ResetsLowerComponents(t *testing.T) {
	current := semver.MustParse("3.5.7")

	major, err := model.IncrementVersion(current, model.LevelMajor)
	gt.NoError(t, err)
	gt.Equal(t, major.String(), "4.0.0")

	minor, err := model.IncrementVersion(current, model.LevelMinor)
	gt.NoError(t, err)
	gt.Equal(t, minor.String(), "3.6.0")

	patch, err := model.IncrementVersion(current, model.LevelPatch)
	gt.NoError(t, err)
	gt.Equal(t, patch.String(), "3.5.8")
}

func TestPreReleaseVersion(t *testing.T) {
	gt.Equal(t, model.PreReleaseVersion("1.3.0", 7), "1.3.0-alpha.7")
	gt.Equal(t, model.PreReleaseVersion("2.0.0", 0), "2.0.0-alpha.0")
}
