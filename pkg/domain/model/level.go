package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/types"
)

// Level is the semantic version component to increment
type Level string

const (
	LevelMajor Level = "major"
	LevelMinor Level = "minor"
	LevelPatch Level = "patch"
)

// Levels lists the valid levels in priority order, highest first.
var Levels = []Level{LevelMajor, LevelMinor, LevelPatch}

func (l Level) String() string {
	return string(l)
}

// Valid reports whether l is one of Levels
func (l Level) Valid() bool {
	return slices.Contains(Levels, l)
}

// ParseLevel converts s into a Level and fails with ErrTagInvalidLevel when s
// is not one of the allowed values.
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.Valid() {
		return "", goerr.New(fmt.Sprintf("%q is not a valid level, must be one of: %s", s, allowedLevels()),
			goerr.T(types.ErrTagInvalidLevel),
			goerr.V("level", s),
			goerr.V("allowed", allowedLevels()),
		)
	}
	return level, nil
}

// ClassifyLevel derives the increment level from pull request labels.
//
// No labels means patch. A single label is taken verbatim. With several
// labels the highest priority recognized level wins, regardless of where it
// appears in labels. If none of several labels is recognized, the first one
// is reported as invalid.
func ClassifyLevel(labels []string) (Level, error) {
	switch len(labels) {
	case 0:
		return LevelPatch, nil
	case 1:
		return ParseLevel(labels[0])
	}

	for _, level := range Levels {
		if slices.Contains(labels, string(level)) {
			return level, nil
		}
	}

	return ParseLevel(labels[0])
}

func allowedLevels() string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
