package src

import (
	"fmt"
	"strings"
)

// Complexity selects which fixed template body a generator emits.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityComplex Complexity = "complex"
)

// ParseComplexity accepts the English names and the legacy "complejo" spelling.
func ParseComplexity(s string) (Complexity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return ComplexitySimple, nil
	case "complex", "complejo":
		return ComplexityComplex, nil
	default:
		return "", fmt.Errorf("unknown complexity: %q (expected simple or complex)", s)
	}
}

// TargetKind identifies one of the four configuration files a project must carry.
type TargetKind string

const (
	TargetBuildGradle      TargetKind = "build-gradle"
	TargetManifest         TargetKind = "manifest"
	TargetSettingsGradle   TargetKind = "settings-gradle"
	TargetGradleProperties TargetKind = "gradle-properties"
)

// TargetKinds is the order in which targets are supervised.
var TargetKinds = []TargetKind{
	TargetBuildGradle,
	TargetManifest,
	TargetSettingsGradle,
	TargetGradleProperties,
}

// FileName returns the base name of the file a target kind produces.
func (k TargetKind) FileName() string {
	switch k {
	case TargetBuildGradle:
		return "build.gradle"
	case TargetManifest:
		return "AndroidManifest.xml"
	case TargetSettingsGradle:
		return "settings.gradle"
	case TargetGradleProperties:
		return "gradle.properties"
	default:
		return string(k)
	}
}

// ParseTargetKind resolves a kind by its name or by its file name.
func ParseTargetKind(s string) (TargetKind, error) {
	for _, k := range TargetKinds {
		if s == string(k) || s == k.FileName() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown target: %s", s)
}

// Target is a target kind bound to its resolved path.
type Target struct {
	Kind TargetKind
	Path string
}

// TargetStatus is the outcome of supervising one target.
type TargetStatus string

const (
	TargetStatusPresent TargetStatus = "present"
	TargetStatusMissing TargetStatus = "missing"
)
