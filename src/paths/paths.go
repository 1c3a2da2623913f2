package paths

import (
	"path/filepath"

	"github.com/pboueri/supervisor/src"
)

// Layout holds the relative segments a project is resolved from.
type Layout struct {
	ProjectDir       string
	BuildGradle      string
	Manifest         string
	SettingsGradle   string
	GradleProperties string
	LogFile          string
}

// DefaultLayout returns the fixed layout of a supervised project.
func DefaultLayout() Layout {
	return Layout{
		ProjectDir:       "MEDIO",
		BuildGradle:      "app/build.gradle",
		Manifest:         "app/src/main/AndroidManifest.xml",
		SettingsGradle:   "settings.gradle",
		GradleProperties: "gradle.properties",
		LogFile:          "supervision_log.txt",
	}
}

// ProjectPaths holds the absolute paths used for one run. It is computed once
// and passed by value.
type ProjectPaths struct {
	Root             string
	BuildGradle      string
	Manifest         string
	SettingsGradle   string
	GradleProperties string
	Log              string
}

// Resolve joins the layout onto workingDir. Empty layout fields fall back to
// the default layout.
func Resolve(workingDir string, layout Layout) ProjectPaths {
	def := DefaultLayout()
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}

	root := filepath.Join(workingDir, pick(layout.ProjectDir, def.ProjectDir))
	return ProjectPaths{
		Root:             root,
		BuildGradle:      filepath.Join(root, filepath.FromSlash(pick(layout.BuildGradle, def.BuildGradle))),
		Manifest:         filepath.Join(root, filepath.FromSlash(pick(layout.Manifest, def.Manifest))),
		SettingsGradle:   filepath.Join(root, filepath.FromSlash(pick(layout.SettingsGradle, def.SettingsGradle))),
		GradleProperties: filepath.Join(root, filepath.FromSlash(pick(layout.GradleProperties, def.GradleProperties))),
		Log:              filepath.Join(root, filepath.FromSlash(pick(layout.LogFile, def.LogFile))),
	}
}

// TargetPath returns the path of the file a target kind lives at.
func (p ProjectPaths) TargetPath(kind src.TargetKind) string {
	switch kind {
	case src.TargetBuildGradle:
		return p.BuildGradle
	case src.TargetManifest:
		return p.Manifest
	case src.TargetSettingsGradle:
		return p.SettingsGradle
	case src.TargetGradleProperties:
		return p.GradleProperties
	default:
		return ""
	}
}

// Targets returns every target bound to its path, in supervision order.
func (p ProjectPaths) Targets() []src.Target {
	targets := make([]src.Target, 0, len(src.TargetKinds))
	for _, kind := range src.TargetKinds {
		targets = append(targets, src.Target{Kind: kind, Path: p.TargetPath(kind)})
	}
	return targets
}
