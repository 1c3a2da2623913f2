package generator

import (
	"github.com/pboueri/supervisor/src"
)

const settingsGradleBody = `// Archivo settings.gradle generado automáticamente
include ':app'
`

// SettingsGradleGenerator writes settings.gradle. Complexity is ignored.
type SettingsGradleGenerator struct{}

func NewSettingsGradleGenerator() *SettingsGradleGenerator {
	return &SettingsGradleGenerator{}
}

func (g *SettingsGradleGenerator) Kind() src.TargetKind {
	return src.TargetSettingsGradle
}

func (g *SettingsGradleGenerator) Render(src.Complexity) (string, error) {
	return settingsGradleBody, nil
}
