package generator

import (
	"github.com/pboueri/supervisor/src"
)

const gradlePropertiesBody = `# Archivo gradle.properties generado automáticamente
org.gradle.jvmargs=-Xmx1536m
`

// GradlePropertiesGenerator writes gradle.properties. Complexity is ignored.
type GradlePropertiesGenerator struct{}

func NewGradlePropertiesGenerator() *GradlePropertiesGenerator {
	return &GradlePropertiesGenerator{}
}

func (g *GradlePropertiesGenerator) Kind() src.TargetKind {
	return src.TargetGradleProperties
}

func (g *GradlePropertiesGenerator) Render(src.Complexity) (string, error) {
	return gradlePropertiesBody, nil
}
