package generator

import (
	"github.com/pboueri/supervisor/src"
)

const buildGradleTemplate = `// Archivo build.gradle generado automáticamente
apply plugin: 'com.android.application'
{{if .Complex -}}
android {
    compileSdkVersion {{.CompileSdk}}
    defaultConfig {
        applicationId "{{.ApplicationID}}"
        minSdkVersion {{.MinSdk}}
        targetSdkVersion {{.TargetSdk}}
        versionCode {{.VersionCode}}
        versionName "{{.VersionName}}"
    }
    buildTypes {
        release {
            minifyEnabled false
            proguardFiles getDefaultProguardFile('proguard-android-optimize.txt'), 'proguard-rules.pro'
        }
    }
}
dependencies {
{{- range .Dependencies}}
    implementation '{{.}}'
{{- end}}
}
{{else -}}
android { compileSdkVersion {{.CompileSdk}} }
{{end -}}
`

type buildGradleData struct {
	Complex       bool
	CompileSdk    int
	MinSdk        int
	TargetSdk     int
	ApplicationID string
	VersionCode   int
	VersionName   string
	Dependencies  []string
}

// BuildGradleGenerator writes app/build.gradle.
type BuildGradleGenerator struct{}

func NewBuildGradleGenerator() *BuildGradleGenerator {
	return &BuildGradleGenerator{}
}

func (g *BuildGradleGenerator) Kind() src.TargetKind {
	return src.TargetBuildGradle
}

func (g *BuildGradleGenerator) Render(complexity src.Complexity) (string, error) {
	return executeTemplate("build.gradle", buildGradleTemplate, buildGradleData{
		Complex:       complexity == src.ComplexityComplex,
		CompileSdk:    30,
		MinSdk:        21,
		TargetSdk:     30,
		ApplicationID: "com.example.app",
		VersionCode:   1,
		VersionName:   "1.0",
		Dependencies:  []string{"androidx.appcompat:appcompat:1.2.0"},
	})
}
