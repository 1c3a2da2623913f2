package generator

import (
	"github.com/pboueri/supervisor/src"
)

const (
	androidNamespace = "http://schemas.android.com/apk/res/android"
	manifestPackage  = "com.example.app"
)

func androidName(value string) Attr {
	return Attr{Name: "android:name", Value: value}
}

// ManifestGenerator writes app/src/main/AndroidManifest.xml.
type ManifestGenerator struct{}

func NewManifestGenerator() *ManifestGenerator {
	return &ManifestGenerator{}
}

func (g *ManifestGenerator) Kind() src.TargetKind {
	return src.TargetManifest
}

func (g *ManifestGenerator) Render(complexity src.Complexity) (string, error) {
	launcher := NewElement("activity", androidName(".MainActivity")).Add(
		NewElement("intent-filter").Add(
			NewElement("action", androidName("android.intent.action.MAIN")),
			NewElement("category", androidName("android.intent.category.LAUNCHER")),
		),
	)

	application := NewElement("application").Add(launcher)
	if complexity == src.ComplexityComplex {
		application.Add(NewElement("activity", androidName(".SettingsActivity")))
	}

	manifest := NewElement("manifest",
		Attr{Name: "xmlns:android", Value: androidNamespace},
		Attr{Name: "package", Value: manifestPackage},
	).Add(application)

	return XMLDocument(manifest), nil
}
