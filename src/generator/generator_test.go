package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pboueri/supervisor/src"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wantBuildGradleComplex = "// Archivo build.gradle generado automáticamente\n" +
		"apply plugin: 'com.android.application'\n" +
		"android {\n" +
		"    compileSdkVersion 30\n" +
		"    defaultConfig {\n" +
		"        applicationId \"com.example.app\"\n" +
		"        minSdkVersion 21\n" +
		"        targetSdkVersion 30\n" +
		"        versionCode 1\n" +
		"        versionName \"1.0\"\n" +
		"    }\n" +
		"    buildTypes {\n" +
		"        release {\n" +
		"            minifyEnabled false\n" +
		"            proguardFiles getDefaultProguardFile('proguard-android-optimize.txt'), 'proguard-rules.pro'\n" +
		"        }\n" +
		"    }\n" +
		"}\n" +
		"dependencies {\n" +
		"    implementation 'androidx.appcompat:appcompat:1.2.0'\n" +
		"}\n"

	wantBuildGradleSimple = "// Archivo build.gradle generado automáticamente\n" +
		"apply plugin: 'com.android.application'\n" +
		"android { compileSdkVersion 30 }\n"

	wantManifestComplex = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<manifest xmlns:android=\"http://schemas.android.com/apk/res/android\" package=\"com.example.app\">\n" +
		"    <application>\n" +
		"        <activity android:name=\".MainActivity\">\n" +
		"            <intent-filter>\n" +
		"                <action android:name=\"android.intent.action.MAIN\" />\n" +
		"                <category android:name=\"android.intent.category.LAUNCHER\" />\n" +
		"            </intent-filter>\n" +
		"        </activity>\n" +
		"        <activity android:name=\".SettingsActivity\" />\n" +
		"    </application>\n" +
		"</manifest>\n"

	wantManifestSimple = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<manifest xmlns:android=\"http://schemas.android.com/apk/res/android\" package=\"com.example.app\">\n" +
		"    <application>\n" +
		"        <activity android:name=\".MainActivity\">\n" +
		"            <intent-filter>\n" +
		"                <action android:name=\"android.intent.action.MAIN\" />\n" +
		"                <category android:name=\"android.intent.category.LAUNCHER\" />\n" +
		"            </intent-filter>\n" +
		"        </activity>\n" +
		"    </application>\n" +
		"</manifest>\n"

	wantSettingsGradle = "// Archivo settings.gradle generado automáticamente\n" +
		"include ':app'\n"

	wantGradleProperties = "# Archivo gradle.properties generado automáticamente\n" +
		"org.gradle.jvmargs=-Xmx1536m\n"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		gen        Generator
		complexity src.Complexity
		want       string
	}{
		{"build.gradle complex", NewBuildGradleGenerator(), src.ComplexityComplex, wantBuildGradleComplex},
		{"build.gradle simple", NewBuildGradleGenerator(), src.ComplexitySimple, wantBuildGradleSimple},
		{"manifest complex", NewManifestGenerator(), src.ComplexityComplex, wantManifestComplex},
		{"manifest simple", NewManifestGenerator(), src.ComplexitySimple, wantManifestSimple},
		{"settings.gradle complex", NewSettingsGradleGenerator(), src.ComplexityComplex, wantSettingsGradle},
		{"settings.gradle simple", NewSettingsGradleGenerator(), src.ComplexitySimple, wantSettingsGradle},
		{"gradle.properties complex", NewGradlePropertiesGenerator(), src.ComplexityComplex, wantGradleProperties},
		{"gradle.properties simple", NewGradlePropertiesGenerator(), src.ComplexitySimple, wantGradleProperties},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.gen.Render(tt.complexity)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_WritesAndOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app", "build.gradle")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing\n"), 0644))

	var out bytes.Buffer
	err := Generate(NewBuildGradleGenerator(), root, path, src.ComplexitySimple, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantBuildGradleSimple, string(data))
	assert.Equal(t, "Generando build.gradle...\nbuild.gradle generado.\n", out.String())
}

func TestGenerate_CreatesDirsBelowRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app", "src", "main", "AndroidManifest.xml")

	var out bytes.Buffer
	require.NoError(t, Generate(NewManifestGenerator(), root, path, src.ComplexityComplex, &out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantManifestComplex, string(data))
}

func TestGenerate_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "MEDIO")
	path := filepath.Join(root, "app", "build.gradle")

	var out bytes.Buffer
	err := Generate(NewBuildGradleGenerator(), root, path, src.ComplexityComplex, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build.gradle")
	assert.NotContains(t, out.String(), "build.gradle generado.")

	_, statErr := os.Stat(root)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, src.TargetKinds, r.Kinds())

	partial := NewRegistry()
	partial.Register(NewGradlePropertiesGenerator())
	partial.Register(NewBuildGradleGenerator())
	assert.Equal(t, []src.TargetKind{src.TargetBuildGradle, src.TargetGradleProperties}, partial.Kinds())

	for _, kind := range src.TargetKinds {
		g, err := r.Get(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, g.Kind())
	}

	_, err := NewRegistry().Get(src.TargetManifest)
	assert.Error(t, err)
}

func TestXMLDocument(t *testing.T) {
	root := NewElement("resources").Add(
		NewElement("string", Attr{Name: "name", Value: "app_name"}),
	)
	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<resources>\n" +
		"    <string name=\"app_name\" />\n" +
		"</resources>\n"
	assert.Equal(t, want, XMLDocument(root))
}
