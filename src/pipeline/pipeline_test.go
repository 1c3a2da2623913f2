package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/corrector"
	"github.com/pboueri/supervisor/src/generator"
	"github.com/pboueri/supervisor/src/paths"
	"github.com/pboueri/supervisor/src/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	result *corrector.Result
	calls  int
}

func (f *fakeRunner) Run(ctx context.Context, workingDir string) (*corrector.Result, error) {
	f.calls++
	return f.result, nil
}

func newPipeline(t *testing.T, runner corrector.Runner) (*Pipeline, *bytes.Buffer) {
	t.Helper()
	wd := t.TempDir()
	out := &bytes.Buffer{}
	return &Pipeline{
		WorkingDir: wd,
		Paths:      paths.Resolve(wd, paths.DefaultLayout()),
		Generators: generator.DefaultRegistry(),
		Runner:     runner,
		Complexity: src.ComplexityComplex,
		Out:        out,
	}, out
}

func mkProject(t *testing.T, p *Pipeline) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(p.Paths.Root, "app"), 0755))
}

func readAll(t *testing.T, p *Pipeline) map[src.TargetKind]string {
	t.Helper()
	contents := make(map[src.TargetKind]string)
	for _, target := range p.Paths.Targets() {
		data, err := os.ReadFile(target.Path)
		require.NoError(t, err)
		contents[target.Kind] = string(data)
	}
	return contents
}

func TestRun_EmptyProject(t *testing.T) {
	runner := &fakeRunner{result: &corrector.Result{Stdout: "done"}}
	p, out := newPipeline(t, runner)
	mkProject(t, p)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Supervision.Diagnostics, 4)
	assert.Equal(t, 1, runner.calls)

	for kind, body := range readAll(t, p) {
		g, err := generator.DefaultRegistry().Get(kind)
		require.NoError(t, err)
		want, err := g.Render(src.ComplexityComplex)
		require.NoError(t, err)
		assert.Equal(t, want, body, kind)
	}

	log, err := os.ReadFile(p.Paths.Log)
	require.NoError(t, err)
	assert.Equal(t, report.Summary(), string(log))
	assert.Contains(t, out.String(), "Proceso de supervisión, generación y corrección completado.")
}

func TestRun_Idempotent(t *testing.T) {
	p, _ := newPipeline(t, &fakeRunner{result: &corrector.Result{}})
	mkProject(t, p)

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	first := readAll(t, p)

	result, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Supervision.Diagnostics)
	assert.Equal(t, first, readAll(t, p))
}

func TestRun_ReportIsStatic(t *testing.T) {
	p, _ := newPipeline(t, &fakeRunner{result: &corrector.Result{Stderr: "failed", ExitCode: 1}})
	mkProject(t, p)
	require.NoError(t, os.WriteFile(p.Paths.BuildGradle, []byte("// custom"), 0644))

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	log, err := os.ReadFile(p.Paths.Log)
	require.NoError(t, err)
	assert.Equal(t, report.Summary(), string(log))
}

func TestRun_MissingProjectRoot(t *testing.T) {
	runner := &fakeRunner{result: &corrector.Result{}}
	p, out := newPipeline(t, runner)

	_, err := p.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, 0, runner.calls)
	_, statErr := os.Stat(p.Paths.Log)
	assert.True(t, os.IsNotExist(statErr))
	assert.NotContains(t, out.String(), "Informe generado en")
}

func TestRun_RequiresRunner(t *testing.T) {
	p, _ := newPipeline(t, nil)
	p.Runner = nil
	_, err := p.Run(context.Background())
	assert.Error(t, err)
}
