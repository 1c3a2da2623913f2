package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/corrector"
	"github.com/pboueri/supervisor/src/generator"
	"github.com/pboueri/supervisor/src/logger"
	"github.com/pboueri/supervisor/src/paths"
	"github.com/pboueri/supervisor/src/report"
	"github.com/pboueri/supervisor/src/supervisor"
)

const msgDone = "Proceso de supervisión, generación y corrección completado."

// Pipeline runs one supervision pass: generate missing files, run the
// corrector, write the report.
type Pipeline struct {
	WorkingDir string
	Paths      paths.ProjectPaths
	Generators *generator.Registry
	Runner     corrector.Runner
	Complexity src.Complexity
	Out        io.Writer
}

// RunResult collects what each stage produced.
type RunResult struct {
	Supervision *supervisor.Result
	Corrections *corrector.Result
}

// Run executes the stages in order. A supervision or report failure aborts
// the run; the corrector never does.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	if p.Runner == nil {
		return nil, fmt.Errorf("pipeline has no corrector runner")
	}
	generators := p.Generators
	if generators == nil {
		generators = generator.DefaultRegistry()
	}

	logger.Info("Supervising project at %s", p.Paths.Root)
	sup := supervisor.New(p.Paths, generators, p.Complexity, p.Out)
	supResult, err := sup.SuperviseAndGenerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("supervision failed: %w", err)
	}

	corrections := corrector.RunCorrections(ctx, p.Runner, p.WorkingDir, p.Out)

	if err := report.GenerateReport(p.Paths.Log, p.Out); err != nil {
		return nil, err
	}

	fmt.Fprintln(p.Out, msgDone)
	return &RunResult{Supervision: supResult, Corrections: corrections}, nil
}
