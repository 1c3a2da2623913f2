package supervisor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/generator"
	"github.com/pboueri/supervisor/src/logger"
	"github.com/pboueri/supervisor/src/paths"
	"github.com/pboueri/supervisor/src/validation"
)

const (
	msgStart      = "Iniciando supervisión del proyecto..."
	msgDetected   = "Errores detectados y archivos generados:"
	// MsgAllPresent is printed when no target is missing.
	MsgAllPresent = "Todos los archivos están en su lugar."
)

// Result is what one supervision pass found and did.
type Result struct {
	// Diagnostics holds one message per missing target, in supervision order.
	Diagnostics []string
	Generated   []src.TargetKind
}

// TargetReport is the existence status of a single target.
type TargetReport struct {
	Target src.Target
	Status src.TargetStatus
}

type Supervisor struct {
	paths      paths.ProjectPaths
	generators *generator.Registry
	validators *validation.ValidatorRegistry
	complexity src.Complexity
	out        io.Writer
}

func New(projectPaths paths.ProjectPaths, generators *generator.Registry, complexity src.Complexity, out io.Writer) *Supervisor {
	if complexity == "" {
		complexity = src.ComplexityComplex
	}
	return &Supervisor{
		paths:      projectPaths,
		generators: generators,
		validators: validation.NewBuiltinRegistry(),
		complexity: complexity,
		out:        out,
	}
}

// MissingDiagnostic is the message recorded for a target that had to be generated.
func MissingDiagnostic(kind src.TargetKind) string {
	return fmt.Sprintf("Falta %s. Se generará automáticamente.", kind.FileName())
}

// SuperviseAndGenerate checks each target in order and generates the ones
// that are absent. Existing files are never opened.
func (s *Supervisor) SuperviseAndGenerate(ctx context.Context) (*Result, error) {
	fmt.Fprintln(s.out, msgStart)
	result := &Result{}

	for _, target := range s.paths.Targets() {
		present, err := s.exists(ctx, target)
		if err != nil {
			return nil, err
		}
		if present {
			logger.Debug("%s present at %s", target.Kind.FileName(), target.Path)
			continue
		}

		result.Diagnostics = append(result.Diagnostics, MissingDiagnostic(target.Kind))

		gen, err := s.generators.Get(target.Kind)
		if err != nil {
			return nil, err
		}
		if err := generator.Generate(gen, s.paths.Root, target.Path, s.complexity, s.out); err != nil {
			return nil, err
		}
		logger.Info("Generated %s (%s)", target.Path, s.complexity)
		result.Generated = append(result.Generated, target.Kind)
	}

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(s.out, msgDetected)
		fmt.Fprintln(s.out, strings.Join(result.Diagnostics, "\n"))
	} else {
		fmt.Fprintln(s.out, MsgAllPresent)
	}

	return result, nil
}

// Check reports the existence of every target without generating anything.
func (s *Supervisor) Check(ctx context.Context) ([]TargetReport, error) {
	reports := make([]TargetReport, 0, len(src.TargetKinds))
	for _, target := range s.paths.Targets() {
		present, err := s.exists(ctx, target)
		if err != nil {
			return nil, err
		}
		status := src.TargetStatusMissing
		if present {
			status = src.TargetStatusPresent
		}
		reports = append(reports, TargetReport{Target: target, Status: status})
	}
	return reports, nil
}

// RootExists reports whether the project root is an existing directory.
func (s *Supervisor) RootExists(ctx context.Context) (bool, error) {
	result, err := s.validators.RunValidation(ctx, validation.ValidationTypeFolderCheck, src.Target{Path: s.paths.Root})
	if err != nil {
		return false, err
	}
	return result.Passed, nil
}

func (s *Supervisor) exists(ctx context.Context, target src.Target) (bool, error) {
	result, err := s.validators.RunValidation(ctx, validation.ValidationTypeFileCheck, target)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", target.Kind.FileName(), err)
	}
	return result.Passed, nil
}
