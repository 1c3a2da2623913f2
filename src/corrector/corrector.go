package corrector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pboueri/supervisor/src/logger"
)

// Result is the buffered outcome of one corrector run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes the corrector for a working directory. A non-zero exit is
// reported through Result.ExitCode; an error means the corrector could not be
// run at all.
type Runner interface {
	Run(ctx context.Context, workingDir string) (*Result, error)
}

// ShellRunnerConfig configures how the corrector script is invoked.
type ShellRunnerConfig struct {
	Interpreter string
	Script      string
	Shell       string
	Timeout     time.Duration
}

func DefaultShellRunnerConfig() ShellRunnerConfig {
	return ShellRunnerConfig{
		Interpreter: "python3",
		Script:      "script_resuelve_2.py",
		Shell:       "sh",
	}
}

// ShellRunner runs "<interpreter> <workingDir>/<script>" through a shell and
// buffers both output streams.
type ShellRunner struct {
	config ShellRunnerConfig
}

func NewShellRunner(config ShellRunnerConfig) *ShellRunner {
	def := DefaultShellRunnerConfig()
	if config.Interpreter == "" {
		config.Interpreter = def.Interpreter
	}
	if config.Script == "" {
		config.Script = def.Script
	}
	if config.Shell == "" {
		config.Shell = def.Shell
	}
	return &ShellRunner{config: config}
}

// ScriptName returns the configured script file name.
func (r *ShellRunner) ScriptName() string {
	return r.config.Script
}

// CommandLine returns the shell command line executed for workingDir.
func (r *ShellRunner) CommandLine(workingDir string) (string, error) {
	words, err := shellquote.Split(r.config.Interpreter)
	if err != nil {
		return "", fmt.Errorf("invalid interpreter %q: %w", r.config.Interpreter, err)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("empty interpreter")
	}

	script := r.config.Script
	if !filepath.IsAbs(script) {
		script = filepath.Join(workingDir, script)
	}
	return shellquote.Join(append(words, script)...), nil
}

func (r *ShellRunner) Run(ctx context.Context, workingDir string) (*Result, error) {
	commandLine, err := r.CommandLine(workingDir)
	if err != nil {
		return nil, err
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.config.Shell, "-c", commandLine)
	cmd.Dir = workingDir
	// Grandchildren can keep the output pipes open after a kill.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running corrector: %s -c %s", r.config.Shell, commandLine)
	err = cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, fmt.Errorf("corrector did not finish: %w", ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to start %s: %w", r.config.Shell, err)
	}

	return result, nil
}

type scriptNamer interface {
	ScriptName() string
}

// RunCorrections runs the corrector and echoes what it printed. The exit code
// is logged but never treated as a failure, and a runner error is printed and
// swallowed: corrections never abort the run.
func RunCorrections(ctx context.Context, runner Runner, workingDir string, out io.Writer) *Result {
	fmt.Fprintln(out, "Ejecutando correcciones en el proyecto...")

	result, err := runner.Run(ctx, workingDir)
	if err != nil {
		logger.Warn("Corrector failed: %v", err)
		// A run cut short can still have printed something.
		if result != nil {
			echo(out, result)
		} else {
			result = &Result{ExitCode: -1, Stderr: err.Error()}
		}
		fmt.Fprintf(out, "Error al ejecutar %s: %v\n", scriptName(runner), err)
		return result
	}

	echo(out, result)
	if result.ExitCode != 0 {
		logger.Warn("Corrector exited with code %d", result.ExitCode)
	} else {
		logger.Info("Corrector finished")
	}
	return result
}

func echo(out io.Writer, result *Result) {
	fmt.Fprintln(out, "Correcciones realizadas:\n", result.Stdout)
	if result.Stderr != "" {
		fmt.Fprintln(out, "Errores durante la corrección:\n", result.Stderr)
	}
}

func scriptName(runner Runner) string {
	if n, ok := runner.(scriptNamer); ok {
		return n.ScriptName()
	}
	return DefaultShellRunnerConfig().Script
}
