package cmd

import (
	"fmt"
	"os"

	"github.com/pboueri/supervisor/src/config"
	"github.com/pboueri/supervisor/src/corrector"
	"github.com/pboueri/supervisor/src/logger"
	"github.com/pboueri/supervisor/src/paths"
)

// newRunner builds the corrector runner for a run. Tests swap it out.
var newRunner = func(cfg *config.Config) corrector.Runner {
	return corrector.NewShellRunner(cfg.RunnerConfig())
}

// runContext is everything a command needs, resolved once from the working
// directory and its config file.
type runContext struct {
	workingDir string
	config     *config.Config
	paths      paths.ProjectPaths
}

func loadRunContext() (*runContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(wd)
	if err != nil {
		return nil, err
	}

	projectPaths := paths.Resolve(wd, cfg.Layout())
	logger.Debug("Resolved project root %s", projectPaths.Root)

	return &runContext{
		workingDir: wd,
		config:     cfg,
		paths:      projectPaths,
	}, nil
}
