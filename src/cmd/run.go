package cmd

import (
	"github.com/pboueri/supervisor/src/generator"
	"github.com/pboueri/supervisor/src/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Supervise, generate, correct and report",
	Long: `Run the full pass: generate missing configuration files, run the
correction script and write the supervision log. Same as running supervisor
with no command.`,
	Args: cobra.NoArgs,
	RunE: runSupervise,
}

func runSupervise(cmd *cobra.Command, args []string) error {
	rc, err := loadRunContext()
	if err != nil {
		return err
	}

	runner := newRunner(rc.config)
	p := &pipeline.Pipeline{
		WorkingDir: rc.workingDir,
		Paths:      rc.paths,
		Generators: generator.DefaultRegistry(),
		Runner:     runner,
		Complexity: rc.config.Complexity(),
		Out:        cmd.OutOrStdout(),
	}

	_, err = p.Run(cmd.Context())
	return err
}
