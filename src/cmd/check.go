package cmd

import (
	"fmt"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/generator"
	"github.com/pboueri/supervisor/src/supervisor"
	"github.com/spf13/cobra"
)

var checkStrict bool

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when any file is missing")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which configuration files are missing",
	Long:  `Check the project for its configuration files without generating anything or running the correction script.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	rc, err := loadRunContext()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sup := supervisor.New(rc.paths, generator.DefaultRegistry(), rc.config.Complexity(), out)

	rootOK, err := sup.RootExists(cmd.Context())
	if err != nil {
		return err
	}
	if !rootOK {
		fmt.Fprintf(out, "✗ No se encontró el directorio del proyecto %s\n", rc.paths.Root)
	}

	reports, err := sup.Check(cmd.Context())
	if err != nil {
		return err
	}

	missing := 0
	for _, r := range reports {
		mark := "✓"
		if r.Status == src.TargetStatusMissing {
			mark = "✗"
			missing++
		}
		fmt.Fprintf(out, "%s %-20s %s\n", mark, r.Target.Kind.FileName(), r.Target.Path)
	}

	if missing == 0 {
		fmt.Fprintln(out, supervisor.MsgAllPresent)
		return nil
	}
	fmt.Fprintf(out, "Faltan %d de %d archivos.\n", missing, len(reports))
	if checkStrict {
		return fmt.Errorf("%d configuration files missing", missing)
	}
	return nil
}
