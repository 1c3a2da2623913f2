package cmd

import (
	"fmt"
	"strings"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/generator"
	"github.com/spf13/cobra"
)

var generateComplexity string

func init() {
	generateCmd.Flags().StringVar(&generateComplexity, "complexity", "", "Template variant: simple or complex (default from config)")
}

var generateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Write one configuration file from its template",
	Long: fmt.Sprintf(`Write one configuration file, overwriting it if it exists.

Kinds: %s`, kindList()),
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func kindList() string {
	kinds := generator.DefaultRegistry().Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, fmt.Sprintf("%s (%s)", k, k.FileName()))
	}
	return strings.Join(names, ", ")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	kind, err := src.ParseTargetKind(args[0])
	if err != nil {
		return err
	}

	rc, err := loadRunContext()
	if err != nil {
		return err
	}

	complexity := rc.config.Complexity()
	if generateComplexity != "" {
		complexity, err = src.ParseComplexity(generateComplexity)
		if err != nil {
			return err
		}
	}

	gen, err := generator.DefaultRegistry().Get(kind)
	if err != nil {
		return err
	}
	return generator.Generate(gen, rc.paths.Root, rc.paths.TargetPath(kind), complexity, cmd.OutOrStdout())
}
