package cmd

import (
	"github.com/pboueri/supervisor/src/logger"
	"github.com/spf13/cobra"
)

var (
	verboseCount int
)

var rootCmd = &cobra.Command{
	Use:   "supervisor",
	Short: "Supervise an Android project and restore missing configuration files",
	Long: `supervisor checks the Android project under MEDIO/ for its build descriptor,
manifest, settings descriptor and properties file, writes placeholders for any
that are missing, runs the correction script and writes a summary log.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case verboseCount == 1:
			logger.SetLevel(logger.InfoLevel)
		case verboseCount >= 2:
			logger.SetLevel(logger.DebugLevel)
		}
	},
	RunE: runSupervise,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "Increase verbosity (use -vv for debug level)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(configCmd)
}
