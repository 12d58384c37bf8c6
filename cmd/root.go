package cmd

import (
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// verbosityLevel is the command-line flag for setting the log level
	verbosityLevel string
)

var rootCmd = &cobra.Command{
	Use:   "channelfeed",
	Short: "Fetch a YouTube channel's uploads and publish a JSON feed",
	Long: `channelfeed collects the metadata of every video uploaded to a
YouTube channel, drops short-form content, and writes a compact JSON
summary for a static site build.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set the global log level based on the flag
		logLevel := utils.LogLevelFromString(verbosityLevel)
		utils.SetLogLevel(logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global flags
	rootCmd.PersistentFlags().StringVarP(&verbosityLevel, "log-level", "l", "normal",
		"Set the logging verbosity level: quiet, normal, verbose, debug")
}
