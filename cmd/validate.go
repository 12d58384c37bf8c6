package cmd

import (
	"fmt"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/config"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"

	"github.com/spf13/cobra"
)

var validateSettingsPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate environment setup",
	Long:  `Check that the required environment variables and the optional settings file are properly set up, without calling the network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.LogInfo("Validating environment...")

		cfg, err := config.Load(validateSettingsPath)
		if err != nil {
			return fmt.Errorf("settings validation failed: %w", err)
		}
		if validateSettingsPath != "" {
			utils.LogSuccess("Settings file: OK")
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("environment variables validation failed: %w", err)
		}
		utils.LogSuccess("Environment variables: OK")

		utils.LogInfo("Output path: %s", cfg.Settings.OutputPath)
		utils.LogInfo("Minimum duration: %d seconds", cfg.Settings.MinSeconds)
		utils.LogSuccess("Environment validation completed successfully")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateSettingsPath, "settings", "s", "", "Path to an optional settings YAML file")
	rootCmd.AddCommand(validateCmd)
}
