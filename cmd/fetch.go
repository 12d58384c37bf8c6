package cmd

import (
	"context"
	"fmt"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/config"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/pipeline"
	youtubesvc "github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/services/youtube"

	"github.com/spf13/cobra"
)

var (
	settingsFilePath   string
	outputPathOverride string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the channel's uploads and write the JSON feed",
	Long: `Fetch lists every video uploaded to the configured channel, retrieves
the full metadata in batches, filters out videos shorter than the
configured minimum duration, and writes the result as formatted JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(settingsFilePath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Override output path if specified
		if outputPathOverride != "" {
			cfg.Settings.OutputPath = outputPathOverride
		}

		p := pipeline.New(cfg, func(ctx context.Context, cfg *config.Config) (youtubesvc.Client, error) {
			svc, err := youtubesvc.NewService(ctx, cfg.APIKey)
			if err != nil {
				return nil, err
			}
			svc.PageSize = cfg.Settings.PageSize
			return svc, nil
		})

		return p.Run(cmd.Context())
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&settingsFilePath, "settings", "s", "", "Path to an optional settings YAML file")
	fetchCmd.Flags().StringVarP(&outputPathOverride, "output", "o", "", "Output file path (overrides the settings file)")
	rootCmd.AddCommand(fetchCmd)
}
