package main

import (
	"fmt"
	"os"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/cmd"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists; secrets may also come from the real environment
	if err := godotenv.Load(); err != nil {
		utils.LogDebug("No .env file found - using environment variables")
	}
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
