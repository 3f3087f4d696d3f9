package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ppiankov/vacancyspectre/internal/config"
	"github.com/ppiankov/vacancyspectre/internal/logging"
)

var (
	verbose  bool
	profile  string
	region   string
	endpoint string
	version  string
	commit   string
	date     string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vacancyspectre",
	Short: "vacancyspectre: job vacancy filter, sorter and salary statistics",
	Long: `vacancyspectre reads job vacancy exports (CSV files, standard input or S3
objects) and either prints a filtered, sorted table of vacancies or computes
salary and vacancy-count statistics by year and by area.

Salaries in foreign currencies are converted to roubles with a fixed rate table
before any comparison or average.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS profile name for s3:// sources")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region for s3:// sources")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	rootCmd.AddCommand(vacanciesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
