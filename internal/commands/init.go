package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/vacancyspectre/internal/config"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample config",
	Long:  `Creates a sample .vacancyspectre.yaml config file in the current directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	configPath := config.FileName

	wrote, err := writeIfNotExists(out, configPath, sampleConfig, initFlags.force)
	if err != nil {
		return err
	}

	if wrote {
		fmt.Fprintf(out, "Created %s\n", configPath)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit .vacancyspectre.yaml to list your vacancy exports")
		fmt.Fprintln(out, "  2. Run: vacancyspectre stats --profession Аналитик")
		fmt.Fprintln(out, "  3. Run: vacancyspectre vacancies --filter \"Название региона: Москва\" --sort Оклад")
	}
	return nil
}

func writeIfNotExists(out io.Writer, path, content string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "Skipping %s (already exists, use --force to overwrite)\n", path)
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

const sampleConfig = `# vacancyspectre configuration
# See: https://github.com/ppiankov/vacancyspectre

# Vacancy exports: CSV paths, "-" for stdin, or s3://bucket/key
sources:
  - vacancies.csv
#  - s3://exports/vacancies_2022.csv

# AWS settings for s3:// sources (or set AWS_PROFILE / AWS_REGION, also read from .env)
# profile: default
# region: eu-central-1
# endpoint: https://<account>.r2.cloudflarestorage.com

# Profession name substring for the per-profession reports
# profession: Аналитик

# Output format: text, json or yaml
format: text

# Areas listed in the area reports (0 for all)
top: 10

# Minimum share of all vacancies an area needs to be reported
min_area_share: 0.01

# Currency salaries are converted to
reference_currency: RUR

# Exchange rate overrides or additions (units of reference currency per unit)
# rates:
#   EUR: 59.90
#   CNY: 8.50

# Load timeout
timeout: 5m
`
