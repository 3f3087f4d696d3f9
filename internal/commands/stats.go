package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ppiankov/vacancyspectre/internal/analyzer"
	"github.com/ppiankov/vacancyspectre/internal/report"
)

var statsFlags struct {
	profession   string
	format       string
	outputFile   string
	top          int
	minAreaShare float64
	timeout      time.Duration
}

var statsCmd = &cobra.Command{
	Use:   "stats [sources...]",
	Short: "Compute salary and vacancy statistics by year and area",
	Long: `Compute salary dynamics and vacancy counts per publication year, overall and
for one profession, plus salary levels and vacancy shares per area. Areas holding
less than --min-area-share of all vacancies are left out of the area reports.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFlags.profession, "profession", "", "Profession name substring (case-insensitive)")
	statsCmd.Flags().StringVar(&statsFlags.format, "format", "text", "Output format: text, json, yaml")
	statsCmd.Flags().StringVarP(&statsFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	statsCmd.Flags().IntVar(&statsFlags.top, "top", analyzer.DefaultTop, "Areas to list, 0 for all")
	statsCmd.Flags().Float64Var(&statsFlags.minAreaShare, "min-area-share", analyzer.DefaultMinAreaShare, "Minimum share of all vacancies an area needs")
	statsCmd.Flags().DurationVar(&statsFlags.timeout, "timeout", 0, "Load timeout (default: from config or none)")
}

func runStats(cmd *cobra.Command, args []string) error {
	// Apply config file defaults where flags were not explicitly set
	applyConfigDefaults(cmd)
	if _, err := selectReporter(statsFlags.format, io.Discard); err != nil {
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), statsFlags.timeout)
	defer cancel()

	sources, err := resolveSources(args)
	if err != nil {
		return err
	}
	loader, err := newLoader(ctx, sources, cmd.InOrStdin())
	if err != nil {
		return err
	}
	records, err := loader.LoadAll(ctx, sources)
	if err != nil {
		return enhanceError("load vacancies", err)
	}
	slog.Info("Loaded vacancies", "sources", len(sources), "vacancies", len(records))

	norm := newNormalizer()
	stats, err := analyzer.Analyze(records, analyzer.AnalyzerConfig{
		Profession:   statsFlags.profession,
		MinAreaShare: statsFlags.minAreaShare,
		Top:          statsFlags.top,
	}, norm)
	if err != nil {
		return enhanceError("analyze vacancies", err)
	}

	data := report.Data{
		Tool:      "vacancyspectre",
		Version:   version,
		Timestamp: time.Now().UTC(),
		ReportID:  uuid.NewString(),
		Source: report.Source{
			Type:    sourceType(sources),
			Count:   len(sources),
			URIHash: computeSourceHash(sources),
		},
		Config: report.ReportConfig{
			Profession:        statsFlags.profession,
			Top:               statsFlags.top,
			MinAreaShare:      statsFlags.minAreaShare,
			ReferenceCurrency: norm.ReferenceCode(),
		},
		Stats: *stats,
	}

	reporter, closeOutput, err := statsReporter(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeOutput() }()

	if err := reporter.Generate(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return closeOutput()
}

func statsReporter(cmd *cobra.Command) (report.Reporter, func() error, error) {
	w, closeOutput, err := openOutput(cmd.OutOrStdout(), statsFlags.outputFile)
	if err != nil {
		return nil, nil, err
	}
	reporter, err := selectReporter(statsFlags.format, w)
	if err != nil {
		_ = closeOutput()
		return nil, nil, err
	}
	return reporter, closeOutput, nil
}

func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("format") && cfg.Format != "" {
		statsFlags.format = cfg.Format
	}
	if !flags.Changed("profession") && cfg.Profession != "" {
		statsFlags.profession = cfg.Profession
	}
	if !flags.Changed("top") && cfg.Top > 0 {
		statsFlags.top = cfg.Top
	}
	if !flags.Changed("min-area-share") && cfg.MinAreaShare != nil {
		statsFlags.minAreaShare = *cfg.MinAreaShare
	}
	if !flags.Changed("timeout") && cfg.Timeout != "" {
		statsFlags.timeout = cfg.TimeoutDuration()
	}
}
