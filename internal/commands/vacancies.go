package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/dataset"
	"github.com/ppiankov/vacancyspectre/internal/ingest"
	"github.com/ppiankov/vacancyspectre/internal/report"
)

// Messages shown for rejected table input.
const (
	msgBadFilterFormat = "Формат ввода некорректен"
	msgBadFilterLabel  = "Параметр поиска некорректен"
	msgBadSortLabel    = "Параметр сортировки некорректен"
	msgBadOrder        = "Порядок сортировки задан некорректно"
	msgBadRange        = "Диапазон вывода задан некорректно"
	msgBadFields       = "Требуемые столбцы заданы некорректно"
	msgEmptyFile       = "Пустой файл"
	msgNoData          = "Нет данных"
)

var vacanciesFlags struct {
	filter  string
	sort    string
	reverse string
	rng     string
	fields  string
	timeout time.Duration
}

var vacanciesCmd = &cobra.Command{
	Use:   "vacancies [sources...]",
	Short: "Print a filtered, sorted table of vacancies",
	Long: `Print vacancies as a table. Sources are CSV files, '-' for standard input or
s3://bucket/key objects.

  --filter "Название региона: Москва"   keep matching vacancies
  --sort   "Оклад"                      order by a column
  --reverse Да                          descending order
  --range  "10 20"                      rows 10 to 19
  --fields "Название, Оклад"            columns to show`,
	RunE: runVacancies,
}

func init() {
	vacanciesCmd.Flags().StringVar(&vacanciesFlags.filter, "filter", "", `Filter "label: content"`)
	vacanciesCmd.Flags().StringVar(&vacanciesFlags.sort, "sort", "", "Sort column label")
	vacanciesCmd.Flags().StringVar(&vacanciesFlags.reverse, "reverse", "", "Descending order: Да / Нет")
	vacanciesCmd.Flags().StringVar(&vacanciesFlags.rng, "range", "", `Output rows "from [to]", 1-based, end exclusive`)
	vacanciesCmd.Flags().StringVar(&vacanciesFlags.fields, "fields", "", `Columns to show, separated by ", "`)
	vacanciesCmd.Flags().DurationVar(&vacanciesFlags.timeout, "timeout", 0, "Load timeout (default: from config or none)")
}

// tableQuery is a validated vacancies request.
type tableQuery struct {
	filter   string
	sort     string
	reversed bool
	rng      string
	columns  []criterion.Criterion
}

// parseTableQuery checks every table option before any data is read.
func parseTableQuery(r *criterion.Resolver, filter, sortLabel, reverse, rng, fields string) (tableQuery, error) {
	if _, _, err := dataset.ResolveFilter(filter, r); err != nil {
		if errors.Is(err, criterion.ErrUnknownCriterion) {
			return tableQuery{}, fmt.Errorf("%s: %w", msgBadFilterLabel, err)
		}
		return tableQuery{}, fmt.Errorf("%s: %w", msgBadFilterFormat, err)
	}
	if _, err := r.Resolve(sortLabel); err != nil {
		return tableQuery{}, fmt.Errorf("%s: %w", msgBadSortLabel, err)
	}
	reversed, err := r.ParseReversed(reverse)
	if err != nil {
		return tableQuery{}, fmt.Errorf("%s: %w", msgBadOrder, err)
	}
	if _, _, err := dataset.Window(nil, rng); err != nil {
		return tableQuery{}, fmt.Errorf("%s: %w", msgBadRange, err)
	}
	columns, err := report.Columns(fields)
	if err != nil {
		return tableQuery{}, fmt.Errorf("%s: %w", msgBadFields, err)
	}
	return tableQuery{filter: filter, sort: sortLabel, reversed: reversed, rng: rng, columns: columns}, nil
}

// loadMessage maps ingestion failures to the table's user-facing wording.
func loadMessage(err error) error {
	switch {
	case errors.Is(err, ingest.ErrEmptyFile):
		return fmt.Errorf("%s: %w", msgEmptyFile, err)
	case errors.Is(err, ingest.ErrNoData):
		return fmt.Errorf("%s: %w", msgNoData, err)
	}
	return enhanceError("load vacancies", err)
}

func runVacancies(cmd *cobra.Command, args []string) error {
	timeout := vacanciesFlags.timeout
	if timeout == 0 {
		timeout = cfg.TimeoutDuration()
	}
	ctx, cancel := withTimeout(cmd.Context(), timeout)
	defer cancel()

	resolver := newResolver(newNormalizer())
	q, err := parseTableQuery(resolver, vacanciesFlags.filter, vacanciesFlags.sort, vacanciesFlags.reverse, vacanciesFlags.rng, vacanciesFlags.fields)
	if err != nil {
		return err
	}

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
		return loadMessage(err)
	}
	slog.Debug("Loaded vacancies", "sources", len(sources), "vacancies", len(records))

	records, err = dataset.Filter(records, q.filter, resolver)
	if err != nil {
		return enhanceError("filter vacancies", err)
	}
	records, err = dataset.Sort(records, q.sort, q.reversed, resolver)
	if err != nil {
		return enhanceError("sort vacancies", err)
	}

	window, first, err := dataset.Window(records, q.rng)
	if err != nil {
		return fmt.Errorf("%s: %w", msgBadRange, err)
	}

	renderer := &report.TableRenderer{Writer: cmd.OutOrStdout(), Dictionary: resolver.Dictionary()}
	return renderer.Render(window, first, q.columns)
}
