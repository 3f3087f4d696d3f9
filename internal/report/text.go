package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/vacancyspectre/internal/analyzer"
)

// Generate writes the text summary.
func (r *TextReporter) Generate(data Data) error {
	w := r.Writer
	s := data.Stats

	fmt.Fprintf(w, "%s %s: vacancy statistics\n", data.Tool, data.Version)
	fmt.Fprintf(w, "Generated: %s\n", data.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "Вакансий: %d (источников: %d)\n", s.TotalVacancies, data.Source.Count)
	if s.Profession != "" {
		fmt.Fprintf(w, "Профессия: %s\n", s.Profession)
	}
	fmt.Fprintf(w, "Валюта: %s\n", s.ReferenceCurrency)

	if s.TotalVacancies == 0 {
		fmt.Fprintln(w, "\nНет данных")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeYearInt64(tw, "Динамика уровня зарплат по годам", s.SalaryByYear)
	writeYearInt(tw, "Динамика количества вакансий по годам", s.CountByYear)
	writeYearInt64(tw, "Динамика уровня зарплат по годам для выбранной профессии", s.ProfessionSalary)
	writeYearInt(tw, "Динамика количества вакансий по годам для выбранной профессии", s.ProfessionCount)

	fmt.Fprintln(tw, "\nУровень зарплат по городам (в порядке убывания):")
	for _, a := range s.SalaryByArea {
		fmt.Fprintf(tw, "  %s\t%s\n", a.Area, FormatNumber(a.Salary))
	}
	fmt.Fprintln(tw, "\nДоля вакансий по городам (в порядке убывания):")
	for _, a := range s.FractionByArea {
		fmt.Fprintf(tw, "  %s\t%.2f%%\n", a.Area, a.Fraction*100)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("-", 40))
	fmt.Fprintf(w, "Summary: %d areas reported, %d below the %g%% threshold\n",
		len(s.FractionByArea), s.AreasBelowThreshold, data.Config.MinAreaShare*100)
	return nil
}

func writeYearInt64(w io.Writer, title string, m map[int]int64) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, y := range analyzer.Years(m) {
		fmt.Fprintf(w, "  %d\t%s\n", y, FormatNumber(m[y]))
	}
}

func writeYearInt(w io.Writer, title string, m map[int]int) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, y := range analyzer.Years(m) {
		fmt.Fprintf(w, "  %d\t%d\n", y, m[y])
	}
}
