package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// RowNumberColumn heads the row number column, which is always shown.
const RowNumberColumn = "№"

// NothingFound is printed instead of an empty table.
const NothingFound = "Ничего не найдено"

// Gross wording appended to the salary cell.
const (
	BeforeTax = "(Без вычета налогов)"
	AfterTax  = "(С вычетом налогов)"
)

// tableColumns are the columns a vacancy table can show, in display order.
var tableColumns = []criterion.Criterion{
	criterion.Name,
	criterion.Description,
	criterion.Skills,
	criterion.Experience,
	criterion.Premium,
	criterion.Employer,
	criterion.Salary,
	criterion.Area,
	criterion.PublishedAt,
}

// TableRenderer prints vacancies as an aligned table with localized cells.
type TableRenderer struct {
	Writer     io.Writer
	Dictionary criterion.Dictionary
}

// Columns resolves a ", "-separated list of column labels. An empty list selects
// every column.
func Columns(fields string) ([]criterion.Criterion, error) {
	if fields == "" {
		return tableColumns, nil
	}
	var cols []criterion.Criterion
	for _, label := range strings.Split(fields, ", ") {
		c, ok := tableColumn(label)
		if !ok {
			return nil, fmt.Errorf("%w: column %q", criterion.ErrUnknownCriterion, label)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func tableColumn(label string) (criterion.Criterion, bool) {
	for _, c := range tableColumns {
		if c.Label() == label {
			return c, true
		}
	}
	return criterion.None, false
}

// Render writes records numbered from first. A nil column list shows every column.
func (t *TableRenderer) Render(records []vacancy.Vacancy, first int, columns []criterion.Criterion) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(t.Writer, NothingFound)
		return err
	}
	if columns == nil {
		columns = tableColumns
	}

	tw := tabwriter.NewWriter(t.Writer, 0, 0, 2, ' ', 0)

	header := []string{RowNumberColumn}
	for _, c := range columns {
		header = append(header, c.Label())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, v := range records {
		row := []string{strconv.Itoa(first + i)}
		for _, c := range columns {
			row = append(row, sanitize(t.Cell(c, v)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Cell renders one field of v for display.
func (t *TableRenderer) Cell(c criterion.Criterion, v vacancy.Vacancy) string {
	switch c {
	case criterion.Name:
		return v.Name
	case criterion.Description:
		return CutText(v.Description)
	case criterion.Skills:
		if v.Skills == nil {
			return ""
		}
		return CutText(strings.Join(v.Skills, "\n"))
	case criterion.Experience:
		return t.display(v.Experience)
	case criterion.Premium:
		return t.display(v.Premium)
	case criterion.Employer:
		return v.Employer
	case criterion.Salary:
		return t.salary(v.Salary)
	case criterion.Area:
		return v.Area
	case criterion.PublishedAt:
		return vacancy.DisplayDate(v.PublishedAt)
	}
	return ""
}

func (t *TableRenderer) display(token string) string {
	return t.Dictionary.Display(token)
}

// salary renders "from - to (currency) (gross wording)".
func (t *TableRenderer) salary(s vacancy.Salary) string {
	if s == (vacancy.Salary{}) {
		return ""
	}
	wording := AfterTax
	if s.IsGross() {
		wording = BeforeTax
	}
	return fmt.Sprintf("%s - %s (%s) %s", FormatAmount(s.From), FormatAmount(s.To), t.display(s.Currency), wording)
}

// sanitize keeps a cell on one table line.
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", "; ").Replace(s)
}
