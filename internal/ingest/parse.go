// Package ingest reads vacancy exports into memory.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

var (
	// ErrEmptyFile is returned for zero-byte input.
	ErrEmptyFile = errors.New("empty file")
	// ErrNoData is returned when the input holds no usable rows.
	ErrNoData = errors.New("no data")
)

// Source column names.
const (
	ColumnName           = "name"
	ColumnDescription    = "description"
	ColumnSkills         = "key_skills"
	ColumnExperience     = "experience_id"
	ColumnPremium        = "premium"
	ColumnEmployer       = "employer_name"
	ColumnSalaryFrom     = "salary_from"
	ColumnSalaryTo       = "salary_to"
	ColumnSalaryGross    = "salary_gross"
	ColumnSalaryCurrency = "salary_currency"
	ColumnArea           = "area_name"
	ColumnPublishedAt    = "published_at"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	htmlTag = regexp.MustCompile(`<[^<>]*>`)
)

// Clean removes HTML tags, collapses runs of whitespace into one space and trims.
func Clean(s string) string {
	return strings.Join(strings.Fields(htmlTag.ReplaceAllString(s, "")), " ")
}

// cleanSkills splits a multi-line skills cell into one cleaned entry per line.
func cleanSkills(s string) []string {
	lines := strings.Split(htmlTag.ReplaceAllString(s, ""), "\n")
	skills := make([]string, 0, len(lines))
	for _, line := range lines {
		skills = append(skills, Clean(line))
	}
	return skills
}

// Parse reads a comma-separated export with a header row.
//
// Rows whose width differs from the header, or that contain an empty cell, are
// dropped. Columns missing from the header leave the matching fields empty.
func Parse(r io.Reader) ([]vacancy.Vacancy, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if len(head) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return nil, ErrEmptyFile
	}
	if bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var (
		records []vacancy.Vacancy
		dropped int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+dropped+2, err)
		}
		if !usable(row, len(header)) {
			dropped++
			continue
		}
		records = append(records, decode(row, columns))
	}

	slog.Debug("Parsed vacancies", "rows", len(records), "dropped", dropped)
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

func usable(row []string, width int) bool {
	if len(row) != width {
		return false
	}
	for _, cell := range row {
		if cell == "" {
			return false
		}
	}
	return true
}

func decode(row []string, columns map[string]int) vacancy.Vacancy {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok {
			return ""
		}
		return Clean(row[i])
	}

	v := vacancy.Vacancy{
		Name:        cell(ColumnName),
		Description: cell(ColumnDescription),
		Experience:  cell(ColumnExperience),
		Premium:     cell(ColumnPremium),
		Employer:    cell(ColumnEmployer),
		Salary: vacancy.Salary{
			From:     cell(ColumnSalaryFrom),
			To:       cell(ColumnSalaryTo),
			Gross:    cell(ColumnSalaryGross),
			Currency: cell(ColumnSalaryCurrency),
		},
		Area:        cell(ColumnArea),
		PublishedAt: cell(ColumnPublishedAt),
	}
	if i, ok := columns[ColumnSkills]; ok {
		v.Skills = cleanSkills(row[i])
	}
	return v
}
