// Package dataset filters, sorts and windows vacancy sequences without mutating them.
package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// FilterSeparator divides the criterion label from its content.
const FilterSeparator = ": "

// ParseFilter splits "label: content" and passes both halves through dict.Display,
// so internal keys and raw tokens are accepted in place of display labels.
// Content that happens to be a dictionary token is translated too.
func ParseFilter(expr string, dict criterion.Dictionary) (label, content string, err error) {
	if expr == "" {
		return "", "", nil
	}
	label, content, ok := strings.Cut(expr, FilterSeparator)
	if !ok {
		return "", "", fmt.Errorf("%w: expected \"label%scontent\", got %q", criterion.ErrMalformedCriterion, FilterSeparator, expr)
	}
	return dict.Display(label), dict.Display(content), nil
}

// ResolveFilter parses expr and builds its predicate.
func ResolveFilter(expr string, r *criterion.Resolver) (criterion.Criterion, criterion.Predicate, error) {
	label, content, err := ParseFilter(expr, r.Dictionary())
	if err != nil {
		return criterion.None, nil, err
	}

	c, err := r.Resolve(label)
	if errors.Is(err, criterion.ErrUnknownCriterion) {
		// Field keys like "published_at" translate to a column title rather than a
		// criterion label; the untranslated key still names the criterion.
		raw, _, _ := strings.Cut(expr, FilterSeparator)
		if alt, altErr := r.Resolve(raw); altErr == nil {
			c, err = alt, nil
		}
	}
	if err != nil {
		return criterion.None, nil, err
	}

	p, err := r.Predicate(c, content)
	if err != nil {
		return criterion.None, nil, err
	}
	return c, p, nil
}

// Filter returns the records matching expr in their original order.
// records is never modified; an empty expr returns a copy of all records.
func Filter(records []vacancy.Vacancy, expr string, r *criterion.Resolver) ([]vacancy.Vacancy, error) {
	c, p, err := ResolveFilter(expr, r)
	if err != nil {
		return nil, err
	}

	out := make([]vacancy.Vacancy, 0, len(records))
	for _, v := range records {
		if p(v) {
			out = append(out, v)
		}
	}

	slog.Debug("Filtered vacancies", "criterion", c, "in", len(records), "out", len(out))
	return out, nil
}

// FilterInPlace keeps only matching records in *records.
// Excluded records are discarded irreversibly; on error *records is left untouched.
func FilterInPlace(records *[]vacancy.Vacancy, expr string, r *criterion.Resolver) error {
	filtered, err := Filter(*records, expr, r)
	if err != nil {
		return err
	}
	*records = filtered
	return nil
}
