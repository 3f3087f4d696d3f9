package criterion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// Predicate reports whether a vacancy matches a filter.
type Predicate func(vacancy.Vacancy) bool

// skillSeparator splits a requested skill list.
const skillSeparator = ", "

func always(vacancy.Vacancy) bool { return true }

// Predicate builds the test for criterion c against content, which is expected
// in display form (labels rather than raw tokens).
func (r *Resolver) Predicate(c Criterion, content string) (Predicate, error) {
	switch c {
	case None:
		return always, nil
	case Name:
		return func(v vacancy.Vacancy) bool { return v.Name == content }, nil
	case Description:
		return func(v vacancy.Vacancy) bool { return v.Description == content }, nil
	case Employer:
		return func(v vacancy.Vacancy) bool { return v.Employer == content }, nil
	case Area:
		return func(v vacancy.Vacancy) bool { return v.Area == content }, nil
	case Skills:
		want := strings.Split(content, skillSeparator)
		return func(v vacancy.Vacancy) bool { return hasAll(v.Skills, want) }, nil
	case Experience:
		return r.displayEquals(func(v vacancy.Vacancy) string { return v.Experience }, content), nil
	case Premium:
		return r.displayEquals(func(v vacancy.Vacancy) string { return v.Premium }, content), nil
	case Currency:
		return r.displayEquals(func(v vacancy.Vacancy) string { return v.Salary.Currency }, content), nil
	case Gross:
		return r.displayEquals(func(v vacancy.Vacancy) string { return v.Salary.Gross }, content), nil
	case Salary:
		amount, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: salary must be an integer, got %q", ErrMalformedCriterion, content)
		}
		return func(v vacancy.Vacancy) bool {
			from, to, err := v.Salary.Bounds()
			if err != nil {
				return false
			}
			return from <= amount && amount <= to
		}, nil
	case PublishedAt:
		return func(v vacancy.Vacancy) bool {
			date := vacancy.DisplayDate(v.PublishedAt)
			return date != "" && date == content
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
}

// displayEquals compares the display label of a raw token with content.
// Absent or untranslatable tokens never match.
func (r *Resolver) displayEquals(field func(vacancy.Vacancy) string, content string) Predicate {
	return func(v vacancy.Vacancy) bool {
		label, ok := r.dict.Lookup(field(v))
		return ok && label == content
	}
}

// hasAll reports whether have contains every element of want.
func hasAll(have, want []string) bool {
	if have == nil {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[s] = struct{}{}
	}
	for _, s := range want {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
