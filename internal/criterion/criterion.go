// Package criterion maps user-facing criterion names onto predicates and sort keys
// over vacancies.
package criterion

import (
	"errors"
	"fmt"

	"github.com/ppiankov/vacancyspectre/internal/currency"
)

// Errors returned by the resolver.
var (
	ErrUnknownCriterion   = errors.New("unknown criterion")
	ErrMalformedCriterion = errors.New("malformed criterion")
	ErrInvalidOrder       = errors.New("invalid sort order")
)

// Criterion identifies a vacancy field usable for filtering and sorting.
type Criterion int

const (
	None Criterion = iota
	Name
	Description
	Skills
	Experience
	Premium
	Employer
	Salary
	Area
	PublishedAt
	Currency
	Gross
)

// descriptor is the fixed configuration of one criterion.
type descriptor struct {
	key   string
	label string
}

var descriptors = [...]descriptor{
	None:        {"", ""},
	Name:        {"name", "Название"},
	Description: {"description", "Описание"},
	Skills:      {"key_skills", "Навыки"},
	Experience:  {"experience_id", "Опыт работы"},
	Premium:     {"premium", "Премиум-вакансия"},
	Employer:    {"employer_name", "Компания"},
	Salary:      {"salary", "Оклад"},
	Area:        {"area_name", "Название региона"},
	PublishedAt: {"published_at", "Дата публикации вакансии"},
	Currency:    {"salary_currency", "Идентификатор валюты оклада"},
	Gross:       {"salary_gross", "Оклад указан до вычета налогов"},
}

// All lists every real criterion in display order.
func All() []Criterion {
	return []Criterion{Name, Description, Skills, Experience, Premium, Employer, Salary, Area, PublishedAt, Currency, Gross}
}

// Key returns the internal field key, e.g. "area_name".
func (c Criterion) Key() string {
	if c < 0 || int(c) >= len(descriptors) {
		return ""
	}
	return descriptors[c].key
}

// Label returns the display label, e.g. "Название региона".
func (c Criterion) Label() string {
	if c < 0 || int(c) >= len(descriptors) {
		return ""
	}
	return descriptors[c].label
}

func (c Criterion) String() string {
	if c == None {
		return "none"
	}
	return c.Key()
}

// Resolver builds predicates and sort keys from shared, read-only configuration.
type Resolver struct {
	dict       Dictionary
	ranks      Ranks
	normalizer *currency.Normalizer
	byName     map[string]Criterion
}

// NewResolver creates a Resolver. The arguments are not modified afterwards.
func NewResolver(dict Dictionary, ranks Ranks, normalizer *currency.Normalizer) *Resolver {
	byName := make(map[string]Criterion, 2*len(descriptors))
	for _, c := range All() {
		byName[c.Key()] = c
		byName[c.Label()] = c
	}
	return &Resolver{dict: dict, ranks: ranks, normalizer: normalizer, byName: byName}
}

// DefaultResolver wires the default dictionary, ranks and exchange rates.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultDictionary(), DefaultRanks(), currency.Default())
}

// Dictionary returns the resolver's label dictionary.
func (r *Resolver) Dictionary() Dictionary {
	return r.dict
}

// Resolve maps a display label or internal key to a Criterion.
// An empty label resolves to None.
func (r *Resolver) Resolve(label string) (Criterion, error) {
	if label == "" {
		return None, nil
	}
	if c, ok := r.byName[label]; ok {
		return c, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCriterion, label)
}

// ParseReversed interprets a sort-direction answer.
// Accepts "", "yes", "no" and the display labels of True/False ("Да", "Нет").
func (r *Resolver) ParseReversed(token string) (bool, error) {
	switch token {
	case "", "no":
		return false, nil
	case "yes":
		return true, nil
	}
	if raw, ok := r.dict.Token(token); ok {
		switch raw {
		case "TRUE", "True":
			return true, nil
		case "FALSE", "False":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidOrder, token)
}
