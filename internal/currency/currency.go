package currency

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// Reference is the currency every salary is normalized to.
const Reference = "RUR"

// ErrUnknownCurrency is returned when a currency code has no exchange rate.
var ErrUnknownCurrency = errors.New("unknown currency")

//go:embed rates.json
var ratesData []byte

// Rates maps a currency code to its multiplier into the reference currency.
type Rates map[string]float64

// defaultRates holds the parsed embedded table.
var defaultRates Rates

func init() {
	if err := json.Unmarshal(ratesData, &defaultRates); err != nil {
		slog.Warn("Failed to parse embedded exchange rates", "error", err)
		defaultRates = make(Rates)
	}
}

// DefaultRates returns a copy of the embedded exchange-rate table.
func DefaultRates() Rates {
	return maps.Clone(defaultRates)
}

// Merge returns a new table with overrides applied on top of r.
func (r Rates) Merge(overrides map[string]float64) Rates {
	out := maps.Clone(r)
	if out == nil {
		out = make(Rates, len(overrides))
	}
	for code, rate := range overrides {
		out[strings.ToUpper(code)] = rate
	}
	return out
}

// Lookup returns the rate for a currency code.
func (r Rates) Lookup(code string) (float64, bool) {
	rate, ok := r[code]
	return rate, ok
}

// Normalizer converts salaries into the reference currency.
// It holds a private copy of its rate table and is safe for concurrent use.
type Normalizer struct {
	rates     Rates
	reference string
}

// New creates a Normalizer. An empty reference defaults to Reference.
func New(rates Rates, reference string) *Normalizer {
	if reference == "" {
		reference = Reference
	}
	return &Normalizer{rates: maps.Clone(rates), reference: reference}
}

// Default creates a Normalizer over the embedded table.
func Default() *Normalizer {
	return New(defaultRates, Reference)
}

// ReferenceCode returns the target currency code.
func (n *Normalizer) ReferenceCode() string {
	return n.reference
}

// Normalize returns s converted to the reference currency.
// Each bound is truncated to an integer before the rate is applied.
func (n *Normalizer) Normalize(s vacancy.Salary) (vacancy.Salary, error) {
	rate, ok := n.rates.Lookup(s.Currency)
	if !ok {
		return vacancy.Salary{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, s.Currency)
	}
	from, to, err := s.Bounds()
	if err != nil {
		return vacancy.Salary{}, err
	}
	return vacancy.Salary{
		From:     formatAmount(float64(from) * rate),
		To:       formatAmount(float64(to) * rate),
		Gross:    s.Gross,
		Currency: n.reference,
	}, nil
}

// Mean returns the floor mean of s after normalization.
func (n *Normalizer) Mean(s vacancy.Salary) (int64, error) {
	normalized, err := n.Normalize(s)
	if err != nil {
		return 0, err
	}
	return normalized.Mean()
}

// formatAmount renders the shortest decimal form, always with a fractional part.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
