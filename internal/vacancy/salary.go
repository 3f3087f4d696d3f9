package vacancy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a salary bound is not a decimal number.
var ErrInvalidAmount = errors.New("invalid salary amount")

// TruncateAmount drops the fractional part of a decimal string and parses the rest.
// "200.9" yields 200: the fraction is cut, never rounded.
func TruncateAmount(s string) (int64, error) {
	whole := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return n, nil
}

// Bounds returns the truncated lower and upper bounds.
func (s Salary) Bounds() (int64, int64, error) {
	from, err := TruncateAmount(s.From)
	if err != nil {
		return 0, 0, err
	}
	to, err := TruncateAmount(s.To)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Mean returns the floor of the average of the truncated bounds in the salary's own currency.
func (s Salary) Mean() (int64, error) {
	from, to, err := s.Bounds()
	if err != nil {
		return 0, err
	}
	return FloorDiv(from+to, 2), nil
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
