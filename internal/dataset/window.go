package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// ErrInvalidRange is returned for an unusable row window.
var ErrInvalidRange = errors.New("invalid range")

// Window selects rows by a 1-based "from to" expression.
//
//	""      all rows
//	"N"     rows N..end
//	"N M"   rows N..M-1
//
// Bounds past the end are clamped. It returns the selected rows and the number of
// the first selected row.
func Window(records []vacancy.Vacancy, rng string) ([]vacancy.Vacancy, int, error) {
	fields := strings.Fields(rng)
	start, end := 0, len(records)

	switch len(fields) {
	case 0:
	case 1, 2:
		from, err := parseRow(fields[0])
		if err != nil {
			return nil, 0, err
		}
		start = from - 1
		if len(fields) == 2 {
			to, err := parseRow(fields[1])
			if err != nil {
				return nil, 0, err
			}
			if to < from {
				return nil, 0, fmt.Errorf("%w: end %d before start %d", ErrInvalidRange, to, from)
			}
			end = to - 1
		}
	default:
		return nil, 0, fmt.Errorf("%w: expected at most two numbers, got %q", ErrInvalidRange, rng)
	}

	start = min(start, len(records))
	end = min(end, len(records))
	return records[start:end:end], start + 1, nil
}

func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: row %q must be a positive integer", ErrInvalidRange, s)
	}
	return n, nil
}
