package vacancy

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp is returned when PublishedAt does not follow the source layout.
var ErrInvalidTimestamp = errors.New("invalid publication timestamp")

// TimestampLayout is the source layout without the trailing ±ZZZZ offset.
const TimestampLayout = "2006-01-02T15:04:05"

// ParseTime parses a "YYYY-MM-DDTHH:MM:SS±ZZZZ" timestamp.
// The offset is ignored: all postings are compared on their local wall clock.
func ParseTime(s string) (time.Time, error) {
	if len(s) < len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	t, err := time.Parse(TimestampLayout, s[:len(TimestampLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t, nil
}

// Year returns the calendar year of the posting.
func (v Vacancy) Year() (int, error) {
	t, err := ParseTime(v.PublishedAt)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// DisplayDate formats a source timestamp as DD.MM.YYYY.
// Returns "" when the timestamp is too short to slice.
func DisplayDate(s string) string {
	if len(s) < 10 {
		return ""
	}
	return s[8:10] + "." + s[5:7] + "." + s[0:4]
}
