package criterion

import (
	"cmp"
	"fmt"
	"time"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// Key is a sort key extracted from one vacancy.
// Missing keys order before present ones.
type Key struct {
	present bool
	text    string
	number  int64
	at      time.Time
}

// TextKey, NumberKey and TimeKey build present keys.
func TextKey(s string) Key { return Key{present: true, text: s} }

func NumberKey(n int64) Key { return Key{present: true, number: n} }

func TimeKey(t time.Time) Key { return Key{present: true, at: t} }

func missingKey() Key { return Key{} }

func textOrMissing(s string) Key { return Key{present: s != "", text: s} }

// Present reports whether the key was extracted from an existing value.
func (k Key) Present() bool { return k.present }

// Compare returns -1, 0 or +1. Keys of one criterion only differ in one component.
func (k Key) Compare(o Key) int {
	if k.present != o.present {
		if !k.present {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(k.number, o.number); c != 0 {
		return c
	}
	if c := k.at.Compare(o.at); c != 0 {
		return c
	}
	return cmp.Compare(k.text, o.text)
}

// Key extracts the sort key of criterion c from v.
// Only Salary can fail, with currency.ErrUnknownCurrency for an unknown code.
func (r *Resolver) Key(c Criterion, v vacancy.Vacancy) (Key, error) {
	switch c {
	case None:
		return missingKey(), nil
	case Name:
		return textOrMissing(v.Name), nil
	case Description:
		return textOrMissing(v.Description), nil
	case Employer:
		return textOrMissing(v.Employer), nil
	case Area:
		return textOrMissing(v.Area), nil
	case Premium:
		return textOrMissing(v.Premium), nil
	case Currency:
		return textOrMissing(v.Salary.Currency), nil
	case Gross:
		return textOrMissing(v.Salary.Gross), nil
	case Skills:
		if v.Skills == nil {
			return missingKey(), nil
		}
		return NumberKey(int64(len(v.Skills))), nil
	case Experience:
		rank, ok := r.ranks[v.Experience]
		if !ok {
			return missingKey(), nil
		}
		return NumberKey(int64(rank)), nil
	case Salary:
		if v.Salary.From == "" || v.Salary.To == "" || v.Salary.Currency == "" {
			return missingKey(), nil
		}
		mean, err := r.normalizer.Mean(v.Salary)
		if err != nil {
			return Key{}, err
		}
		return NumberKey(mean), nil
	case PublishedAt:
		t, err := vacancy.ParseTime(v.PublishedAt)
		if err != nil {
			return missingKey(), nil
		}
		return TimeKey(t), nil
	}
	return Key{}, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
}
