package dataset

import (
	"fmt"
	"sort"

	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// Sort returns a stably sorted copy of records ordered by the criterion named label.
//
// reversed flips the comparison rather than the result, so records with equal keys
// keep their input order in both directions. Keys are extracted before any
// reordering; on error nothing is returned.
func Sort(records []vacancy.Vacancy, label string, reversed bool, r *criterion.Resolver) ([]vacancy.Vacancy, error) {
	c, err := r.Resolve(label)
	if err != nil {
		return nil, err
	}

	out := make([]vacancy.Vacancy, len(records))
	copy(out, records)
	if c == criterion.None {
		return out, nil
	}

	type keyed struct {
		key criterion.Key
		v   vacancy.Vacancy
	}
	items := make([]keyed, len(out))
	for i, v := range out {
		k, err := r.Key(c, v)
		if err != nil {
			return nil, fmt.Errorf("sort by %s: record %d: %w", c.Label(), i+1, err)
		}
		items[i] = keyed{key: k, v: v}
	}

	sort.SliceStable(items, func(i, j int) bool {
		cmp := items[i].key.Compare(items[j].key)
		if reversed {
			return cmp > 0
		}
		return cmp < 0
	})

	for i := range items {
		out[i] = items[i].v
	}
	return out, nil
}
