package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// ErrInvalidRange is returned when a negative number of entries is requested.
var ErrInvalidRange = errors.New("invalid range")

// SalaryNormalizer yields the mean salary of a range in a common currency.
type SalaryNormalizer interface {
	Mean(s vacancy.Salary) (int64, error)
	ReferenceCode() string
}

// group is the set of records sharing one key, in first-seen key order.
type group[K comparable] struct {
	key     K
	members []vacancy.Vacancy
}

type grouper[K comparable] struct {
	index  map[K]int
	groups []group[K]
}

func (g *grouper[K]) add(k K, v vacancy.Vacancy) {
	if g.index == nil {
		g.index = make(map[K]int)
	}
	i, ok := g.index[k]
	if !ok {
		i = len(g.groups)
		g.index[k] = i
		g.groups = append(g.groups, group[K]{key: k})
	}
	g.groups[i].members = append(g.groups[i].members, v)
}

func groupByYear(records []vacancy.Vacancy) ([]group[int], error) {
	var g grouper[int]
	for _, v := range records {
		year, err := v.Year()
		if err != nil {
			return nil, err
		}
		g.add(year, v)
	}
	return g.groups, nil
}

func groupByArea(records []vacancy.Vacancy) []group[string] {
	var g grouper[string]
	for _, v := range records {
		g.add(v.Area, v)
	}
	return g.groups
}

// matchesProfession reports whether the name contains profession, ignoring case.
// An empty profession matches every record.
func matchesProfession(name, profession string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(profession))
}

// YearSalaryDynamics returns, for every publication year in records, the floor mean
// normalized salary of vacancies whose name contains profession. Years without a
// match map to 0.
func YearSalaryDynamics(records []vacancy.Vacancy, profession string, norm SalaryNormalizer) (map[int]int64, error) {
	groups, err := groupByYear(records)
	if err != nil {
		return nil, err
	}

	result := make(map[int]int64, len(groups))
	for _, g := range groups {
		var sum, count int64
		for _, v := range g.members {
			if !matchesProfession(v.Name, profession) {
				continue
			}
			mean, err := norm.Mean(v.Salary)
			if err != nil {
				return nil, fmt.Errorf("year %d: %q: %w", g.key, v.Name, err)
			}
			sum += mean
			count++
		}
		if count > 0 {
			result[g.key] = vacancy.FloorDiv(sum, count)
		} else {
			result[g.key] = 0
		}
	}
	return result, nil
}

// YearVacancyCounts returns, for every publication year in records, how many
// vacancies have a name containing profession.
func YearVacancyCounts(records []vacancy.Vacancy, profession string) (map[int]int, error) {
	groups, err := groupByYear(records)
	if err != nil {
		return nil, err
	}

	result := make(map[int]int, len(groups))
	for _, g := range groups {
		count := 0
		for _, v := range g.members {
			if matchesProfession(v.Name, profession) {
				count++
			}
		}
		result[g.key] = count
	}
	return result, nil
}

// minAreaCount is the smallest group size an area needs, measured against the whole dataset.
func minAreaCount(total int, share float64) int {
	return int(math.Floor(float64(total) * share))
}

// reportedAreas groups records by area and drops areas below the share threshold.
func reportedAreas(records []vacancy.Vacancy, share float64) []group[string] {
	groups := groupByArea(records)
	threshold := minAreaCount(len(records), share)

	kept := groups[:0:0]
	for _, g := range groups {
		if len(g.members) >= threshold {
			kept = append(kept, g)
		} else {
			slog.Debug("Area below threshold", "area", g.key, "vacancies", len(g.members), "threshold", threshold)
		}
	}
	return kept
}

// AreaSalaryLevels returns the floor mean normalized salary of every area holding at
// least floor(len(records) × share) vacancies, highest first. Ties keep first-seen order.
func AreaSalaryLevels(records []vacancy.Vacancy, norm SalaryNormalizer, share float64) ([]AreaSalary, error) {
	groups := reportedAreas(records, share)

	result := make([]AreaSalary, 0, len(groups))
	for _, g := range groups {
		var sum int64
		for _, v := range g.members {
			mean, err := norm.Mean(v.Salary)
			if err != nil {
				return nil, fmt.Errorf("area %s: %q: %w", g.key, v.Name, err)
			}
			sum += mean
		}
		result = append(result, AreaSalary{Area: g.key, Salary: vacancy.FloorDiv(sum, int64(len(g.members)))})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Salary > result[j].Salary })
	return result, nil
}

// AreaVacancyFractions returns each reported area's share of all records, rounded to
// four decimals, highest first. Ties keep first-seen order.
func AreaVacancyFractions(records []vacancy.Vacancy, share float64) []AreaFraction {
	groups := reportedAreas(records, share)
	total := float64(len(records))

	result := make([]AreaFraction, 0, len(groups))
	for _, g := range groups {
		result = append(result, AreaFraction{Area: g.key, Fraction: round4(float64(len(g.members)) / total)})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Fraction > result[j].Fraction })
	return result
}

// round4 rounds the way a "%.4f" rendering does.
func round4(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	return r
}

// First returns at most n leading items.
func First[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRange, n)
	}
	return items[:min(n, len(items)):min(n, len(items))], nil
}

// Analyze computes every report over records. Area lists are cut to cfg.Top entries
// unless cfg.Top is zero. A zero cfg.MinAreaShare reports every area.
func Analyze(records []vacancy.Vacancy, cfg AnalyzerConfig, norm SalaryNormalizer) (*Stats, error) {
	if cfg.Top < 0 {
		return nil, fmt.Errorf("top areas: %w: %d", ErrInvalidRange, cfg.Top)
	}
	share := cfg.MinAreaShare
	if share < 0 || share > 1 {
		return nil, fmt.Errorf("min area share: %w: %g", ErrInvalidRange, share)
	}

	stats := &Stats{
		Profession:        cfg.Profession,
		TotalVacancies:    len(records),
		ReferenceCurrency: norm.ReferenceCode(),
	}

	// Each report reads records only and writes its own field.
	var (
		g        errgroup.Group
		salaries []AreaSalary
	)
	g.Go(func() (err error) {
		if stats.SalaryByYear, err = YearSalaryDynamics(records, "", norm); err != nil {
			return fmt.Errorf("salary by year: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.CountByYear, err = YearVacancyCounts(records, ""); err != nil {
			return fmt.Errorf("count by year: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.ProfessionSalary, err = YearSalaryDynamics(records, cfg.Profession, norm); err != nil {
			return fmt.Errorf("profession salary by year: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.ProfessionCount, err = YearVacancyCounts(records, cfg.Profession); err != nil {
			return fmt.Errorf("profession count by year: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if salaries, err = AreaSalaryLevels(records, norm, share); err != nil {
			return fmt.Errorf("salary by area: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	fractions := AreaVacancyFractions(records, share)
	stats.AreasBelowThreshold = len(groupByArea(records)) - len(fractions)

	if cfg.Top > 0 {
		salaries, _ = First(salaries, cfg.Top)
		fractions, _ = First(fractions, cfg.Top)
	}
	stats.SalaryByArea = salaries
	stats.FractionByArea = fractions

	return stats, nil
}

// Years returns the keys of a year map in ascending order.
func Years[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
