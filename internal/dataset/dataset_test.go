package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/currency"
	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

func fixture() []vacancy.Vacancy {
	return []vacancy.Vacancy{
		{
			Name: "Руководитель проекта", Description: "YYYY", Skills: []string{"Управление", "Agile"},
			Experience: "between3And6", Premium: "False", Employer: "ПМЦ Авангард",
			Salary: vacancy.Salary{From: "80000", To: "100000", Gross: "False", Currency: "RUR"},
			Area:   "Санкт-Петербург", PublishedAt: "2022-07-17T18:23:06+0300",
		},
		{
			Name: "HTML-верстальщик", Description: "XXXX", Skills: []string{"HTML5", "CSS3", "Git", "JS"},
			Experience: "noExperience", Premium: "False", Employer: "Студия",
			Salary: vacancy.Salary{From: "1000", To: "2000", Gross: "True", Currency: "EUR"},
			Area:   "Москва", PublishedAt: "2022-07-05T10:00:00+0300",
		},
		{
			Name: "Senior Python Developer", Description: "ZZZZ", Skills: []string{"Python"},
			Experience: "moreThan6", Premium: "True", Employer: "Crypto",
			Salary: vacancy.Salary{From: "3000", To: "5000", Gross: "False", Currency: "USD"},
			Area:   "Москва", PublishedAt: "2022-07-01T09:00:00+0300",
		},
		{
			Name: "HTML-верстальщик (remote)", Description: "XXXX", Skills: []string{"HTML5", "CSS3"},
			Experience: "noExperience", Premium: "False", Employer: "Студия",
			Salary: vacancy.Salary{From: "90000", To: "130000.5", Gross: "True", Currency: "RUR"},
			Area:   "Казань", PublishedAt: "2022-07-10T12:00:00+0300",
		},
	}
}

func names(records []vacancy.Vacancy) []string {
	out := make([]string, len(records))
	for i, v := range records {
		out[i] = v.Name
	}
	return out
}

func TestParseFilter(t *testing.T) {
	d := criterion.DefaultDictionary()
	tests := []struct {
		expr        string
		wantLabel   string
		wantContent string
	}{
		{"", "", ""},
		{"Название: Аналитик", "Название", "Аналитик"},
		{"name: Аналитик", "Название", "Аналитик"},
		{"Идентификатор валюты оклада: BYR", "Идентификатор валюты оклада", "Белорусские рубли"},
		{"Описание: a: b", "Описание", "a: b"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			label, content, err := ParseFilter(tt.expr, d)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}

func TestParseFilter_Malformed(t *testing.T) {
	_, _, err := ParseFilter("Название Аналитик", criterion.DefaultDictionary())
	assert.ErrorIs(t, err, criterion.ErrMalformedCriterion)

	_, _, err = ParseFilter("Название:Аналитик", criterion.DefaultDictionary())
	assert.ErrorIs(t, err, criterion.ErrMalformedCriterion)
}

func TestFilter_EmptyReturnsAll(t *testing.T) {
	records := fixture()
	got, err := Filter(records, "", criterion.DefaultResolver())
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, names(fixture()), names(records))
}

func TestFilter(t *testing.T) {
	r := criterion.DefaultResolver()
	tests := []struct {
		expr string
		want []string
	}{
		{"Название: HTML-верстальщик", []string{"HTML-верстальщик"}},
		{"Описание: XXXX", []string{"HTML-верстальщик", "HTML-верстальщик (remote)"}},
		{"Навыки: HTML5, CSS3", []string{"HTML-верстальщик", "HTML-верстальщик (remote)"}},
		{"Опыт работы: Более 6 лет", []string{"Senior Python Developer"}},
		{"Премиум-вакансия: Да", []string{"Senior Python Developer"}},
		{"Компания: ПМЦ Авангард", []string{"Руководитель проекта"}},
		{"Оклад: 95000", []string{"Руководитель проекта", "HTML-верстальщик (remote)"}},
		{"Оклад указан до вычета налогов: Да", []string{"HTML-верстальщик", "HTML-верстальщик (remote)"}},
		{"Идентификатор валюты оклада: EUR", []string{"HTML-верстальщик"}},
		{"Идентификатор валюты оклада: Доллары", []string{"Senior Python Developer"}},
		{"Название региона: Москва", []string{"HTML-верстальщик", "Senior Python Developer"}},
		{"Дата публикации вакансии: 17.07.2022", []string{"Руководитель проекта"}},
		{"published_at: 10.07.2022", []string{"HTML-верстальщик (remote)"}},
		{"area_name: Казань", []string{"HTML-верстальщик (remote)"}},
		{"Название: Никто", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Filter(fixture(), tt.expr, r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_SkillsSuperset(t *testing.T) {
	requested := []string{"HTML5", "CSS3"}
	got, err := Filter(fixture(), "Навыки: HTML5, CSS3", criterion.DefaultResolver())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, v := range got {
		for _, s := range requested {
			assert.Contains(t, v.Skills, s)
		}
	}
}

func TestFilter_Errors(t *testing.T) {
	r := criterion.DefaultResolver()

	_, err := Filter(fixture(), "Зарплата: 100", r)
	assert.ErrorIs(t, err, criterion.ErrUnknownCriterion)

	_, err = Filter(fixture(), "Оклад", r)
	assert.ErrorIs(t, err, criterion.ErrMalformedCriterion)

	_, err = Filter(fixture(), "Оклад: сто", r)
	assert.ErrorIs(t, err, criterion.ErrMalformedCriterion)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	_, err := Filter(records, "Название региона: Москва", criterion.DefaultResolver())
	require.NoError(t, err)
	assert.Equal(t, fixture(), records)
}

func TestFilterInPlace(t *testing.T) {
	r := criterion.DefaultResolver()
	records := fixture()
	require.NoError(t, FilterInPlace(&records, "Название региона: Москва", r))
	assert.Len(t, records, 2)

	before := fixture()
	err := FilterInPlace(&before, "bogus", r)
	assert.Error(t, err)
	assert.Len(t, before, 4)
}

func TestSort(t *testing.T) {
	r := criterion.DefaultResolver()
	tests := []struct {
		label string
		want  []string
	}{
		{"Название", []string{"HTML-верстальщик", "HTML-верстальщик (remote)", "Senior Python Developer", "Руководитель проекта"}},
		{"Навыки", []string{"Senior Python Developer", "Руководитель проекта", "HTML-верстальщик (remote)", "HTML-верстальщик"}},
		{"Опыт работы", []string{"HTML-верстальщик", "HTML-верстальщик (remote)", "Руководитель проекта", "Senior Python Developer"}},
		// EUR 1500*59.9 = 89850 mean, RUR 90000, RUR 110000, USD 4000*60.66 = 242640
		{"Оклад", []string{"HTML-верстальщик", "Руководитель проекта", "HTML-верстальщик (remote)", "Senior Python Developer"}},
		{"Дата публикации вакансии", []string{"Senior Python Developer", "HTML-верстальщик", "HTML-верстальщик (remote)", "Руководитель проекта"}},
		{"", []string{"Руководитель проекта", "HTML-верстальщик", "Senior Python Developer", "HTML-верстальщик (remote)"}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Sort(fixture(), tt.label, false, r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSort_Reversed(t *testing.T) {
	got, err := Sort(fixture(), "Название", true, criterion.DefaultResolver())
	require.NoError(t, err)
	assert.Equal(t, []string{"Руководитель проекта", "Senior Python Developer", "HTML-верстальщик (remote)", "HTML-верстальщик"}, names(got))
}

func TestSort_StableInBothDirections(t *testing.T) {
	r := criterion.DefaultResolver()
	// Premium keys: False, False, True, False. The three "False" records must keep
	// their relative order whichever way the sort runs.
	asc, err := Sort(fixture(), "Премиум-вакансия", false, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Руководитель проекта", "HTML-верстальщик", "HTML-верстальщик (remote)", "Senior Python Developer"}, names(asc))

	desc, err := Sort(fixture(), "Премиум-вакансия", true, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Senior Python Developer", "Руководитель проекта", "HTML-верстальщик", "HTML-верстальщик (remote)"}, names(desc))
}

func TestSort_MissingValuesFirst(t *testing.T) {
	records := append(fixture(), vacancy.Vacancy{Name: "Без навыков"})
	got, err := Sort(records, "Навыки", false, criterion.DefaultResolver())
	require.NoError(t, err)
	assert.Equal(t, "Без навыков", got[0].Name)
}

func TestSort_Errors(t *testing.T) {
	r := criterion.DefaultResolver()
	_, err := Sort(fixture(), "Зарплата", false, r)
	assert.ErrorIs(t, err, criterion.ErrUnknownCriterion)

	records := fixture()
	records[2].Salary.Currency = "XXX"
	got, err := Sort(records, "Оклад", false, r)
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	assert.Nil(t, got)
	assert.Equal(t, "Senior Python Developer", records[2].Name)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	_, err := Sort(records, "Название", true, criterion.DefaultResolver())
	require.NoError(t, err)
	assert.Equal(t, fixture(), records)
}

func TestWindow(t *testing.T) {
	records := fixture()
	tests := []struct {
		rng       string
		want      []string
		wantFirst int
	}{
		{"", names(records), 1},
		{"2", []string{"HTML-верстальщик", "Senior Python Developer", "HTML-верстальщик (remote)"}, 2},
		{"2 4", []string{"HTML-верстальщик", "Senior Python Developer"}, 2},
		{"3 100", []string{"Senior Python Developer", "HTML-верстальщик (remote)"}, 3},
		{"10", []string{}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			got, first, err := Window(records, tt.rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, tt.wantFirst, first)
		})
	}
}

func TestWindow_Invalid(t *testing.T) {
	for _, rng := range []string{"0", "-1", "a", "3 2", "1 2 3"} {
		_, _, err := Window(fixture(), rng)
		assert.ErrorIs(t, err, ErrInvalidRange, rng)
	}
}
