package criterion

import "github.com/ppiankov/vacancyspectre/internal/vacancy"

// Entry is one token/label pair of a Dictionary.
type Entry struct {
	Token string
	Label string
}

// Dictionary translates between raw tokens and their display labels in both directions.
//
// Filtering relies on both sides: a record's raw token is shown through Display
// before it is compared with user text that is already a display label.
type Dictionary struct {
	toLabel map[string]string
	toToken map[string]string
}

// NewDictionary builds a Dictionary from ordered entries.
// When several tokens share a label, Token returns the first one.
func NewDictionary(entries []Entry) Dictionary {
	d := Dictionary{
		toLabel: make(map[string]string, len(entries)),
		toToken: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		d.toLabel[e.Token] = e.Label
		if _, ok := d.toToken[e.Label]; !ok {
			d.toToken[e.Label] = e.Token
		}
	}
	return d
}

// DefaultDictionary returns the Russian display labels used by the source export.
func DefaultDictionary() Dictionary {
	return NewDictionary(defaultEntries)
}

// Display returns the label for token, or token itself when it has none.
func (d Dictionary) Display(token string) string {
	if label, ok := d.toLabel[token]; ok {
		return label
	}
	return token
}

// Lookup returns the label for token and whether one exists.
func (d Dictionary) Lookup(token string) (string, bool) {
	label, ok := d.toLabel[token]
	return label, ok
}

// Token returns the first token whose label is label.
func (d Dictionary) Token(label string) (string, bool) {
	token, ok := d.toToken[label]
	return token, ok
}

// Len returns the number of tokens.
func (d Dictionary) Len() int {
	return len(d.toLabel)
}

var defaultEntries = []Entry{
	{"name", "Название"},
	{"description", "Описание"},
	{"key_skills", "Навыки"},
	{"experience_id", "Опыт работы"},
	{"premium", "Премиум-вакансия"},
	{"employer_name", "Компания"},
	{"salary_from", "Нижняя граница вилки оклада"},
	{"salary_to", "Верхняя граница вилки оклада"},
	{"salary_gross", "Оклад указан до вычета налогов"},
	{"salary_currency", "Идентификатор валюты оклада"},
	{"area_name", "Название региона"},
	{"published_at", "Дата и время публикации вакансии"},
	{"TRUE", "Да"},
	{"FALSE", "Нет"},
	{"True", "Да"},
	{"False", "Нет"},
	{"noExperience", "Нет опыта"},
	{"between1And3", "От 1 года до 3 лет"},
	{"between3And6", "От 3 до 6 лет"},
	{"moreThan6", "Более 6 лет"},
	{"AZN", "Манаты"},
	{"BYR", "Белорусские рубли"},
	{"EUR", "Евро"},
	{"GEL", "Грузинский лари"},
	{"KGS", "Киргизский сом"},
	{"KZT", "Тенге"},
	{"RUR", "Рубли"},
	{"UAH", "Гривны"},
	{"USD", "Доллары"},
	{"UZS", "Узбекский сум"},
}

// Ranks orders experience buckets. The values are not alphabetical.
type Ranks map[string]int

// DefaultRanks returns the experience ordinals of the source data.
func DefaultRanks() Ranks {
	return Ranks{
		vacancy.ExperienceNone:        0,
		vacancy.ExperienceOneToThree:  3,
		vacancy.ExperienceThreeToSix:  6,
		vacancy.ExperienceMoreThanSix: 7,
	}
}
