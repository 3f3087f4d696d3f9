package vacancy

// Experience buckets as they appear in the source data.
const (
	ExperienceNone        = "noExperience"
	ExperienceOneToThree  = "between1And3"
	ExperienceThreeToSix  = "between3And6"
	ExperienceMoreThanSix = "moreThan6"
)

// Salary is a currency-tagged salary range.
// From and To keep the source text; any fractional part is truncated before numeric use.
type Salary struct {
	From     string `json:"salary_from,omitempty" yaml:"salary_from,omitempty"`
	To       string `json:"salary_to,omitempty" yaml:"salary_to,omitempty"`
	Gross    string `json:"salary_gross,omitempty" yaml:"salary_gross,omitempty"`
	Currency string `json:"salary_currency,omitempty" yaml:"salary_currency,omitempty"`
}

// Vacancy is a single job posting.
//
// A zero-valued field means the source had no such column. Ingestion drops rows
// with empty cells, so an empty string never stands for a present but blank value.
type Vacancy struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Skills      []string `json:"key_skills,omitempty" yaml:"key_skills,omitempty"`
	Experience  string   `json:"experience_id,omitempty" yaml:"experience_id,omitempty"`
	Premium     string   `json:"premium,omitempty" yaml:"premium,omitempty"`
	Employer    string   `json:"employer_name,omitempty" yaml:"employer_name,omitempty"`
	Salary      Salary   `json:"salary" yaml:"salary"`
	Area        string   `json:"area_name,omitempty" yaml:"area_name,omitempty"`
	PublishedAt string   `json:"published_at,omitempty" yaml:"published_at,omitempty"`
}

// IsGross reports whether the gross flag holds one of the true spellings.
func (s Salary) IsGross() bool {
	switch s.Gross {
	case "True", "TRUE", "true":
		return true
	}
	return false
}
