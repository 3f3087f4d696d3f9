package analyzer

// DefaultMinAreaShare is the share of all vacancies an area needs to be reported.
const DefaultMinAreaShare = 0.01

// DefaultTop is how many areas a summary keeps.
const DefaultTop = 10

// AreaSalary is the mean normalized salary of one area.
type AreaSalary struct {
	Area   string `json:"area" yaml:"area"`
	Salary int64  `json:"salary" yaml:"salary"`
}

// AreaFraction is the share of all vacancies published in one area.
type AreaFraction struct {
	Area     string  `json:"area" yaml:"area"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

// Stats holds every statistics report for a dataset.
type Stats struct {
	Profession          string         `json:"profession" yaml:"profession"`
	TotalVacancies      int            `json:"total_vacancies" yaml:"total_vacancies"`
	SalaryByYear        map[int]int64  `json:"salary_by_year" yaml:"salary_by_year"`
	CountByYear         map[int]int    `json:"count_by_year" yaml:"count_by_year"`
	ProfessionSalary    map[int]int64  `json:"profession_salary_by_year" yaml:"profession_salary_by_year"`
	ProfessionCount     map[int]int    `json:"profession_count_by_year" yaml:"profession_count_by_year"`
	SalaryByArea        []AreaSalary   `json:"salary_by_area" yaml:"salary_by_area"`
	FractionByArea      []AreaFraction `json:"fraction_by_area" yaml:"fraction_by_area"`
	ReferenceCurrency   string         `json:"reference_currency" yaml:"reference_currency"`
	AreasBelowThreshold int            `json:"areas_below_threshold" yaml:"areas_below_threshold"`
}

// AnalyzerConfig controls analysis behavior.
type AnalyzerConfig struct {
	Profession   string
	MinAreaShare float64
	Top          int
}
