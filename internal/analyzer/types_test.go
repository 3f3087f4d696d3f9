package analyzer

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStats_JSONYearKeys(t *testing.T) {
	s := Stats{
		TotalVacancies: 3,
		SalaryByYear:   map[int]int64{2021: 125000, 2022: 89850},
		CountByYear:    map[int]int{2021: 1, 2022: 2},
		FractionByArea: []AreaFraction{{Area: "Москва", Fraction: 0.6667}},
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"2021":125000`) {
		t.Fatalf("expected year key in output, got %s", data)
	}

	var decoded Stats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.CountByYear[2022] != 2 {
		t.Fatalf("expected 2 vacancies in 2022, got %d", decoded.CountByYear[2022])
	}
	if decoded.FractionByArea[0].Fraction != 0.6667 {
		t.Fatalf("expected fraction 0.6667, got %v", decoded.FractionByArea[0].Fraction)
	}
}
