package report

import (
	"io"
	"time"

	"github.com/ppiankov/vacancyspectre/internal/analyzer"
)

// Schema identifies the structured report layout.
const Schema = "vacancyspectre/v1"

// Reporter is the interface for statistics output formats.
type Reporter interface {
	Generate(data Data) error
}

// Data holds everything a statistics report renders.
type Data struct {
	Tool      string         `json:"tool" yaml:"tool"`
	Version   string         `json:"version" yaml:"version"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	ReportID  string         `json:"report_id" yaml:"report_id"`
	Source    Source         `json:"source" yaml:"source"`
	Config    ReportConfig   `json:"config" yaml:"config"`
	Stats     analyzer.Stats `json:"stats" yaml:"stats"`
}

// Source describes where the vacancies came from.
type Source struct {
	Type    string `json:"type" yaml:"type"`
	Count   int    `json:"count" yaml:"count"`
	URIHash string `json:"uri_hash" yaml:"uri_hash"`
}

// ReportConfig records the settings used for the analysis.
type ReportConfig struct {
	Profession        string  `json:"profession" yaml:"profession"`
	Top               int     `json:"top" yaml:"top"`
	MinAreaShare      float64 `json:"min_area_share" yaml:"min_area_share"`
	ReferenceCurrency string  `json:"reference_currency" yaml:"reference_currency"`
}

// TextReporter writes a human-readable summary.
type TextReporter struct {
	Writer io.Writer
}

// JSONReporter writes the report as indented JSON.
type JSONReporter struct {
	Writer io.Writer
}

// YAMLReporter writes the report as YAML.
type YAMLReporter struct {
	Writer io.Writer
}

type envelope struct {
	Schema string `json:"$schema" yaml:"$schema"`
	Data   `yaml:",inline"`
}
