package report

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Generate writes the YAML report.
func (r *YAMLReporter) Generate(data Data) error {
	enc := yaml.NewEncoder(r.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(envelope{Schema: Schema, Data: data}); err != nil {
		return fmt.Errorf("encode YAML report: %w", err)
	}
	return enc.Close()
}
