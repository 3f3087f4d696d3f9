package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for in the working directory.
const FileName = ".vacancyspectre.yaml"

// Config holds vacancyspectre configuration loaded from .vacancyspectre.yaml.
type Config struct {
	Sources           []string           `yaml:"sources" validate:"omitempty,dive,required"`
	Profile           string             `yaml:"profile"`
	Region            string             `yaml:"region"`
	Endpoint          string             `yaml:"endpoint" validate:"omitempty,url"`
	Profession        string             `yaml:"profession"`
	Format            string             `yaml:"format" validate:"omitempty,oneof=text json yaml"`
	Top               int                `yaml:"top" validate:"gte=0"`
	MinAreaShare      *float64           `yaml:"min_area_share" validate:"omitempty,gte=0,lte=1"`
	ReferenceCurrency string             `yaml:"reference_currency" validate:"omitempty,len=3,uppercase"`
	Rates             map[string]float64 `yaml:"rates" validate:"omitempty,dive,keys,len=3,endkeys,gt=0"`
	Timeout           string             `yaml:"timeout" validate:"omitempty,duration"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field values against their constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// TimeoutDuration parses the timeout string as a duration.
func (c Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Load searches for .vacancyspectre.yaml or .vacancyspectre.yml in the given directory
// and returns the parsed, validated config. Returns an empty Config if no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, FileName),
		filepath.Join(dir, ".vacancyspectre.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
