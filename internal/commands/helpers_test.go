package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ppiankov/vacancyspectre/internal/config"
	"github.com/ppiankov/vacancyspectre/internal/currency"
	"github.com/ppiankov/vacancyspectre/internal/ingest"
)

func TestEnhanceError_NoCredentials(t *testing.T) {
	err := enhanceError("test", fmt.Errorf("NoCredentialProviders: no valid providers"))
	if !strings.Contains(err.Error(), "hint:") {
		t.Fatal("expected hint for NoCredentialProviders")
	}
	if !strings.Contains(err.Error(), "AWS_PROFILE") {
		t.Fatal("expected hint to mention AWS_PROFILE")
	}
}

func TestEnhanceError_ExpiredToken(t *testing.T) {
	err := enhanceError("test", fmt.Errorf("ExpiredToken: token has expired"))
	if !strings.Contains(err.Error(), "hint:") {
		t.Fatal("expected hint for ExpiredToken")
	}
}

func TestEnhanceError_AccessDenied(t *testing.T) {
	err := enhanceError("test", fmt.Errorf("AccessDenied: not authorized"))
	if !strings.Contains(err.Error(), "s3:GetObject") {
		t.Fatal("expected hint to mention s3:GetObject")
	}
}

func TestEnhanceError_Sentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("v.csv: %w", ingest.ErrEmptyFile), "empty"},
		{fmt.Errorf("v.csv: %w", ingest.ErrNoData), "column"},
		{fmt.Errorf("area: %w", currency.ErrUnknownCurrency), "rates"},
	}
	for _, tt := range tests {
		err := enhanceError("load", tt.err)
		if !strings.Contains(err.Error(), "hint:") || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("expected hint mentioning %q, got %v", tt.want, err)
		}
		if !errors.Is(err, tt.err) {
			t.Fatalf("expected wrapped error to match %v", tt.err)
		}
	}
}

func TestEnhanceError_GenericError(t *testing.T) {
	err := enhanceError("do something", fmt.Errorf("random error"))
	if strings.Contains(err.Error(), "hint:") {
		t.Fatal("expected no hint for generic error")
	}
	if !strings.Contains(err.Error(), "do something") {
		t.Fatal("expected action in error message")
	}
}

func TestComputeSourceHash(t *testing.T) {
	hash1 := computeSourceHash([]string{"a.csv", "s3://b/c.csv"})
	hash2 := computeSourceHash([]string{"a.csv", "s3://b/c.csv"})
	hash3 := computeSourceHash([]string{"a.csv"})

	if hash1 != hash2 {
		t.Fatal("same input should produce same hash")
	}
	if hash1 == hash3 {
		t.Fatal("different input should produce different hash")
	}
	if !strings.HasPrefix(hash1, "sha256:") {
		t.Fatalf("expected sha256: prefix, got %s", hash1)
	}
}

func TestSourceType(t *testing.T) {
	tests := []struct {
		sources []string
		want    string
	}{
		{[]string{"a.csv", "-"}, "csv"},
		{[]string{"s3://b/a.csv"}, "s3"},
		{[]string{"a.csv", "s3://b/a.csv"}, "mixed"},
	}
	for _, tt := range tests {
		if got := sourceType(tt.sources); got != tt.want {
			t.Fatalf("%v: expected %s, got %s", tt.sources, tt.want, got)
		}
	}
}

func TestResolveSources(t *testing.T) {
	saved := cfg
	defer func() { cfg = saved }()

	cfg = config.Config{Sources: []string{"from-config.csv"}}
	got, err := resolveSources([]string{"arg.csv"})
	if err != nil || len(got) != 1 || got[0] != "arg.csv" {
		t.Fatalf("expected args to win, got %v, %v", got, err)
	}
	got, err = resolveSources(nil)
	if err != nil || got[0] != "from-config.csv" {
		t.Fatalf("expected config sources, got %v, %v", got, err)
	}

	cfg = config.Config{}
	if _, err := resolveSources(nil); err == nil {
		t.Fatal("expected error without sources")
	}
}

func TestNewNormalizer_ConfigRates(t *testing.T) {
	saved := cfg
	defer func() { cfg = saved }()

	cfg = config.Config{Rates: map[string]float64{"CNY": 10}}
	norm := newNormalizer()
	if norm.ReferenceCode() != "RUR" {
		t.Fatalf("expected RUR reference, got %s", norm.ReferenceCode())
	}
	s := vacancyFixture()[0].Salary
	s.Currency = "CNY"
	mean, err := norm.Mean(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 15000 {
		t.Fatalf("expected 15000, got %d", mean)
	}
}

func TestSelectReporter(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if _, err := selectReporter(format, nil); err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
	}
	if _, err := selectReporter("sarif", nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
