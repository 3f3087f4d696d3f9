package report

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"35000.5", "35 000"},
		{"1234567.89", "1 234 567"},
		{"100000", "100 000"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Fatalf("FormatAmount(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(116616); got != "116 616" {
		t.Fatalf("expected 116 616, got %q", got)
	}
	if got := FormatNumber(-1500); got != "-1 500" {
		t.Fatalf("expected -1 500, got %q", got)
	}
}

func TestCutText(t *testing.T) {
	short := strings.Repeat("я", 100)
	if CutText(short) != short {
		t.Fatal("expected 100-rune text unchanged")
	}
	long := strings.Repeat("я", 101)
	if got := CutText(long); got != short+"..." {
		t.Fatalf("expected cut text, got %q", got)
	}
}
