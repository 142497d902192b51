package postgres

import (
	"testing"

	"github.com/example/courtstat/internal/ports/secondary"
)

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1); got != "$1" {
		t.Errorf("placeholders(1) = %q", got)
	}
	if got := placeholders(3); got != "$1, $2, $3" {
		t.Errorf("placeholders(3) = %q", got)
	}
}

func TestReportArgsMatchColumnCount(t *testing.T) {
	args := reportArgs(&secondary.MonthlyReportRecord{})
	if len(args) != 44 {
		t.Errorf("reportArgs() produced %d values, want 44", len(args))
	}
}
