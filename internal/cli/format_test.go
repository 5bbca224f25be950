package cli

import "testing"

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0%",
		62.5:  "62.5%",
		100:   "100.0%",
		33.33: "33.3%",
	}
	for in, want := range tests {
		if got := FormatPercent(in); got != want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Fatalf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(5); got != "5 days" {
		t.Fatalf("FormatDays(5) = %q", got)
	}
	if got := FormatDays(0); got != "0 days" {
		t.Fatalf("FormatDays(0) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate(short) = %q", got)
	}
	if got := Truncate("a very long trip name", 10); got != "a very lo…" {
		t.Fatalf("Truncate = %q, want 10 runes with ellipsis", got)
	}
	// Rune-safe on multibyte input
	if got := Truncate("ééééééé", 5); got != "éééé…" {
		t.Fatalf("Truncate(multibyte) = %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1234.5, "USD"); got != "$1,234.50" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := FormatAmount(1234.5, "JPY"); got != "¥1,235" {
		t.Fatalf("FormatAmount(JPY) = %q", got)
	}
}
