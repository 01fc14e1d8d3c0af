package utils

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"rfc3339", "2026-08-30T18:45:00Z", "Aug 30, 2026, 6:45 PM"},
		{"no zone", "2026-08-30T18:45:00", "Aug 30, 2026, 6:45 PM"},
		{"space separated", "2026-08-30 08:05:00", "Aug 30, 2026, 8:05 AM"},
		{"date only", "2026-08-30", "Aug 30, 2026, 12:00 AM"},
		{"unparseable falls through", "next tuesday", "next tuesday"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.value); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{25.98, "25.98"},
		{0, "0.00"},
		{12.5, "12.50"},
		{-3, "0.00"},
		{19.999, "20.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRequestIDUnique(t *testing.T) {
	if RequestID() == RequestID() {
		t.Error("expected distinct request ids")
	}
}
