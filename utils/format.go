package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders a server timestamp as "Jan 2, 2006, 3:04 PM". The
// order service is not consistent about its date format, so several
// layouts are tried and the raw string is returned if none match.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006, 3:04 PM")
		}
	}
	return value
}

// FormatCurrency renders an amount with two decimals, no symbol.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// RequestID returns an id for correlating outbound backend calls.
func RequestID() string {
	return uuid.NewString()
}
