package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.Time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return t, nil
}

// Today returns the current UTC calendar date at midnight.
func Today() time.Time {
	return TruncateToDate(time.Now().UTC())
}

// TruncateToDate drops the time-of-day portion, keeping UTC midnight.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
