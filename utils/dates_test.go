package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2025-06-01 ")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate() = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "01/06/2025", "2025-13-01", "2025-06-32", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate(%q) accepted an invalid date", bad)
		}
	}
}

func TestTruncateToDate(t *testing.T) {
	in := time.Date(2025, 6, 1, 17, 42, 9, 120, time.UTC)
	got := TruncateToDate(in)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("TruncateToDate() = %v, want %v", got, want)
	}
}
