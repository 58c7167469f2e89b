package services

import (
	"errors"
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  error
	}{
		{"one night", "2025-06-01", "2025-06-02", 1, nil},
		{"four nights", "2025-06-01", "2025-06-05", 4, nil},
		{"across month boundary", "2025-06-28", "2025-07-03", 5, nil},
		{"across year boundary", "2025-12-30", "2026-01-02", 3, nil},
		{"same day", "2025-06-01", "2025-06-01", 0, ErrInvalidRange},
		{"inverted", "2025-06-05", "2025-06-01", 0, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nights(date(tt.checkIn), date(tt.checkOut))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Nights() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalPriceCents(t *testing.T) {
	tests := []struct {
		name      string
		rateCents int64
		checkIn   string
		checkOut  string
		want      int64
		wantErr   error
	}{
		{"rate times nights", 12500, "2025-06-01", "2025-06-05", 50000, nil},
		{"single night", 9999, "2025-06-01", "2025-06-02", 9999, nil},
		{"no rounding drift on odd rates", 333, "2025-06-01", "2025-06-04", 999, nil},
		{"zero-night stay rejected", 10000, "2025-06-01", "2025-06-01", 0, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalPriceCents(tt.rateCents, date(tt.checkIn), date(tt.checkOut))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TotalPriceCents() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("TotalPriceCents() = %d, want %d", got, tt.want)
			}
		})
	}
}

// rate * (d2 - d1).days must hold for arbitrary ranges.
func TestTotalPriceMatchesDayCount(t *testing.T) {
	start := date("2025-03-01")
	const rate = int64(7345)
	for days := 1; days <= 30; days++ {
		end := start.AddDate(0, 0, days)
		got, err := TotalPriceCents(rate, start, end)
		if err != nil {
			t.Fatalf("days=%d: unexpected error %v", days, err)
		}
		if want := rate * int64(days); got != want {
			t.Fatalf("days=%d: got %d, want %d", days, got, want)
		}
	}
}
