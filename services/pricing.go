package services

import "time"

// Nights returns the whole-day length of the half-open interval
// [checkIn, checkOut). Inputs are calendar dates (midnight UTC), so the
// division is exact. Fails with ErrInvalidRange when the stay is under one
// night.
func Nights(checkIn, checkOut time.Time) (int, error) {
	n := int(checkOut.Sub(checkIn) / (24 * time.Hour))
	if n < 1 {
		return 0, ErrInvalidRange
	}
	return n, nil
}

// TotalPriceCents computes nightly rate times nights in integer cents.
// Currency never goes through floating point.
func TotalPriceCents(nightlyRateCents int64, checkIn, checkOut time.Time) (int64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return nightlyRateCents * int64(nights), nil
}
