package services

import "hotel-booking-api/models"

// Caller identifies the authenticated principal for capability checks.
type Caller struct {
	UserID  uint
	IsStaff bool
}

// CanAccessBooking allows the owning user and staff, evaluated before every
// read or mutation of a single booking.
func CanAccessBooking(caller Caller, b *models.Booking) bool {
	return caller.IsStaff || caller.UserID == b.UserID
}
