package services

import (
	"fmt"
	"time"

	"hotel-booking-api/models"
)

// Overlaps reports whether the half-open date intervals [a1,a2) and [b1,b2)
// share at least one day: a1 < b2 && a2 > b1.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && a2.After(b1)
}

// AvailabilityService answers "is this room free for these dates" without
// side effects.
type AvailabilityService struct {
	Repo BookingRepository
}

func NewAvailabilityService(repo BookingRepository) *AvailabilityService {
	return &AvailabilityService{Repo: repo}
}

// CheckRoom scans the room's pending and confirmed bookings for overlap with
// [checkIn, checkOut). excludeBookingID (0 for none) skips the booking being
// updated. Cancelled and completed bookings never block. Returns the
// conflicting bookings for diagnostic reporting.
func (s *AvailabilityService) CheckRoom(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, []models.Booking, error) {
	if !checkIn.Before(checkOut) {
		return false, nil, ErrInvalidRange
	}

	active, err := s.Repo.FindByRoomAndStatus(roomID, models.ActiveStatuses...)
	if err != nil {
		return false, nil, fmt.Errorf("failed to load bookings for room %d: %w", roomID, err)
	}

	var conflicts []models.Booking
	for _, b := range active {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			conflicts = append(conflicts, b)
		}
	}
	return len(conflicts) == 0, conflicts, nil
}

// AvailableRoomsForType returns the rooms of a type with no conflicting
// booking in [checkIn, checkOut).
func (s *AvailabilityService) AvailableRoomsForType(roomTypeID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}

	rooms, err := s.Repo.RoomsByType(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for type %d: %w", roomTypeID, err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		ok, _, err := s.CheckRoom(room.ID, checkIn, checkOut, 0)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, room)
		}
	}
	return available, nil
}
