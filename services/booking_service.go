package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"gorm.io/datatypes"
)

// BookingService drives the booking lifecycle: pending on create, staff
// transitions to confirmed/completed, owner or staff cancellation with a
// check-in date guard.
type BookingService struct {
	Repo BookingRepository
}

func NewBookingService(repo BookingRepository) *BookingService {
	return &BookingService{Repo: repo}
}

// GuestDraft is a named accompanying guest captured at booking time.
type GuestDraft struct {
	FullName string `json:"full_name"`
	Type     string `json:"type"`
}

type BookingInput struct {
	RoomID          uint         `json:"room_id"`
	CheckIn         string       `json:"check_in_date"`
	CheckOut        string       `json:"check_out_date"`
	Adults          int          `json:"adults"`
	Children        int          `json:"children"`
	SpecialRequests string       `json:"special_requests"`
	TotalPriceCents int64        `json:"total_price_cents"`
	Guests          []GuestDraft `json:"guests"`
}

func normalizeGuests(guests []GuestDraft) datatypes.JSON {
	out := make([]GuestDraft, 0, len(guests))
	for _, g := range guests {
		name := strings.TrimSpace(g.FullName)
		if name == "" {
			continue
		}
		typ := strings.TrimSpace(g.Type)
		if typ == "" {
			typ = "Adult"
		}
		out = append(out, GuestDraft{FullName: name, Type: typ})
	}
	raw, _ := json.Marshal(out)
	return datatypes.JSON(raw)
}

// parseStayDates validates the YYYY-MM-DD pair and the interval ordering.
func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidRange, err)
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidRange, err)
	}
	ci = utils.TruncateToDate(ci)
	co = utils.TruncateToDate(co)
	if !ci.Before(co) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return ci, co, nil
}

// Create validates dates and availability, derives the total price when the
// caller did not supply one, and inserts the booking as pending. The room
// lock, conflict scan and insert run in one transaction so two concurrent
// requests cannot both observe "available" and double-book the room.
func (s *BookingService) Create(userID uint, in BookingInput) (*models.Booking, error) {
	ci, co, err := parseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if ci.Before(utils.Today()) {
		return nil, ErrCheckInPast
	}

	adults := in.Adults
	if adults <= 0 {
		adults = 1
	}
	children := in.Children
	if children < 0 {
		children = 0
	}

	var booking *models.Booking
	txErr := s.Repo.Transaction(func(tx BookingRepository) error {
		if err := tx.LockRoom(in.RoomID); err != nil {
			return err
		}
		room, err := tx.RoomByID(in.RoomID)
		if err != nil {
			return err
		}

		checker := AvailabilityService{Repo: tx}
		ok, _, err := checker.CheckRoom(room.ID, ci, co, 0)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRoomUnavailable
		}

		total := in.TotalPriceCents
		if total <= 0 {
			total, err = TotalPriceCents(room.RoomType.PricePerNightCents, ci, co)
			if err != nil {
				return err
			}
		}

		booking = &models.Booking{
			UserID:             userID,
			RoomID:             room.ID,
			CheckInDate:        ci,
			CheckOutDate:       co,
			Adults:             adults,
			Children:           children,
			Status:             models.StatusPending,
			SpecialRequests:    strings.TrimSpace(in.SpecialRequests),
			TotalPriceCents:    total,
			AccompanyingGuests: normalizeGuests(in.Guests),
		}
		return tx.Insert(booking)
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// Update revalidates dates and availability with the booking itself excluded
// from the conflict scan, then rewrites the stay. Owner or staff only.
func (s *BookingService) Update(id uint, caller Caller, in BookingInput) (*models.Booking, error) {
	ci, co, err := parseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if ci.Before(utils.Today()) {
		return nil, ErrCheckInPast
	}

	var updated *models.Booking
	txErr := s.Repo.Transaction(func(tx BookingRepository) error {
		booking, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		if !CanAccessBooking(caller, booking) {
			return ErrForbidden
		}

		roomID := booking.RoomID
		if in.RoomID != 0 {
			roomID = in.RoomID
		}
		if err := tx.LockRoom(roomID); err != nil {
			return err
		}
		room, err := tx.RoomByID(roomID)
		if err != nil {
			return err
		}

		checker := AvailabilityService{Repo: tx}
		ok, _, err := checker.CheckRoom(roomID, ci, co, booking.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRoomUnavailable
		}

		booking.RoomID = roomID
		booking.CheckInDate = ci
		booking.CheckOutDate = co
		if in.Adults > 0 {
			booking.Adults = in.Adults
		}
		if in.Children > 0 {
			booking.Children = in.Children
		}
		if in.SpecialRequests != "" {
			booking.SpecialRequests = strings.TrimSpace(in.SpecialRequests)
		}
		if in.TotalPriceCents > 0 {
			booking.TotalPriceCents = in.TotalPriceCents
		} else {
			total, err := TotalPriceCents(room.RoomType.PricePerNightCents, ci, co)
			if err != nil {
				return err
			}
			booking.TotalPriceCents = total
		}

		if err := tx.Update(booking); err != nil {
			return err
		}
		updated = booking
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}

// Cancel moves a pending or confirmed booking to cancelled. The date guard
// applies regardless of current status: once the check-in date has arrived
// the booking can no longer be cancelled.
func (s *BookingService) Cancel(id uint, caller Caller) (*models.Booking, error) {
	booking, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanAccessBooking(caller, booking) {
		return nil, ErrForbidden
	}
	if !utils.TruncateToDate(booking.CheckInDate).After(utils.Today()) {
		return nil, ErrTooLateToCancel
	}
	if booking.Status != models.StatusPending && booking.Status != models.StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(booking.ID, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled
	return booking, nil
}

// SetStatus is the staff-only administrative transition to confirmed or
// completed. Terminal states accept no transition.
func (s *BookingService) SetStatus(id uint, status string) (*models.Booking, error) {
	if status != models.StatusConfirmed && status != models.StatusCompleted {
		return nil, ErrInvalidTransition
	}
	booking, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(booking.Status) || booking.Status == status {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(booking.ID, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

// Get returns a single booking to its owner or to staff.
func (s *BookingService) Get(id uint, caller Caller) (*models.Booking, error) {
	booking, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanAccessBooking(caller, booking) {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ListFor returns all bookings for staff and only the caller's own otherwise.
func (s *BookingService) ListFor(caller Caller) ([]models.Booking, error) {
	if caller.IsStaff {
		return s.Repo.FindAll()
	}
	return s.Repo.FindByUser(caller.UserID)
}

// Delete soft-deletes a booking. Routes restrict this to staff; status
// transitions model deletion in the normal flow.
func (s *BookingService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
