// Package services holds the booking domain logic: availability checking,
// price computation and the booking lifecycle, behind a repository boundary
// so each piece is testable without a database.
package services

import "errors"

// Sentinel errors surfaced to controllers, which translate them into HTTP
// statuses with errors.Is.
var (
	// ErrInvalidRange covers malformed dates and check-out not after
	// check-in.
	ErrInvalidRange = errors.New("check-out date must be after check-in date")

	ErrCheckInPast = errors.New("check-in date cannot be in the past")

	// ErrRoomUnavailable means a pending or confirmed booking overlaps the
	// requested dates.
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")

	// ErrInvalidTransition rejects status changes out of terminal states or
	// into unknown statuses.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrTooLateToCancel rejects cancellation on or after the check-in date.
	ErrTooLateToCancel = errors.New("cannot cancel a booking on or after the check-in date")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)
