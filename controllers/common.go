// Package controllers contains the gin HTTP handlers. Catalog and flat-record
// endpoints work straight off config.DB; the booking endpoints go through the
// injected lifecycle service.
package controllers

import (
	"errors"
	"net/http"

	"hotel-booking-api/services"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKey detects MySQL unique-constraint violations (error 1062).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// statusForError maps the domain's sentinel errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrCheckInPast),
		errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrTooLateToCancel):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
