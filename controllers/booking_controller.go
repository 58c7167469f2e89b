package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-api/middleware"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

func caller(c *gin.Context) services.Caller {
	return services.Caller{
		UserID:  middleware.CallerID(c),
		IsStaff: middleware.IsStaff(c),
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetBookings lists all bookings for staff, only the caller's own otherwise.
func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.Service.ListFor(caller(c))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CreateBooking validates dates and availability and creates a pending
// booking for the authenticated user.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if in.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required")
		return
	}

	booking, err := bc.Service.Create(middleware.CallerID(c), in)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.Service.Get(id, caller(c))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	booking, err := bc.Service.Update(id, caller(c), in)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking transitions a pending or confirmed booking to cancelled,
// subject to the check-in date guard. Takes no body.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := bc.Service.Cancel(id, caller(c)); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Booking cancelled successfully"})
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus is the staff-only transition to confirmed or completed.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	booking, err := bc.Service.SetStatus(id, payload.Status)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": booking.Status})
}

// DeleteBooking soft-deletes a booking record. Staff only; regular flow
// models deletion through status transitions.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bc.Service.Delete(id); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
