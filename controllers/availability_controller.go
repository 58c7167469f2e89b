package controllers

import (
	"net/http"
	"time"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: service}
}

// parseAvailabilityQuery reads and validates the check_in/check_out query
// parameters shared by both availability actions.
func parseAvailabilityQuery(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	if checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide check_in and check_out dates"})
		return time.Time{}, time.Time{}, false
	}

	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if !ci.Before(co) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return time.Time{}, time.Time{}, false
	}
	return ci, co, true
}

// RoomAvailability reports whether a single room is free for the requested
// dates, with the conflicting-bookings count for diagnostics.
func (ac *AvailabilityController) RoomAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ci, co, ok := parseAvailabilityQuery(c)
	if !ok {
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	available, conflicts, err := ac.Service.CheckRoom(room.ID, ci, co, 0)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	conflictCount := 0
	if !available {
		conflictCount = len(conflicts)
	}
	c.JSON(http.StatusOK, gin.H{
		"room":                       room.RoomNumber,
		"is_available":               available,
		"conflicting_bookings_count": conflictCount,
	})
}

// RoomTypeAvailability lists the rooms of a type that are free for the
// requested dates.
func (ac *AvailabilityController) RoomTypeAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ci, co, ok := parseAvailabilityQuery(c)
	if !ok {
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "room type not found")
		return
	}

	available, err := ac.Service.AvailableRoomsForType(roomType.ID, ci, co)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_type":             roomType.Name,
		"available_rooms_count": len(available),
		"available_rooms":       available,
	})
}
