package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

// GetRoomTypes lists room types with their amenities, images and rooms.
func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.
		Preload("Amenities").
		Preload("Images").
		Preload("Rooms").
		Find(&roomTypes).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room types")
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}

func GetRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var roomType models.RoomType
	if err := config.DB.
		Preload("Amenities").
		Preload("Images").
		Preload("Rooms").
		First(&roomType, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room type %d not found", id))
		return
	}
	c.JSON(http.StatusOK, roomType)
}

type roomTypePayload struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	PricePerNightCents int64  `json:"price_per_night_cents" binding:"required,gt=0"`
	AmenityIDs         []uint `json:"amenity_ids"`
}

func CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	roomType := models.RoomType{
		Name:               strings.TrimSpace(payload.Name),
		Description:        payload.Description,
		PricePerNightCents: payload.PricePerNightCents,
	}

	if len(payload.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Find(&amenities, payload.AmenityIDs).Error; err != nil || len(amenities) != len(payload.AmenityIDs) {
			utils.JSONError(c, http.StatusBadRequest, "invalid amenity_ids")
			return
		}
		roomType.Amenities = amenities
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		log.Printf("create room type failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, roomType)
}

func UpdateRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")
	delete(updateData, "amenities")
	delete(updateData, "rooms")
	delete(updateData, "images")

	res := config.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(updateData)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room type %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": id})
}

func DeleteRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room type %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
