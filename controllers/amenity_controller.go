package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

func GetAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := config.DB.Order("name").Find(&amenities).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load amenities")
		return
	}
	c.JSON(http.StatusOK, amenities)
}

func GetAmenity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var amenity models.Amenity
	if err := config.DB.First(&amenity, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("amenity %d not found", id))
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func CreateAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	amenity.Name = strings.TrimSpace(amenity.Name)
	if amenity.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := config.DB.Create(&amenity).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, amenity)
}

func UpdateAmenity(c *gin.Context) {
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

	res := config.DB.Model(&models.Amenity{}).Where("id = ?", id).Updates(updateData)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("amenity %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": id})
}

func DeleteAmenity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Amenity{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete amenity")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("amenity %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
