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

// GetRooms lists the room catalog ordered by room number.
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", id))
		return
	}
	c.JSON(http.StatusOK, room)
}

func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_number is required")
		return
	}

	var rt models.RoomType
	if err := config.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room_type_id")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room number %q already exists", room.RoomNumber))
			return
		}
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, room)
}

func UpdateRoom(c *gin.Context) {
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

	res := config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			utils.JSONError(c, http.StatusConflict, "room number already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": id})
}

func DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
