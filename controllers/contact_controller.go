package controllers

import (
	"net/http"
	"strings"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func GetContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := config.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func CreateContactMessage(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	message := models.ContactMessage{
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Subject: strings.TrimSpace(payload.Subject),
		Message: payload.Message,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, message)
}
