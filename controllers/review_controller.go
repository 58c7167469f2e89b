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

func withReviewerNames(reviews []models.Review) []models.Review {
	for i := range reviews {
		reviews[i].ReviewerName = reviews[i].Reviewer.Username
	}
	return reviews
}

func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Preload("Reviewer").Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, withReviewerNames(reviews))
}

func GetReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var review models.Review
	if err := config.DB.Preload("Reviewer").First(&review, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("review %d not found", id))
		return
	}
	review.ReviewerName = review.Reviewer.Username
	c.JSON(http.StatusOK, review)
}

type reviewPayload struct {
	Body     string `json:"body" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Reviewer uint   `json:"reviewer" binding:"required"`
}

func CreateReview(c *gin.Context) {
	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	var reviewer models.User
	if err := config.DB.First(&reviewer, payload.Reviewer).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reviewer")
		return
	}

	review := models.Review{
		Body:       strings.TrimSpace(payload.Body),
		Rating:     payload.Rating,
		ReviewerID: reviewer.ID,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	review.ReviewerName = reviewer.Username
	c.JSON(http.StatusCreated, review)
}

func UpdateReview(c *gin.Context) {
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
	delete(updateData, "reviewer")
	delete(updateData, "created")
	delete(updateData, "created_at")

	res := config.DB.Model(&models.Review{}).Where("id = ?", id).Updates(updateData)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("review %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": id})
}

func DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Review{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete review")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("review %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
