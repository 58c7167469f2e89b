package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(secret string, ttl time.Duration) *AuthController {
	return &AuthController{JWTSecret: secret, TokenTTL: ttl}
}

type registerPayload struct {
	Username        string `json:"username" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a non-staff user account.
func (a *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if payload.Password != payload.ConfirmPassword {
		utils.JSONError(c, http.StatusBadRequest, "passwords do not match")
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", payload.Email).Count(&count).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	if count > 0 {
		utils.JSONError(c, http.StatusConflict, "email already exists")
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:  strings.TrimSpace(payload.Username),
		Email:     strings.TrimSpace(payload.Email),
		Password:  hash,
		FirstName: strings.TrimSpace(payload.FirstName),
		LastName:  strings.TrimSpace(payload.LastName),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "username or email already exists")
			return
		}
		log.Printf("register: create user failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user.Basic())
}

// Login verifies credentials and issues an access token.
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", strings.TrimSpace(payload.Username)).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !utils.VerifyPassword(user.Password, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.NewAccessToken(a.JWTSecret, user.ID, user.IsStaff, a.TokenTTL)
	if err != nil {
		log.Printf("login: token signing failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":      token.Token,
		"expires_at": token.Exp,
		"user":       user.Basic(),
	})
}
