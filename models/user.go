package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:254" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	FirstName string         `gorm:"size:150" json:"first_name"`
	LastName  string         `gorm:"size:150" json:"last_name"`
	IsStaff   bool           `gorm:"default:false" json:"is_staff"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserBasic is the public projection embedded in auth responses.
type UserBasic struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u *User) Basic() UserBasic {
	return UserBasic{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
