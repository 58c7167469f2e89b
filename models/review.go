package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Body       string `gorm:"type:text" json:"body"`
	Rating     int    `json:"rating"`
	ReviewerID uint   `gorm:"index;column:reviewer_id" json:"reviewer"`

	Reviewer User `gorm:"foreignKey:ReviewerID" json:"-"`

	// Exposed to clients alongside the reviewer id, not persisted.
	ReviewerName string `gorm:"-" json:"reviewer_name"`

	CreatedAt time.Time      `json:"created"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
