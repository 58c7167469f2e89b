package models

import (
	"time"

	"gorm.io/gorm"
)

type Amenity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"` // bootstrap icon name

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// RoomAmenity is the join table between room types and amenities.
type RoomAmenity struct {
	RoomTypeID uint `gorm:"primaryKey;column:room_type_id" json:"room_type_id"`
	AmenityID  uint `gorm:"primaryKey;column:amenity_id" json:"amenity_id"`
}
