package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Nightly rate in cents so price arithmetic never touches floating point.
	PricePerNightCents int64 `gorm:"column:price_per_night_cents" json:"price_per_night_cents"`

	Rooms     []Room      `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
	Amenities []Amenity   `gorm:"many2many:room_amenities;joinForeignKey:RoomTypeID;joinReferences:AmenityID" json:"amenities,omitempty"`
	Images    []RoomImage `gorm:"foreignKey:RoomTypeID" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
