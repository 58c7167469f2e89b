package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:10" json:"room_number"`
	RoomTypeID uint   `gorm:"column:room_type_id;index" json:"room_type_id"`

	Capacity   int  `gorm:"default:2" json:"capacity"`
	Size       int  `json:"size"` // square meters
	Floor      int  `gorm:"default:1" json:"floor"`
	HasView    bool `gorm:"default:false" json:"has_view"`
	HasBalcony bool `gorm:"default:false" json:"has_balcony"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
