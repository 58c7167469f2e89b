package models

import "time"

type RoomImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID uint      `gorm:"column:room_type_id;index" json:"room_type_id"`
	ImagePath  string    `gorm:"size:255" json:"image"`
	IsPrimary  bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}
