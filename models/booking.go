package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses. Cancelled and completed are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses are the statuses that block a room's dates.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(status string) bool {
	return status == StatusCancelled || status == StatusCompleted
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;column:user_id" json:"user_id"`
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`

	// Half-open interval [check_in_date, check_out_date).
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"check_out_date"`

	Adults   int `gorm:"default:1" json:"adults"`
	Children int `gorm:"default:0" json:"children"`

	Status          string `gorm:"size:20;default:pending;index" json:"status"`
	SpecialRequests string `gorm:"type:text" json:"special_requests"`

	// Total in cents; derived from the room type's nightly rate when the
	// caller does not supply it.
	TotalPriceCents int64 `gorm:"column:total_price_cents" json:"total_price_cents"`

	// Named guest drafts captured at booking time.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanying_guests,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time      `json:"booking_date"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
