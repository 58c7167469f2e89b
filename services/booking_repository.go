package services

import (
	"errors"

	"hotel-booking-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository is the persistence boundary for the booking lifecycle.
// The gorm implementation below is the production one; tests substitute an
// in-memory fake.
type BookingRepository interface {
	FindByID(id uint) (*models.Booking, error)
	FindByRoomAndStatus(roomID uint, statuses ...string) ([]models.Booking, error)
	FindByUser(userID uint) ([]models.Booking, error)
	FindAll() ([]models.Booking, error)
	Insert(b *models.Booking) error
	Update(b *models.Booking) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error

	RoomByID(id uint) (*models.Room, error)
	RoomsByType(roomTypeID uint) ([]models.Room, error)

	// LockRoom takes a row-level lock on the room for the duration of the
	// surrounding transaction. Outside a transaction it is a no-op read.
	LockRoom(roomID uint) error

	// Transaction runs fn against a repository bound to a single database
	// transaction, so a conflict check and the following insert form one
	// atomic unit.
	Transaction(fn func(BookingRepository) error) error
}

type GormBookingRepository struct {
	DB *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{DB: db}
}

func (r *GormBookingRepository) FindByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.Preload("Room.RoomType").Preload("User").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) FindByRoomAndStatus(roomID uint, statuses ...string) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.DB.
		Where("room_id = ? AND status IN ?", roomID, statuses).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) FindByUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.DB.
		Preload("Room.RoomType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) FindAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := r.DB.
		Preload("Room.RoomType").
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookingRepository) Insert(b *models.Booking) error {
	return r.DB.Create(b).Error
}

func (r *GormBookingRepository) Update(b *models.Booking) error {
	return r.DB.Save(b).Error
}

func (r *GormBookingRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) Delete(id uint) error {
	res := r.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) RoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *GormBookingRepository) RoomsByType(roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.DB.
		Where("room_type_id = ?", roomTypeID).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormBookingRepository) LockRoom(roomID uint) error {
	var room models.Room
	if err := r.DB.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *GormBookingRepository) Transaction(fn func(BookingRepository) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormBookingRepository{DB: tx})
	})
}
