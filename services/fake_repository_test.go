package services

import (
	"hotel-booking-api/models"
)

// fakeRepo is an in-memory BookingRepository for exercising the lifecycle
// and availability logic without a database.
type fakeRepo struct {
	bookings []*models.Booking
	rooms    map[uint]*models.Room
	nextID   uint
	locked   []uint
}

func newFakeRepo(rooms ...*models.Room) *fakeRepo {
	m := make(map[uint]*models.Room, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return &fakeRepo{rooms: m}
}

func (f *fakeRepo) FindByID(id uint) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) FindByRoomAndStatus(roomID uint, statuses ...string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByUser(userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) Insert(b *models.Booking) error {
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) Update(b *models.Booking) error {
	for i, existing := range f.bookings {
		if existing.ID == b.ID {
			copied := *b
			f.bookings[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) UpdateStatus(id uint, status string) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(id uint) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) RoomByID(id uint) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRepo) RoomsByType(roomTypeID uint) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.RoomTypeID == roomTypeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) LockRoom(roomID uint) error {
	if _, ok := f.rooms[roomID]; !ok {
		return ErrNotFound
	}
	f.locked = append(f.locked, roomID)
	return nil
}

func (f *fakeRepo) Transaction(fn func(BookingRepository) error) error {
	return fn(f)
}

func testRoom(id, roomTypeID uint, rateCents int64, number string) *models.Room {
	return &models.Room{
		ID:         id,
		RoomNumber: number,
		RoomTypeID: roomTypeID,
		Capacity:   2,
		RoomType: models.RoomType{
			ID:                 roomTypeID,
			Name:               "Standard",
			PricePerNightCents: rateCents,
		},
	}
}
