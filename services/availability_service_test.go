package services

import (
	"errors"
	"testing"

	"hotel-booking-api/models"
)

func seedBooking(repo *fakeRepo, roomID uint, checkIn, checkOut string, status string) *models.Booking {
	b := &models.Booking{
		UserID:       1,
		RoomID:       roomID,
		CheckInDate:  date(checkIn),
		CheckOutDate: date(checkOut),
		Status:       status,
	}
	if err := repo.Insert(b); err != nil {
		panic(err)
	}
	return b
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 string
		want           bool
	}{
		{"identical", "2025-06-01", "2025-06-05", "2025-06-01", "2025-06-05", true},
		{"contained", "2025-06-01", "2025-06-10", "2025-06-03", "2025-06-05", true},
		{"partial front", "2025-06-01", "2025-06-05", "2025-06-03", "2025-06-07", true},
		{"partial back", "2025-06-03", "2025-06-07", "2025-06-01", "2025-06-05", true},
		{"back-to-back stays do not overlap", "2025-06-01", "2025-06-05", "2025-06-05", "2025-06-08", false},
		{"disjoint", "2025-06-01", "2025-06-03", "2025-06-10", "2025-06-12", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.a1), date(tt.a2), date(tt.b1), date(tt.b2))
			if got != tt.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if rev := Overlaps(date(tt.b1), date(tt.b2), date(tt.a1), date(tt.a2)); rev != got {
				t.Fatalf("Overlaps() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestCheckRoom(t *testing.T) {
	repo := newFakeRepo(testRoom(1, 1, 10000, "101"))
	svc := NewAvailabilityService(repo)

	confirmed := seedBooking(repo, 1, "2025-06-03", "2025-06-07", models.StatusConfirmed)
	seedBooking(repo, 1, "2025-07-01", "2025-07-05", models.StatusCancelled)
	seedBooking(repo, 1, "2025-07-01", "2025-07-05", models.StatusCompleted)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		exclude  uint
		want     bool
	}{
		{"overlapping confirmed blocks", "2025-06-01", "2025-06-05", 0, false},
		{"free range", "2025-06-10", "2025-06-12", 0, true},
		{"cancelled and completed never block", "2025-07-01", "2025-07-05", 0, true},
		{"excluding the conflicting booking frees the range", "2025-06-01", "2025-06-05", confirmed.ID, true},
		{"checkout on existing check-in is free", "2025-06-01", "2025-06-03", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, conflicts, err := svc.CheckRoom(1, date(tt.checkIn), date(tt.checkOut), tt.exclude)
			if err != nil {
				t.Fatalf("CheckRoom() error = %v", err)
			}
			if available != tt.want {
				t.Fatalf("CheckRoom() = %v, want %v (conflicts: %d)", available, tt.want, len(conflicts))
			}
			if !available && len(conflicts) == 0 {
				t.Fatal("unavailable result must report its conflicts")
			}
		})
	}
}

func TestCheckRoomInvalidRange(t *testing.T) {
	svc := NewAvailabilityService(newFakeRepo(testRoom(1, 1, 10000, "101")))

	for _, dates := range [][2]string{
		{"2025-06-05", "2025-06-05"},
		{"2025-06-07", "2025-06-05"},
	} {
		if _, _, err := svc.CheckRoom(1, date(dates[0]), date(dates[1]), 0); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("CheckRoom(%s, %s) error = %v, want ErrInvalidRange", dates[0], dates[1], err)
		}
	}
}

func TestCheckRoomHasNoSideEffects(t *testing.T) {
	repo := newFakeRepo(testRoom(1, 1, 10000, "101"))
	svc := NewAvailabilityService(repo)
	seedBooking(repo, 1, "2025-06-03", "2025-06-07", models.StatusPending)

	before := len(repo.bookings)
	if _, _, err := svc.CheckRoom(1, date("2025-06-01"), date("2025-06-05"), 0); err != nil {
		t.Fatalf("CheckRoom() error = %v", err)
	}
	if len(repo.bookings) != before {
		t.Fatal("availability check must not write")
	}
	for _, b := range repo.bookings {
		if b.Status != models.StatusPending {
			t.Fatal("availability check must not mutate bookings")
		}
	}
}

func TestAvailableRoomsForType(t *testing.T) {
	repo := newFakeRepo(
		testRoom(1, 1, 10000, "101"),
		testRoom(2, 1, 10000, "102"),
		testRoom(3, 2, 20000, "201"),
	)
	svc := NewAvailabilityService(repo)
	seedBooking(repo, 1, "2025-06-03", "2025-06-07", models.StatusConfirmed)

	rooms, err := svc.AvailableRoomsForType(1, date("2025-06-01"), date("2025-06-05"))
	if err != nil {
		t.Fatalf("AvailableRoomsForType() error = %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 2 {
		t.Fatalf("AvailableRoomsForType() = %+v, want only room 2", rooms)
	}

	// Other room type unaffected by room 1's booking.
	rooms, err = svc.AvailableRoomsForType(2, date("2025-06-01"), date("2025-06-05"))
	if err != nil {
		t.Fatalf("AvailableRoomsForType() error = %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 3 {
		t.Fatalf("AvailableRoomsForType() = %+v, want only room 3", rooms)
	}

	if _, err := svc.AvailableRoomsForType(1, date("2025-06-05"), date("2025-06-05")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("inverted range error = %v, want ErrInvalidRange", err)
	}
}
