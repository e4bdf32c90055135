package store

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// Seat grids created for every showtime: rows A-D, ten seats per row.
var seatRows = []string{"A", "B", "C", "D"}

const seatsPerRow = 10

// nextIDs holds the per-entity monotonic ID counters. Each counter is
// the value the next created record will receive.
type nextIDs struct {
	movie    uint64
	showtime uint64
	seat     uint64
	booking  uint64
	user     uint64
}

// Store is the in-memory database. One lock guards all collections;
// every exported method takes it, so individual calls are safe from
// any goroutine. Multi-call sequences on the booking path are made
// atomic by the reservation processor's single drain worker, not by
// this lock.
type Store struct {
	mu        sync.RWMutex
	movies    []model.Movie
	showtimes []model.Showtime
	seats     []model.Seat
	bookings  []model.Booking
	users     []model.User
	nextID    nextIDs
}

// New returns an empty store with all ID counters starting at 1.
func New() *Store {
	return &Store{nextID: nextIDs{movie: 1, showtime: 1, seat: 1, booking: 1, user: 1}}
}

// FindSeat returns a copy of the seat record for the showtime and
// seat number, or ok=false when no such seat exists.
func (s *Store) FindSeat(showtimeID uint64, seatNumber string) (model.Seat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.seats {
		if s.seats[i].ShowtimeID == showtimeID && s.seats[i].SeatNumber == seatNumber {
			return s.seats[i], true
		}
	}
	return model.Seat{}, false
}

// SetSeatStatus updates a seat's status in place and reports whether
// the seat still existed.
func (s *Store) SetSeatStatus(showtimeID uint64, seatNumber string, status model.SeatStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seats {
		if s.seats[i].ShowtimeID == showtimeID && s.seats[i].SeatNumber == seatNumber {
			s.seats[i].Status = status
			return true
		}
	}
	return false
}

// SeatsByShowtime returns the showtime's seats sorted by seat number,
// for rendering seat maps.
func (s *Store) SeatsByShowtime(showtimeID uint64) []model.Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Seat, 0, len(seatRows)*seatsPerRow)
	for i := range s.seats {
		if s.seats[i].ShowtimeID == showtimeID {
			out = append(out, s.seats[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatNumber < out[j].SeatNumber })
	return out
}

// createSeatsLocked bulk-creates the seat grid for a showtime. The
// caller must hold the write lock.
func (s *Store) createSeatsLocked(showtimeID uint64) []model.Seat {
	created := make([]model.Seat, 0, len(seatRows)*seatsPerRow)
	for _, row := range seatRows {
		for n := 1; n <= seatsPerRow; n++ {
			seat := model.Seat{
				ID:         s.nextID.seat,
				ShowtimeID: showtimeID,
				SeatNumber: row + strconv.Itoa(n),
				Status:     model.SeatAvailable,
			}
			s.nextID.seat++
			s.seats = append(s.seats, seat)
			created = append(created, seat)
		}
	}
	return created
}

func nowUTC() time.Time { return time.Now().UTC() }
