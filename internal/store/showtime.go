package store

import (
	"sort"
	"time"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// ShowtimePatch describes a partial showtime update. Nil fields are
// left untouched.
type ShowtimePatch struct {
	Datetime *time.Time
	Cinema   *string
}

// ShowtimesByMovie returns a movie's showtimes sorted by start time.
func (s *Store) ShowtimesByMovie(movieID uint64) []model.Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Showtime, 0, 4)
	for _, st := range s.showtimes {
		if st.MovieID == movieID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datetime.Before(out[j].Datetime) })
	return out
}

// ShowtimeByID returns the showtime with the given ID.
func (s *Store) ShowtimeByID(id uint64) (model.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.showtimes {
		if st.ID == id {
			return st, nil
		}
	}
	return model.Showtime{}, ErrNotFound
}

// CreateShowtime stores a new showtime and bulk-creates its seat
// grid, all seats available. The created seats are returned so the
// caller can seed the seat-status index.
func (s *Store) CreateShowtime(movieID uint64, datetime time.Time, cinema string) (model.Showtime, []model.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := model.Showtime{
		ID:       s.nextID.showtime,
		MovieID:  movieID,
		Datetime: datetime,
		Cinema:   cinema,
	}
	s.nextID.showtime++
	s.showtimes = append(s.showtimes, st)
	seats := s.createSeatsLocked(st.ID)
	return st, seats
}

// UpdateShowtime applies a partial update and returns the updated
// showtime.
func (s *Store) UpdateShowtime(id uint64, patch ShowtimePatch) (model.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.showtimes {
		if s.showtimes[i].ID != id {
			continue
		}
		if patch.Datetime != nil {
			s.showtimes[i].Datetime = *patch.Datetime
		}
		if patch.Cinema != nil {
			s.showtimes[i].Cinema = *patch.Cinema
		}
		return s.showtimes[i], nil
	}
	return model.Showtime{}, ErrNotFound
}

// DeleteShowtime removes a showtime and its seats. It fails with
// ErrConflict while bookings for the showtime exist. The removed
// seats are returned so the caller can clear their seat-status index
// entries.
func (s *Store) DeleteShowtime(id uint64) ([]model.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, st := range s.showtimes {
		if st.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	for _, b := range s.bookings {
		if b.ShowtimeID == id {
			return nil, ErrConflict
		}
	}
	var removed []model.Seat
	seats := s.seats[:0]
	for _, seat := range s.seats {
		if seat.ShowtimeID == id {
			removed = append(removed, seat)
			continue
		}
		seats = append(seats, seat)
	}
	s.seats = seats
	showtimes := s.showtimes[:0]
	for _, st := range s.showtimes {
		if st.ID != id {
			showtimes = append(showtimes, st)
		}
	}
	s.showtimes = showtimes
	return removed, nil
}
