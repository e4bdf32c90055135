package store

import (
	"sort"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// AppendBooking records a committed booking. The booking ID is
// allocated here, at commit time, so ID order reflects commit order.
func (s *Store) AppendBooking(userName string, showtimeID uint64, seatNumber string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := model.Booking{
		ID:         s.nextID.booking,
		UserName:   userName,
		ShowtimeID: showtimeID,
		SeatNumber: seatNumber,
		CreatedAt:  nowUTC(),
	}
	s.nextID.booking++
	s.bookings = append(s.bookings, b)
	return b
}

// BookingByID returns the booking with the given ID.
func (s *Store) BookingByID(id uint64) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrNotFound
}

// DeleteBooking removes a booking record. It does not touch the seat;
// the cancellation flow flips the seat status itself.
func (s *Store) DeleteBooking(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// BookingsByUser returns a user's bookings enriched with movie and
// showtime context, newest first.
func (s *Store) BookingsByUser(userName string) []model.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BookingDetail, 0, 4)
	for _, b := range s.bookings {
		if b.UserName == userName {
			out = append(out, s.bookingDetailLocked(b))
		}
	}
	sortNewestFirst(out)
	return out
}

// AllBookings returns every booking enriched with movie and showtime
// context, newest first.
func (s *Store) AllBookings() []model.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BookingDetail, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, s.bookingDetailLocked(b))
	}
	sortNewestFirst(out)
	return out
}

func (s *Store) bookingDetailLocked(b model.Booking) model.BookingDetail {
	d := model.BookingDetail{Booking: b}
	for _, st := range s.showtimes {
		if st.ID != b.ShowtimeID {
			continue
		}
		dt := st.Datetime
		d.Cinema = st.Cinema
		d.Datetime = &dt
		for _, m := range s.movies {
			if m.ID == st.MovieID {
				d.MovieTitle = m.Title
				break
			}
		}
		break
	}
	return d
}

func sortNewestFirst(ds []model.BookingDetail) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].CreatedAt.Equal(ds[j].CreatedAt) {
			return ds[i].ID > ds[j].ID
		}
		return ds[i].CreatedAt.After(ds[j].CreatedAt)
	})
}
