package store

import "github.com/HotaroAce/CineXerve/internal/model"

// MoviePatch describes a partial movie update. Nil fields are left
// untouched.
type MoviePatch struct {
	Title       *string
	Genre       *string
	Duration    *int
	Description *string
}

// Movies returns all movies, optionally filtered by exact genre.
func (s *Store) Movies(genre string) []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if genre == "" || m.Genre == genre {
			out = append(out, m)
		}
	}
	return out
}

// MovieByID returns the movie with the given ID.
func (s *Store) MovieByID(id uint64) (model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrNotFound
}

// CreateMovie stores a new movie and returns it with its assigned ID.
func (s *Store) CreateMovie(m model.Movie) model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID.movie
	s.nextID.movie++
	s.movies = append(s.movies, m)
	return m
}

// UpdateMovie applies a partial update and returns the updated movie.
func (s *Store) UpdateMovie(id uint64, patch MoviePatch) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.movies[i].Title = *patch.Title
		}
		if patch.Genre != nil {
			s.movies[i].Genre = *patch.Genre
		}
		if patch.Duration != nil {
			s.movies[i].Duration = *patch.Duration
		}
		if patch.Description != nil {
			s.movies[i].Description = *patch.Description
		}
		return s.movies[i], nil
	}
	return model.Movie{}, ErrNotFound
}

// DeleteMovie removes a movie together with its showtimes and their
// seats. It fails with ErrConflict when any of those showtimes has
// bookings. The removed seats are returned so the caller can clear
// their seat-status index entries.
func (s *Store) DeleteMovie(id uint64) ([]model.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, m := range s.movies {
		if m.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	owned := make(map[uint64]bool)
	for _, st := range s.showtimes {
		if st.MovieID == id {
			owned[st.ID] = true
		}
	}
	for _, b := range s.bookings {
		if owned[b.ShowtimeID] {
			return nil, ErrConflict
		}
	}
	var removed []model.Seat
	seats := s.seats[:0]
	for _, seat := range s.seats {
		if owned[seat.ShowtimeID] {
			removed = append(removed, seat)
			continue
		}
		seats = append(seats, seat)
	}
	s.seats = seats
	showtimes := s.showtimes[:0]
	for _, st := range s.showtimes {
		if !owned[st.ID] {
			showtimes = append(showtimes, st)
		}
	}
	s.showtimes = showtimes
	movies := s.movies[:0]
	for _, m := range s.movies {
		if m.ID != id {
			movies = append(movies, m)
		}
	}
	s.movies = movies
	return removed, nil
}
