// Package store holds the authoritative in-memory records for the
// service: movies, showtimes, seats, bookings and users, with
// monotonic ID allocation per entity. It is the single source of
// truth reachable only from this process; the reservation processor
// is the only writer of seat status and bookings on the booking path.
package store

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a delete cannot be performed because
// of dependent records, such as deleting a showtime that still has
// bookings. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when registering a user with an email
// that is already taken.
var ErrEmailExists = errors.New("email already exists")
