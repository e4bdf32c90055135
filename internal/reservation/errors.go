// Package reservation contains the seat-reservation concurrency
// kernel: a fast-path seat-status index, a FIFO request queue and a
// single-worker processor that serializes every read-check-mutate
// sequence for seat booking. It is the only place in the repository
// where correctness depends on ordering and mutual exclusion rather
// than plain request/response mapping.
package reservation

import "errors"

// ErrSeatNotFound is returned when a request references a seat that
// does not exist for the given showtime. Handlers should translate
// this into an HTTP 404 response.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatNotAvailable is returned when the seat exists but is not
// currently available, including when it was taken by an earlier
// request in the same drain. Handlers should translate this into an
// HTTP 409 response.
var ErrSeatNotAvailable = errors.New("seat not available")
