// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a seat reservation commits.
// It carries enough context for downstream consumers to log or notify
// without querying the in-memory store.
type BookingConfirmedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	UserName   string `json:"user_name"`
	ShowtimeID uint64 `json:"showtime_id"`
	SeatNumber string `json:"seat_number"`
	MovieTitle string `json:"movie_title"`
	Cinema     string `json:"cinema"`
	BookedAt   string `json:"booked_at"`
}
