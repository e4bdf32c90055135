package model

import "time"

// Booking is a committed reservation linking one user to one seat on
// one showtime. Booking IDs are monotonically increasing and are
// allocated at the moment the reservation commits, so ID order
// reflects commit order.
//
// Fields:
//  ID         – monotonically increasing identifier.
//  UserName   – identity of the booking user (email for registered users).
//  ShowtimeID – showtime the seat belongs to.
//  SeatNumber – booked seat.
//  CreatedAt  – commit timestamp (UTC).
type Booking struct {
	ID         uint64    `json:"id"`
	UserName   string    `json:"userName"`
	ShowtimeID uint64    `json:"showtimeId"`
	SeatNumber string    `json:"seatNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingDetail is a booking enriched with showtime and movie context
// for history listings.
type BookingDetail struct {
	Booking
	MovieTitle string     `json:"movieTitle,omitempty"`
	Cinema     string     `json:"cinema,omitempty"`
	Datetime   *time.Time `json:"datetime,omitempty"`
}
