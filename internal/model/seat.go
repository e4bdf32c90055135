package model

// SeatStatus enumerates the states a seat can be in. A seat holds
// exactly one status at any instant; it is flipped to reserved by a
// successful booking and back to available by a cancellation.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
)

// Seat is a bookable unit identified by its showtime and seat number
// (row letter plus position, e.g. "A1"). Seats are created in bulk
// when a showtime is created and removed only when their showtime is
// deleted.
//
// Fields:
//  ID         – primary identifier.
//  ShowtimeID – showtime this seat belongs to.
//  SeatNumber – row letter and position within the row.
//  Status     – current availability status.
type Seat struct {
	ID         uint64     `json:"id"`
	ShowtimeID uint64     `json:"showtimeId"`
	SeatNumber string     `json:"seatNumber"`
	Status     SeatStatus `json:"status"`
}
