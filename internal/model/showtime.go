package model

import "time"

// Showtime is a scheduled screening of a movie in a particular
// cinema hall. Each showtime owns a fixed grid of seats that are
// created in bulk when the showtime is created.
//
// Fields:
//  ID       – primary identifier.
//  MovieID  – movie being screened.
//  Datetime – scheduled start of the screening (UTC).
//  Cinema   – name of the hall hosting the screening.
type Showtime struct {
	ID       uint64    `json:"id"`
	MovieID  uint64    `json:"movieId"`
	Datetime time.Time `json:"datetime"`
	Cinema   string    `json:"cinema"`
}
