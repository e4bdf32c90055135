package model

// Movie describes a film that can be scheduled for screening.
// Genre, duration and the remaining descriptive fields are optional
// and omitted from JSON when empty.
//
// Fields:
//  ID          – primary identifier.
//  Title       – display title of the movie.
//  Genre       – genre label used for filtering.
//  Duration    – running time in minutes.
//  Description – short synopsis.
//  Rating      – audience rating label (e.g. PG, R-16).
//  Formats     – available screening formats (2D, IMAX, ...).
type Movie struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	Formats     []string `json:"formats,omitempty"`
}
