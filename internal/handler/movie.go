package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/store"
)

// MovieHandler implements the movie catalog endpoints. Deleting a
// movie cascades to its showtimes and seats, so the handler also
// clears the affected seat-status index entries.
type MovieHandler struct {
	Store *store.Store
	Index *reservation.SeatMap
}

func NewMovieHandler(s *store.Store, index *reservation.SeatMap) *MovieHandler {
	return &MovieHandler{Store: s, Index: index}
}

type movieWithShowtimes struct {
	model.Movie
	Showtimes []model.Showtime `json:"showtimes"`
}

// List returns all movies, optionally filtered with ?genre=.
func (h *MovieHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Movies(c.QueryParam("genre")))
}

// Get returns one movie together with its showtimes.
func (h *MovieHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.Store.MovieByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, movieWithShowtimes{Movie: m, Showtimes: h.Store.ShowtimesByMovie(id)})
}

// Create adds a movie to the catalog.
func (h *MovieHandler) Create(c echo.Context) error {
	var req struct {
		Title       string `json:"title"`
		Genre       string `json:"genre"`
		Duration    int    `json:"duration"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	m := h.Store.CreateMovie(model.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Description: req.Description,
	})
	return c.JSON(http.StatusCreated, m)
}

// Update applies a partial update to a movie.
func (h *MovieHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Title       *string `json:"title"`
		Genre       *string `json:"genre"`
		Duration    *int    `json:"duration"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	m, err := h.Store.UpdateMovie(id, store.MoviePatch{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a movie and everything scheduled for it. It refuses
// while bookings exist for any of its showtimes.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	removed, err := h.Store.DeleteMovie(id)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete movie with existing bookings"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	for _, seat := range removed {
		h.Index.Delete(seat.ShowtimeID, seat.SeatNumber)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
