package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/store"
)

// ShowtimeHandler implements showtime scheduling. Creating a showtime
// bulk-creates its seat grid and seeds the seat-status index;
// deleting one removes the grid and clears the index entries again.
type ShowtimeHandler struct {
	Store *store.Store
	Index *reservation.SeatMap
}

func NewShowtimeHandler(s *store.Store, index *reservation.SeatMap) *ShowtimeHandler {
	return &ShowtimeHandler{Store: s, Index: index}
}

type showtimeWithMovie struct {
	model.Showtime
	Movie *model.Movie `json:"movie,omitempty"`
}

// ListByMovie returns a movie's showtimes sorted by start time.
func (h *ShowtimeHandler) ListByMovie(c echo.Context) error {
	movieID, ok := paramID(c, "movieId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movieId"})
	}
	return c.JSON(http.StatusOK, h.Store.ShowtimesByMovie(movieID))
}

// Get returns one showtime together with its movie.
func (h *ShowtimeHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	st, err := h.Store.ShowtimeByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	resp := showtimeWithMovie{Showtime: st}
	if m, err := h.Store.MovieByID(st.MovieID); err == nil {
		resp.Movie = &m
	}
	return c.JSON(http.StatusOK, resp)
}

// Create schedules a showtime and creates its seats, all available.
func (h *ShowtimeHandler) Create(c echo.Context) error {
	var req struct {
		MovieID  uint64 `json:"movieId"`
		Datetime string `json:"datetime"`
		Cinema   string `json:"cinema"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MovieID == 0 || req.Datetime == "" || req.Cinema == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movieId, datetime and cinema required"})
	}
	dt, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid datetime"})
	}
	st, seats := h.Store.CreateShowtime(req.MovieID, dt, req.Cinema)
	for _, seat := range seats {
		h.Index.Set(seat.ShowtimeID, seat.SeatNumber, seat.Status)
	}
	return c.JSON(http.StatusCreated, st)
}

// Update applies a partial update to a showtime.
func (h *ShowtimeHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Datetime *string `json:"datetime"`
		Cinema   *string `json:"cinema"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	patch := store.ShowtimePatch{Cinema: req.Cinema}
	if req.Datetime != nil {
		dt, err := time.Parse(time.RFC3339, *req.Datetime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid datetime"})
		}
		patch.Datetime = &dt
	}
	st, err := h.Store.UpdateShowtime(id, patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, st)
}

// Delete removes a showtime and its seats. It refuses while bookings
// for the showtime exist.
func (h *ShowtimeHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	removed, err := h.Store.DeleteShowtime(id)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete showtime with existing bookings"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	for _, seat := range removed {
		h.Index.Delete(seat.ShowtimeID, seat.SeatNumber)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
