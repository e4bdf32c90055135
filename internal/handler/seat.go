package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotaroAce/CineXerve/internal/store"
)

// SeatHandler serves seat maps for showtimes.
type SeatHandler struct {
	Store *store.Store
}

func NewSeatHandler(s *store.Store) *SeatHandler {
	return &SeatHandler{Store: s}
}

// ListByShowtime returns a showtime's seats sorted by seat number,
// with their current status, for rendering the seat picker.
func (h *SeatHandler) ListByShowtime(c echo.Context) error {
	showtimeID, ok := paramID(c, "showtimeId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtimeId"})
	}
	return c.JSON(http.StatusOK, h.Store.SeatsByShowtime(showtimeID))
}
