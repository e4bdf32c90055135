package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/queue"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/store"
)

// BookingHandler exposes the booking flow over HTTP. Booking goes
// through the reservation processor; cancellation and the listing
// endpoints talk to the store directly.
//
// PublishEvent, when set, is invoked in the background after each
// successful booking. It is left nil in tests.
type BookingHandler struct {
	Store        *store.Store
	Index        *reservation.SeatMap
	Processor    *reservation.Processor
	PublishEvent func(context.Context, queue.BookingConfirmedEvent) error
}

func NewBookingHandler(s *store.Store, index *reservation.SeatMap, p *reservation.Processor) *BookingHandler {
	return &BookingHandler{Store: s, Index: index, Processor: p}
}

// Book handles POST /v1/book. The seat-status index gives a cheap
// reject-early signal; an entry that is already known non-available
// turns into an immediate 409 without queueing. Everything else is
// submitted to the processor, and the handler blocks on the outcome
// handle until the request has been serviced in arrival order.
func (h *BookingHandler) Book(c echo.Context) error {
	var req struct {
		UserName   string `json:"userName"`
		ShowtimeID uint64 `json:"showtimeId"`
		SeatNumber string `json:"seatNumber"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	userName := req.UserName
	if email, ok := emailFromContext(c); ok {
		userName = email
	}
	if userName == "" || req.SeatNumber == "" || req.ShowtimeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	// Optimistic pre-check only. An absent entry passes through; the
	// processor re-validates against the store either way.
	if status, known := h.Index.Get(req.ShowtimeID, req.SeatNumber); known && status != model.SeatAvailable {
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat already reserved"})
	}

	out := h.Processor.Submit(reservation.Request{
		UserName:   userName,
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
	})
	res, err := out.Wait()
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		case errors.Is(err, reservation.ErrSeatNotAvailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat not available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
		}
	}

	h.publishConfirmed(res.BookingID, userName, req.ShowtimeID, req.SeatNumber)
	return c.JSON(http.StatusOK, res)
}

// Cancel handles DELETE /v1/cancel/:bookingId. The seat is released
// directly against the store and index, outside the serialized queue:
// bookings are serialized only against bookings, while a cancel
// racing a concurrent book for the same seat is not ordered against
// it. That matches the behavior this service has always had.
func (h *BookingHandler) Cancel(c echo.Context) error {
	bookingID, ok := paramID(c, "bookingId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid bookingId"})
	}
	b, err := h.Store.BookingByID(bookingID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if h.Store.SetSeatStatus(b.ShowtimeID, b.SeatNumber, model.SeatAvailable) {
		h.Index.Set(b.ShowtimeID, b.SeatNumber, model.SeatAvailable)
	}
	if err := h.Store.DeleteBooking(bookingID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// HistoryMe returns the authenticated user's bookings, newest first.
func (h *BookingHandler) HistoryMe(c echo.Context) error {
	email, ok := emailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Store.BookingsByUser(email))
}

// HistoryByUser returns a user's bookings, newest first.
func (h *BookingHandler) HistoryByUser(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.BookingsByUser(c.Param("user")))
}

// Reservations returns every booking, newest first, for the admin
// dashboard.
func (h *BookingHandler) Reservations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.AllBookings())
}

func (h *BookingHandler) publishConfirmed(bookingID uint64, userName string, showtimeID uint64, seatNumber string) {
	if h.PublishEvent == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:  bookingID,
		UserName:   userName,
		ShowtimeID: showtimeID,
		SeatNumber: seatNumber,
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if st, err := h.Store.ShowtimeByID(showtimeID); err == nil {
		ev.Cinema = st.Cinema
		if m, err := h.Store.MovieByID(st.MovieID); err == nil {
			ev.MovieTitle = m.Title
		}
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.PublishEvent(ctx, ev)
	}()
}
