package reservation_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/store"
)

// newBookingFixture returns a store with one showtime (seats A1-D10,
// all available), the seat-status index seeded for it, and a running
// processor.
func newBookingFixture(t *testing.T) (*store.Store, *reservation.SeatMap, *reservation.Processor, model.Showtime) {
	t.Helper()
	db := store.New()
	index := reservation.NewSeatMap()
	st, seats := db.CreateShowtime(1, time.Now().Add(24*time.Hour), "Hall 1")
	for _, seat := range seats {
		index.Set(seat.ShowtimeID, seat.SeatNumber, seat.Status)
	}
	p := reservation.NewProcessor(db, index)
	t.Cleanup(p.Stop)
	return db, index, p, st
}

func TestBookAvailableSeat(t *testing.T) {
	db, index, p, st := newBookingFixture(t)

	res, err := p.Submit(reservation.Request{UserName: "alice@example.com", ShowtimeID: st.ID, SeatNumber: "A1"}).Wait()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.BookingID)

	// Index and store agree after the commit.
	status, ok := index.Get(st.ID, "A1")
	require.True(t, ok)
	assert.Equal(t, model.SeatReserved, status)
	seat, ok := db.FindSeat(st.ID, "A1")
	require.True(t, ok)
	assert.Equal(t, model.SeatReserved, seat.Status)

	b, err := db.BookingByID(res.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", b.UserName)
	assert.Equal(t, "A1", b.SeatNumber)
}

func TestConcurrentSubmitsSameSeat(t *testing.T) {
	db, _, p, st := newBookingFixture(t)

	const n = 25
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: "B4"}).Wait()
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, reservation.ErrSeatNotAvailable)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one submit wins the seat")
	assert.Len(t, db.AllBookings(), 1)
}

func TestTwoCallersOneSeat(t *testing.T) {
	db, _, p, st := newBookingFixture(t)

	outA := p.Submit(reservation.Request{UserName: "userA", ShowtimeID: st.ID, SeatNumber: "A1"})
	outB := p.Submit(reservation.Request{UserName: "userB", ShowtimeID: st.ID, SeatNumber: "A1"})

	resA, errA := outA.Wait()
	_, errB := outB.Wait()

	// FIFO: the first submission wins, the second sees the seat taken.
	require.NoError(t, errA)
	assert.Equal(t, uint64(1), resA.BookingID)
	assert.ErrorIs(t, errB, reservation.ErrSeatNotAvailable)

	seat, ok := db.FindSeat(st.ID, "A1")
	require.True(t, ok)
	assert.Equal(t, model.SeatReserved, seat.Status)
	assert.Len(t, db.AllBookings(), 1)
}

func TestFIFOBookingIDOrder(t *testing.T) {
	_, _, p, st := newBookingFixture(t)

	seats := []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"}
	outs := make([]*reservation.Outcome, len(seats))
	for i, seatNumber := range seats {
		outs[i] = p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: seatNumber})
	}
	for i, out := range outs {
		res, err := out.Wait()
		require.NoError(t, err)
		// IDs are allocated at commit time, and commits happen in
		// arrival order, so submission order and ID order coincide.
		assert.Equal(t, uint64(i+1), res.BookingID)
	}
}

func TestUnknownSeatRejected(t *testing.T) {
	db, index, p, st := newBookingFixture(t)

	_, err := p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: "Z99"}).Wait()
	assert.ErrorIs(t, err, reservation.ErrSeatNotFound)
	assert.Empty(t, db.AllBookings())
	assert.False(t, index.Has(st.ID, "Z99"), "a failed request must not touch the index")
}

func TestDrainConvergence(t *testing.T) {
	db := store.New()
	index := reservation.NewSeatMap()
	p := reservation.NewProcessor(db, index)
	t.Cleanup(p.Stop)

	// One request per seat across enough showtimes for 100 distinct
	// available seats.
	type target struct {
		showtimeID uint64
		seatNumber string
	}
	var targets []target
	for len(targets) < 100 {
		st, seats := db.CreateShowtime(1, time.Now().Add(24*time.Hour), "Hall 1")
		for _, seat := range seats {
			if len(targets) == 100 {
				break
			}
			index.Set(seat.ShowtimeID, seat.SeatNumber, seat.Status)
			targets = append(targets, target{showtimeID: st.ID, seatNumber: seat.SeatNumber})
		}
	}

	outs := make([]*reservation.Outcome, len(targets))
	var wg sync.WaitGroup
	for i, tg := range targets {
		wg.Add(1)
		go func(i int, tg target) {
			defer wg.Done()
			outs[i] = p.Submit(reservation.Request{UserName: "user", ShowtimeID: tg.showtimeID, SeatNumber: tg.seatNumber})
		}(i, tg)
	}
	wg.Wait()

	for _, out := range outs {
		_, err := out.Wait()
		require.NoError(t, err)
	}
	assert.Len(t, db.AllBookings(), 100)
	assert.Equal(t, 0, p.Pending(), "queue drained completely")
}

func TestStaleIndexIsNotTrusted(t *testing.T) {
	db, index, p, st := newBookingFixture(t)

	// Simulate a stale cache: the store already shows the seat
	// reserved while the index still claims it is available.
	require.True(t, db.SetSeatStatus(st.ID, "C7", model.SeatReserved))
	index.Set(st.ID, "C7", model.SeatAvailable)

	_, err := p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: "C7"}).Wait()
	assert.ErrorIs(t, err, reservation.ErrSeatNotAvailable)
	assert.Empty(t, db.AllBookings())
}

func TestFailureDoesNotAbortDrain(t *testing.T) {
	_, _, p, st := newBookingFixture(t)

	bad := p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: "Z99"})
	good := p.Submit(reservation.Request{UserName: "user", ShowtimeID: st.ID, SeatNumber: "D10"})

	_, errBad := bad.Wait()
	res, errGood := good.Wait()
	assert.ErrorIs(t, errBad, reservation.ErrSeatNotFound)
	require.NoError(t, errGood)
	assert.Equal(t, uint64(1), res.BookingID)
}
