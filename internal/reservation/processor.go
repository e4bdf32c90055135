package reservation

import (
	"fmt"
	"sync"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// SeatStore is the authoritative seat and booking storage consumed by
// the processor. On the booking path the processor must be the only
// writer; the store only has to make individual calls safe against
// concurrent readers.
type SeatStore interface {
	// FindSeat returns the current seat record for the showtime and
	// seat number, or ok=false when no such seat exists.
	FindSeat(showtimeID uint64, seatNumber string) (model.Seat, bool)
	// SetSeatStatus updates a seat's status in place and reports
	// whether the seat still existed.
	SetSeatStatus(showtimeID uint64, seatNumber string, status model.SeatStatus) bool
	// AppendBooking records a committed booking, allocating the next
	// monotonic booking ID.
	AppendBooking(userName string, showtimeID uint64, seatNumber string) model.Booking
}

// Processor serializes all seat bookings. Submit can be called from
// any number of goroutines; a single long-lived worker goroutine owns
// the queue drain, so at most one drain pass is ever active and no
// seat can be double-booked: every mutation re-validates against the
// store immediately before committing.
//
// This is a global serialization of all bookings, for any seat on any
// showtime, not a per-seat lock. It trades parallelism for a trivial
// correctness argument.
type Processor struct {
	store SeatStore
	index *SeatMap

	q queue
	// wake carries at most one token. Submit leaves a token after
	// enqueueing; the worker takes one token per drain pass. A request
	// enqueued in the window between the worker observing the queue
	// empty and blocking again leaves its token behind, so it is picked
	// up by the next pass rather than lost.
	wake chan struct{}

	stopOnce sync.Once
	stop     chan struct{}
}

// NewProcessor starts the worker goroutine and returns the processor.
// The index is updated by the processor after every successful
// mutation so that it converges to the store.
func NewProcessor(store SeatStore, index *SeatMap) *Processor {
	p := &Processor{
		store: store,
		index: index,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
	}
	go p.run()
	return p
}

// Submit appends a reservation request to the queue, signals the
// worker and returns immediately. The caller observes the eventual
// result through the returned outcome handle; submitting never blocks
// on other callers.
func (p *Processor) Submit(req Request) *Outcome {
	out := newOutcome()
	p.q.enqueue(&item{req: req, out: out})
	select {
	case p.wake <- struct{}{}:
	default: // a token is already pending; the active or next drain will see the item
	}
	return out
}

// Pending returns the number of requests waiting to be serviced.
func (p *Processor) Pending() int { return p.q.size() }

// Stop terminates the worker goroutine. Requests submitted after Stop
// are never serviced; it is intended for shutdown and tests.
func (p *Processor) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *Processor) run() {
	for {
		select {
		case <-p.stop:
			return
		case <-p.wake:
			p.drain()
		}
	}
}

// drain services queued requests strictly in arrival order until the
// queue is observed empty. A single item's failure is settled onto
// that item alone and never aborts the drain.
func (p *Processor) drain() {
	for {
		it := p.q.dequeue()
		if it == nil {
			return
		}
		res, err := p.book(it.req)
		it.out.settle(res, err)
	}
}

// book performs one read-check-mutate sequence against the
// authoritative store. The seat is re-read here even when a pre-check
// against the index already happened, because the index can be stale
// by the time the request is serviced.
func (p *Processor) book(req Request) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reservation failed: %v", r)
		}
	}()

	seat, ok := p.store.FindSeat(req.ShowtimeID, req.SeatNumber)
	if !ok {
		return Result{}, ErrSeatNotFound
	}
	if seat.Status != model.SeatAvailable {
		return Result{}, ErrSeatNotAvailable
	}
	if !p.store.SetSeatStatus(req.ShowtimeID, req.SeatNumber, model.SeatReserved) {
		return Result{}, fmt.Errorf("reservation failed: seat %d-%s vanished during commit", req.ShowtimeID, req.SeatNumber)
	}
	b := p.store.AppendBooking(req.UserName, req.ShowtimeID, req.SeatNumber)
	p.index.Set(req.ShowtimeID, req.SeatNumber, model.SeatReserved)
	return Result{BookingID: b.ID}, nil
}
