package reservation

import (
	"strconv"
	"sync"

	"github.com/HotaroAce/CineXerve/internal/model"
)

// SeatMap is a fast lookup of the last known status of every seat,
// keyed by showtime and seat number. It exists only to short-circuit
// obviously doomed booking requests before they pay the cost of
// queueing, and to serve cheap reads such as seat-map rendering.
//
// The map is a cache, not the source of truth: it may be briefly
// stale relative to the seat store between a pre-check and the moment
// the request is actually serviced. The processor always re-reads the
// store before committing, so a stale entry can never cause a double
// booking. On the booking path only the processor writes to it.
type SeatMap struct {
	mu sync.RWMutex
	m  map[string]model.SeatStatus
}

// NewSeatMap returns an empty, ready-to-use SeatMap.
func NewSeatMap() *SeatMap {
	return &SeatMap{m: make(map[string]model.SeatStatus)}
}

func seatKey(showtimeID uint64, seatNumber string) string {
	return strconv.FormatUint(showtimeID, 10) + "-" + seatNumber
}

// Set records the last known status for a seat.
func (s *SeatMap) Set(showtimeID uint64, seatNumber string, status model.SeatStatus) {
	s.mu.Lock()
	s.m[seatKey(showtimeID, seatNumber)] = status
	s.mu.Unlock()
}

// Get returns the last known status for a seat and whether an entry
// exists. Callers must treat an absent entry as "unknown", not as
// available.
func (s *SeatMap) Get(showtimeID uint64, seatNumber string) (model.SeatStatus, bool) {
	s.mu.RLock()
	st, ok := s.m[seatKey(showtimeID, seatNumber)]
	s.mu.RUnlock()
	return st, ok
}

// Has reports whether the map holds an entry for the seat.
func (s *SeatMap) Has(showtimeID uint64, seatNumber string) bool {
	_, ok := s.Get(showtimeID, seatNumber)
	return ok
}

// Delete removes the entry for a seat. Used when a showtime and its
// seats are deleted.
func (s *SeatMap) Delete(showtimeID uint64, seatNumber string) {
	s.mu.Lock()
	delete(s.m, seatKey(showtimeID, seatNumber))
	s.mu.Unlock()
}
