package reservation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/reservation"
)

func TestSeatMapOperations(t *testing.T) {
	m := reservation.NewSeatMap()

	_, ok := m.Get(1, "A1")
	assert.False(t, ok)
	assert.False(t, m.Has(1, "A1"))

	m.Set(1, "A1", model.SeatAvailable)
	status, ok := m.Get(1, "A1")
	require.True(t, ok)
	assert.Equal(t, model.SeatAvailable, status)

	// Same seat number on another showtime is a distinct entry.
	assert.False(t, m.Has(2, "A1"))

	m.Set(1, "A1", model.SeatReserved)
	status, _ = m.Get(1, "A1")
	assert.Equal(t, model.SeatReserved, status)

	m.Delete(1, "A1")
	assert.False(t, m.Has(1, "A1"))
}

func TestSeatMapConcurrentReadersAndWriter(t *testing.T) {
	m := reservation.NewSeatMap()
	m.Set(1, "A1", model.SeatAvailable)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				m.Get(1, "A1")
				m.Has(1, "A1")
			}
		}()
	}
	for j := 0; j < 500; j++ {
		m.Set(1, "A1", model.SeatReserved)
		m.Set(1, "A1", model.SeatAvailable)
	}
	wg.Wait()
	assert.True(t, m.Has(1, "A1"))
}
