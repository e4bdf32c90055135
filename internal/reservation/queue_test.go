package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q queue
	assert.True(t, q.empty())
	assert.Nil(t, q.dequeue())

	first := &item{req: Request{SeatNumber: "A1"}}
	second := &item{req: Request{SeatNumber: "A2"}}
	third := &item{req: Request{SeatNumber: "A3"}}
	q.enqueue(first)
	q.enqueue(second)
	q.enqueue(third)
	assert.Equal(t, 3, q.size())

	assert.Same(t, first, q.dequeue())
	assert.Same(t, second, q.dequeue())
	assert.Same(t, third, q.dequeue())
	assert.Nil(t, q.dequeue())
	assert.True(t, q.empty())
}

func TestOutcomeSettlesExactlyOnce(t *testing.T) {
	out := newOutcome()
	out.settle(Result{BookingID: 7}, nil)
	// A second settle is a no-op, whatever it carries.
	out.settle(Result{BookingID: 8}, ErrSeatNotAvailable)

	res, err := out.Wait()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.BookingID)
}

func TestOutcomeCarriesError(t *testing.T) {
	out := newOutcome()
	out.settle(Result{}, ErrSeatNotFound)
	_, err := out.Wait()
	assert.ErrorIs(t, err, ErrSeatNotFound)
}
