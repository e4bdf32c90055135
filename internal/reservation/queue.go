package reservation

import "sync"

// Request is the immutable input of one reservation attempt.
type Request struct {
	UserName   string `json:"userName"`
	ShowtimeID uint64 `json:"showtimeId"`
	SeatNumber string `json:"seatNumber"`
}

// Result is delivered through an Outcome when a reservation commits.
type Result struct {
	BookingID uint64 `json:"bookingId"`
}

// Outcome is the handle a submitter uses to await the result of its
// request. It is settled exactly once, with either a Result or an
// error, never both and never neither; the sync.Once makes that a
// property of the type rather than a convention the processor has to
// uphold.
type Outcome struct {
	once sync.Once
	ch   chan settled
}

type settled struct {
	res Result
	err error
}

func newOutcome() *Outcome {
	return &Outcome{ch: make(chan settled, 1)}
}

// settle resolves the outcome. Calls after the first are no-ops.
func (o *Outcome) settle(res Result, err error) {
	o.once.Do(func() { o.ch <- settled{res: res, err: err} })
}

// Wait blocks until the request has been serviced and returns the
// result or the typed error it was rejected with. An enqueued request
// has no deadline, so Wait has none either.
func (o *Outcome) Wait() (Result, error) {
	s := <-o.ch
	return s.res, s.err
}

// item pairs a request with its outcome handle for its time on the queue.
type item struct {
	req Request
	out *Outcome
}

// queue is a strict FIFO of pending reservation requests. It is
// unbounded, has no priorities and no per-item deadlines; dequeue
// order matching enqueue order is what gives arrival-order seat
// allocation under contention.
type queue struct {
	mu    sync.Mutex
	items []*item
}

func (q *queue) enqueue(it *item) {
	q.mu.Lock()
	q.items = append(q.items, it)
	q.mu.Unlock()
}

// dequeue removes and returns the head item, or nil when the queue is
// observed empty.
func (q *queue) dequeue() *item {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	it := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return it
}

func (q *queue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue) empty() bool { return q.size() == 0 }
