package overlay

import (
	"sync"
	"sync/atomic"
)

// Queue marshals work from background goroutines onto the UI loop.
// Thread-Safety:
//   - Post: any goroutine
//   - Drain: UI loop only
//
// Once closed, pending and late continuations are dropped unrun.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  atomic.Bool
}

func NewQueue() *Queue {
	return &Queue{}
}

// Post schedules fn for the next Drain. It returns false if the queue is closed.
func (q *Queue) Post(fn func()) bool {
	if q.closed.Load() {
		return false
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	return true
}

// Drain runs everything posted so far in FIFO order and returns how many ran.
// The closed flag is checked before each continuation.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, fn := range batch {
		if q.closed.Load() {
			break
		}
		fn()
		ran++
	}
	return ran
}

// Close stops all further continuations.
func (q *Queue) Close() {
	q.closed.Store(true)
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}

func (q *Queue) Closed() bool {
	return q.closed.Load()
}

// Len returns the number of pending continuations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
