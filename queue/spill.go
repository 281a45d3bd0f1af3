package queue

import (
	"sync"

	"github.com/picolog/picolog/core"
)

// Spill is the unbounded multi-producer single-consumer queue. A push
// appends to the staging batch under a mutex held only for the move
// itself; the consumer swaps the whole batch out and drains it without
// touching the lock again. Nothing is ever dropped, and records from a
// single producer drain in the order they were pushed.
type Spill struct {
	mu    sync.Mutex
	batch []core.Record

	// consumer-held state, no locking
	local []core.Record
	next  int
}

// NewSpill returns an empty spill queue.
func NewSpill() *Spill {
	return &Spill{}
}

// Push moves the record onto the staging batch. The batch grows on
// demand; records are moved, not copied, when it does.
func (q *Spill) Push(rec *core.Record) {
	q.mu.Lock()
	q.batch = append(q.batch, core.Record{})
	rec.MoveTo(&q.batch[len(q.batch)-1])
	q.mu.Unlock()
}

// TryPop moves the next record into out. When the consumer's batch runs
// dry it takes ownership of whatever the producers staged since the
// last swap, handing its drained storage back as the next staging
// slice so steady-state traffic stops allocating. Consumer only.
func (q *Spill) TryPop(out *core.Record) bool {
	if q.next >= len(q.local) {
		spare := q.local[:0]
		q.mu.Lock()
		q.local = q.batch
		q.batch = spare
		q.mu.Unlock()
		q.next = 0
		if len(q.local) == 0 {
			return false
		}
	}
	q.local[q.next].MoveTo(out)
	q.next++
	return true
}
