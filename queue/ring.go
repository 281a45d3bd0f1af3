package queue

import (
	"runtime"
	"sync/atomic"

	"github.com/picolog/picolog/core"
)

const cacheLine = 64

// slot holds one record plus its handshake state. written is 1 while
// the slot holds an unread record. The flag is a per-slot spin lock
// held only across a record move plus the written store, so producers
// contend only when they land on the same slot or race the consumer
// reading it. The pad keeps adjacent slots off each other's cache
// lines.
type slot struct {
	rec     core.Record
	written uint8
	flag    atomic.Bool
	_       [cacheLine - 2]byte
}

func (s *slot) lock() {
	for !s.flag.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (s *slot) unlock() {
	s.flag.Store(false)
}

// Ring is the bounded multi-producer single-consumer queue. Producers
// claim slots with a fetch-add on the write cursor; a push onto a slot
// whose record has not been read yet silently overwrites it. Records
// come out in slot order, which can differ from push order once the
// cursor wraps.
//
// The read cursor is a plain integer touched only by the consumer;
// adding a second consumer would race it.
type Ring struct {
	slots []slot
	_     [cacheLine]byte
	read  uint32
	_     [cacheLine]byte
	write atomic.Uint32
}

// NewRing returns a ring with the given number of slots, at least one.
func NewRing(slots int) *Ring {
	if slots < 1 {
		slots = 1
	}
	return &Ring{slots: make([]slot, slots)}
}

// Slots returns the ring's capacity.
func (q *Ring) Slots() int { return len(q.slots) }

// Push moves the record into the next slot. If the slot still holds an
// unread record, that record is dropped; no count of drops is kept.
func (q *Ring) Push(rec *core.Record) {
	i := q.write.Add(1) - 1
	s := &q.slots[i%uint32(len(q.slots))]
	s.lock()
	rec.MoveTo(&s.rec)
	s.written = 1
	s.unlock()
}

// TryPop moves the record at the read cursor into out if one is
// waiting. Consumer only.
func (q *Ring) TryPop(out *core.Record) bool {
	s := &q.slots[q.read%uint32(len(q.slots))]
	s.lock()
	if s.written == 1 {
		s.rec.MoveTo(out)
		s.written = 0
		q.read++
		s.unlock()
		return true
	}
	s.unlock()
	return false
}
