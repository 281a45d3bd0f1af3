package queue

import "github.com/picolog/picolog/core"

// Queue is the handoff from many producers to the single consumer.
// Push moves the record in and never fails from the producer's point of
// view; TryPop moves a record out into the caller's slot. Exactly one
// goroutine may call TryPop.
type Queue interface {
	Push(rec *core.Record)
	TryPop(out *core.Record) bool
}
