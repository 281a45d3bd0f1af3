// Package queue provides the two producer/consumer handoff disciplines.
//
// Ring is bounded: a single allocation of fixed slots, a fetch-add
// write cursor, and a per-slot spin flag. Producers never block and
// never fail; on overrun the oldest unread record in the slot is
// silently overwritten. Spill is unbounded: a mutex-guarded staging
// batch the consumer periodically swaps out wholesale, so nothing is
// ever dropped.
//
// Both are many-producer, one-consumer. The consumer side of either
// queue must stay on a single goroutine.
package queue
