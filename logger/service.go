package logger

import (
	"sync/atomic"
	"time"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/format"
	"github.com/picolog/picolog/queue"
	"github.com/picolog/picolog/sink"
)

// idleSleep is how long the consumer sleeps when the queue is empty.
// It is the only place any goroutine in the library waits on a clock.
const idleSleep = 50 * time.Microsecond

// Service owns the queue, the sink, and the single consumer goroutine
// that connects them. One Service is installed process-wide via Init.
type Service struct {
	queue    queue.Queue
	sink     *sink.Sink
	coarse   bool
	disabled atomic.Bool
	done     chan struct{}
}

// current is the installed service. Submit before Init is a programmer
// error and panics on the nil pointer.
var current atomic.Pointer[Service]

// Submit moves the record into the queue. It never blocks on I/O and
// never returns an error to the producer. Concurrent use with Shutdown
// is the caller's responsibility.
func Submit(rec *core.Record) {
	current.Load().queue.Push(rec)
}

// consume is the consumer loop: pop, format, write, until disabled,
// then drain whatever is left so every submission that preceded the
// disable flag reaches the files.
func (s *Service) consume() {
	defer close(s.done)

	var rec core.Record
	for !s.disabled.Load() {
		if s.queue.TryPop(&rec) {
			_ = format.FormatTo(&rec, s.sink)
		} else {
			time.Sleep(idleSleep)
		}
	}
	for s.queue.TryPop(&rec) {
		_ = format.FormatTo(&rec, s.sink)
	}
}

// stop disables the service, joins the consumer, and closes the sink.
// Callers must ensure it runs at most once; Init and Shutdown do so by
// swapping the service out of current before calling it.
func (s *Service) stop() error {
	s.disabled.Store(true)
	<-s.done
	return s.sink.Close()
}
