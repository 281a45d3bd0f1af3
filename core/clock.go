package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Now returns the current time in microseconds since the Unix epoch.
func Now() uint64 {
	return uint64(time.Now().UnixMicro())
}

var (
	coarseClockOnce sync.Once
	coarseStamp     atomic.Uint64
)

// StartCoarseClock starts the background goroutine that caches the
// microsecond timestamp every 500µs. It is safe to call multiple times;
// the goroutine is started exactly once. The goroutine runs for the
// lifetime of the process; this is intentional because logging
// typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseStamp.Store(Now())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				coarseStamp.Store(Now())
			}
		}()
	})
}

// CoarseNow returns the most recently cached microsecond timestamp.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() uint64 {
	return coarseStamp.Load()
}
