package core

import "github.com/petermattis/goid"

// ThreadID returns a stable, printable identifier for the calling
// goroutine. The runtime assigns goroutine ids once and never reuses
// them while the goroutine lives, so the id plays the role a cached
// thread id plays under OS threads.
func ThreadID() uint64 {
	return uint64(goid.Get())
}
