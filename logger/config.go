package logger

import (
	"errors"

	"github.com/c2h5oh/datasize"
	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/queue"
	"github.com/picolog/picolog/sink"
)

// Config holds configuration for the logging service
type Config struct {
	// Dir is the directory the log files are created in. It is joined
	// to Name by plain concatenation, so a trailing separator matters:
	// "/tmp/" + "app" gives /tmp/app1.txt.
	Dir string
	// Name is the stem of the log file names
	Name string
	// RollSize is the byte threshold after which the sink rolls to the
	// next numbered file
	RollSize datasize.ByteSize
	// RingBudget selects the queue discipline. Zero means guaranteed
	// mode (unbounded spill queue, nothing dropped). A non-zero budget
	// means non-guaranteed mode: a ring of RingBudget/256 slots whose
	// overrun silently overwrites the oldest unread records.
	RingBudget datasize.ByteSize
	// CoarseClock stamps records from a 500µs cached clock instead of
	// reading the time on every call
	CoarseClock bool
}

// Init installs the process-wide logging service described by cfg,
// replacing any previous service after its consumer has drained. The
// returned error covers both the new service's setup and the previous
// service's teardown.
func Init(cfg Config) error {
	if cfg.Name == "" {
		return errors.New("log file name is required")
	}
	if cfg.RollSize == 0 {
		return errors.New("roll size is required")
	}

	snk, err := sink.New(cfg.Dir, cfg.Name, cfg.RollSize)
	if err != nil {
		return err
	}

	var q queue.Queue
	if cfg.RingBudget > 0 {
		q = queue.NewRing(int(cfg.RingBudget.Bytes() / core.RecordSize))
	} else {
		q = queue.NewSpill()
	}

	if cfg.CoarseClock {
		core.StartCoarseClock()
	}

	s := &Service{
		queue:  q,
		sink:   snk,
		coarse: cfg.CoarseClock,
		done:   make(chan struct{}),
	}
	go s.consume()

	if prev := current.Swap(s); prev != nil {
		return prev.stop()
	}
	return nil
}

// InitGuaranteed installs a service in guaranteed mode: every record
// submitted before Shutdown returns ends up in the output files.
func InitGuaranteed(dir, name string, rollMB uint32) error {
	return Init(Config{
		Dir:      dir,
		Name:     name,
		RollSize: datasize.ByteSize(rollMB) * datasize.MB,
	})
}

// InitNonGuaranteed installs a service in non-guaranteed mode with a
// ring of ringBudgetMB·1024·1024/256 slots. Producers never block; on
// overrun the oldest unread records are silently dropped.
func InitNonGuaranteed(ringBudgetMB uint32, dir, name string, rollMB uint32) error {
	return Init(Config{
		Dir:        dir,
		Name:       name,
		RollSize:   datasize.ByteSize(rollMB) * datasize.MB,
		RingBudget: datasize.ByteSize(ringBudgetMB) * datasize.MB,
	})
}

// Shutdown disables the service, waits for the consumer to drain every
// record submitted so far, and closes the sink. It is a no-op if no
// service is installed.
func Shutdown() error {
	if s := current.Swap(nil); s != nil {
		return s.stop()
	}
	return nil
}
