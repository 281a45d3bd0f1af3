package sink

import (
	"bufio"
	"os"
	"strconv"

	"github.com/c2h5oh/datasize"
	"go.uber.org/multierr"
)

// Sink appends formatted records to a rolling sequence of text files
// named {dir}{name}{n}.txt, n counting up from 1 each process start.
// Only the consumer goroutine may use it.
type Sink struct {
	prefix   string
	rollSize uint64

	fileNum uint32
	written uint64
	file    *os.File
	w       *bufio.Writer
}

// New opens {dir}{name}1.txt for append and returns the sink. Existing
// files are not probed; a restarted process appends to last run's
// files.
func New(dir, name string, rollSize datasize.ByteSize) (*Sink, error) {
	s := &Sink{
		prefix:   dir + name,
		rollSize: rollSize.Bytes(),
	}
	if err := s.roll(); err != nil {
		return nil, err
	}
	return s, nil
}

// Write appends one formatted record and rolls once the cumulative
// bytes written to the current file exceed the roll size. The check
// runs after the write, so the record that crosses the threshold stays
// in the old file and the file may exceed the threshold by one record.
// Roll errors surface here; the caller is expected to carry on.
func (s *Sink) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, os.ErrClosed
	}
	n, err := s.w.Write(p)
	s.written += uint64(n)
	if err != nil {
		return n, err
	}
	if s.written > s.rollSize {
		err = s.roll()
	}
	return n, err
}

// FileNum returns the index of the file currently open.
func (s *Sink) FileNum() uint32 { return s.fileNum }

// roll flushes and closes the current file, then opens the next index.
func (s *Sink) roll() error {
	var err error
	if s.file != nil {
		err = multierr.Append(s.w.Flush(), s.file.Close())
		s.file = nil
		s.w = nil
	}
	s.written = 0
	s.fileNum++
	name := s.prefix + strconv.FormatUint(uint64(s.fileNum), 10) + ".txt"
	file, openErr := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if openErr != nil {
		return multierr.Append(err, openErr)
	}
	s.file = file
	s.w = bufio.NewWriter(file)
	return err
}

// Close flushes and closes the current file. The sink is unusable
// afterwards.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	err := multierr.Append(s.w.Flush(), s.file.Close())
	s.file = nil
	s.w = nil
	return err
}
