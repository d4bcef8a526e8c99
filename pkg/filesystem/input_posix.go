//go:build !windows

package filesystem

import (
	"time"

	"github.com/pkg/errors"
)

// Input is a readable stream backed by a single POSIX file descriptor, which
// it owns exclusively. The descriptor is released exactly once, by Close, and
// must not be closed through any other handle. We avoid using os.File because
// its construction and operation can be expensive and its internals add no
// benefit for simple blocking descriptor reads.
type Input struct {
	// descriptor is the underlying file descriptor.
	descriptor int
	// latency is an optional artificial delay inserted before each transfer.
	latency time.Duration
	// closed indicates whether or not Close has been invoked.
	closed bool
}

// NewInput creates an input stream that takes exclusive ownership of the
// specified descriptor.
func NewInput(descriptor int, options ...Option) *Input {
	var configuration config
	for _, option := range options {
		option(&configuration)
	}
	return &Input{
		descriptor: descriptor,
		latency:    configuration.latency,
	}
}

// Read implements io.Reader.Read. It issues exactly one underlying transfer
// per call and returns its result verbatim, which may be shorter than
// requested. End-of-data is signaled by (0, io.EOF); failures carry the
// originating platform error code.
func (i *Input) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if i.latency > 0 {
		time.Sleep(i.latency)
	}
	return readRetryingOnEINTR(i.descriptor, p)
}

// Close implements io.Closer.Close, releasing the descriptor. The descriptor
// is released exactly once; additional calls return an error without touching
// it.
func (i *Input) Close() error {
	if i.closed {
		return errors.New("input already closed")
	}
	i.closed = true
	return closeConsideringEINTR(i.descriptor)
}
