//go:build !windows

package filesystem

import (
	"time"

	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// Output is a writable stream backed by a single POSIX file descriptor, which
// it owns exclusively. The descriptor is released exactly once, by Close, and
// must not be closed through any other handle.
type Output struct {
	// descriptor is the underlying file descriptor.
	descriptor int
	// latency is an optional artificial delay inserted before each transfer.
	latency time.Duration
	// closed indicates whether or not Close has been invoked.
	closed bool
}

// NewOutput creates an output stream that takes exclusive ownership of the
// specified descriptor.
func NewOutput(descriptor int, options ...Option) *Output {
	var configuration config
	for _, option := range options {
		option(&configuration)
	}
	return &Output{
		descriptor: descriptor,
		latency:    configuration.latency,
	}
}

// Write implements io.Writer.Write. It retries the underlying transfer until
// every byte has been written or a failure occurs, so callers never observe a
// benign short write. A zero-length transfer is reported as a broken
// connection (EPIPE) rather than retried.
func (o *Output) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if o.latency > 0 {
		time.Sleep(o.latency)
	}
	var written int
	for written < len(p) {
		n, err := writeRetryingOnEINTR(o.descriptor, p[written:])
		if err != nil {
			return written, err
		} else if n == 0 {
			return written, errors.Wrap(unix.EPIPE, "zero-length transfer")
		}
		written += n
	}
	return written, nil
}

// Close implements io.Closer.Close, releasing the descriptor. The descriptor
// is released exactly once; additional calls return an error without touching
// it.
func (o *Output) Close() error {
	if o.closed {
		return errors.New("output already closed")
	}
	o.closed = true
	return closeConsideringEINTR(o.descriptor)
}
