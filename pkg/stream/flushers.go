package stream

import (
	"io"
)

// multiFlusher is the Flusher implementation underlying NewMultiFlusher.
type multiFlusher struct {
	// flushers are the underlying flushers.
	flushers []Flusher
}

// NewMultiFlusher creates a single flusher that flushes multiple underlying
// flushers in the order specified, so higher layers should be listed before
// lower ones. Flushing halts at the first failure.
func NewMultiFlusher(flushers ...Flusher) Flusher {
	return &multiFlusher{flushers}
}

// Flush implements Flusher.Flush.
func (f *multiFlusher) Flush() error {
	for _, flusher := range f.flushers {
		if err := flusher.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// flushCloser is the io.Closer implementation underlying NewFlushCloser.
type flushCloser struct {
	// flusher is the underlying flusher.
	flusher Flusher
}

// NewFlushCloser creates an io.Closer whose Close aliases the specified
// flusher's Flush method. It's useful for handing a buffered writer to APIs
// that expect to close a stream when they finish with it.
func NewFlushCloser(flusher Flusher) io.Closer {
	return &flushCloser{flusher}
}

// Close implements io.Closer.Close.
func (c *flushCloser) Close() error {
	return c.flusher.Flush()
}
