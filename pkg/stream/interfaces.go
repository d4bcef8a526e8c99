package stream

import (
	"io"
)

// DualModeReader represents a reader that can perform both regular and
// single-byte reads efficiently.
type DualModeReader interface {
	io.ByteReader
	io.Reader
}

// Flusher represents a stream that performs internal buffering that may need
// to be flushed to ensure transmission.
type Flusher interface {
	// Flush forces transmission of any buffered stream data.
	Flush() error
}

// WriteFlushCloser represents a stream with writing, flushing, and closing
// functionality.
type WriteFlushCloser interface {
	io.Writer
	Flusher
	io.Closer
}
