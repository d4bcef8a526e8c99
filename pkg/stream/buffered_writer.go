package stream

import (
	"io"

	"github.com/pkg/errors"
)

// Mode defines the automatic flush policy of a BufferedWriter. It is fixed at
// construction.
type Mode uint8

const (
	// ModeFull buffers bytes and flushes only when the buffer reaches its
	// capacity.
	ModeFull Mode = iota
	// ModeLine behaves like ModeFull but additionally forces a flush
	// immediately after a newline byte is appended, even if the buffer has
	// not reached capacity.
	ModeLine
	// ModeNone disables buffering entirely. Writes pass straight through to
	// the underlying writer.
	ModeNone
)

// String provides a human-readable representation of a buffering mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeLine:
		return "line"
	case ModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// BufferedWriter wraps a writer with a fixed-capacity write-behind buffer and
// an automatic flush policy. It takes exclusive ownership of the underlying
// writer: once wrapped, the writer must not be written to or closed through
// any other handle. If the underlying writer implements io.Closer, it is
// closed (exactly once) by Close, after a mandatory flush of any pending
// bytes.
type BufferedWriter struct {
	// destination is the underlying writer.
	destination io.Writer
	// mode is the automatic flush policy.
	mode Mode
	// buffer is the fixed-capacity write-behind buffer. Its capacity never
	// changes after construction. It is nil in ModeNone.
	buffer []byte
	// pending is the number of buffered bytes not yet flushed. It never
	// exceeds the buffer capacity.
	pending int
	// closed indicates whether or not Close has been invoked.
	closed bool
}

// NewBufferedWriter creates a buffered writer with DefaultBufferCapacity that
// takes ownership of the specified writer.
func NewBufferedWriter(destination io.Writer, mode Mode) *BufferedWriter {
	return NewBufferedWriterCapacity(destination, mode, DefaultBufferCapacity)
}

// NewBufferedWriterCapacity creates a buffered writer with the specified
// buffer capacity that takes ownership of the specified writer. It panics if
// the capacity is not positive.
func NewBufferedWriterCapacity(destination io.Writer, mode Mode, capacity int) *BufferedWriter {
	if capacity <= 0 {
		panic("non-positive buffer capacity")
	}
	writer := &BufferedWriter{
		destination: destination,
		mode:        mode,
	}
	if mode != ModeNone {
		writer.buffer = make([]byte, capacity)
	}
	return writer
}

// Mode returns the writer's buffering mode.
func (w *BufferedWriter) Mode() Mode {
	return w.mode
}

// Flush implements Flusher.Flush, transferring any pending bytes to the
// underlying writer and resetting the buffer cursor. Calling Flush with no
// pending bytes is a no-op.
func (w *BufferedWriter) Flush() error {
	if w.pending == 0 {
		return nil
	}
	n, err := w.destination.Write(w.buffer[:w.pending])
	if err != nil {
		// Shift any unwritten remainder to the front of the buffer so that a
		// successful retry won't duplicate bytes that already reached the
		// underlying writer.
		if n > 0 && n < w.pending {
			copy(w.buffer, w.buffer[n:w.pending])
			w.pending -= n
		} else if n >= w.pending {
			w.pending = 0
		}
		return err
	}
	w.pending = 0
	return nil
}

// WriteByte implements io.ByteWriter.WriteByte with the same flush policy as
// Write.
func (w *BufferedWriter) WriteByte(c byte) error {
	if w.mode == ModeNone {
		_, err := w.destination.Write([]byte{c})
		return err
	}
	if w.pending == len(w.buffer) {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	w.buffer[w.pending] = c
	w.pending++
	if w.mode == ModeLine && c == '\n' {
		return w.Flush()
	}
	return nil
}

// Write implements io.Writer.Write. In ModeNone the buffer is bypassed and
// the write goes straight to the underlying writer. Otherwise bytes are
// accumulated in the buffer, which is flushed whenever it reaches capacity
// (and, in ModeLine, whenever a newline byte is appended) before further
// bytes continue to accumulate. The returned count reflects bytes accepted
// into the buffer or transferred downstream.
func (w *BufferedWriter) Write(p []byte) (int, error) {
	if w.mode == ModeNone {
		return w.destination.Write(p)
	}

	// Line mode requires inspection of each byte for the newline flush
	// trigger.
	if w.mode == ModeLine {
		for i, c := range p {
			if err := w.WriteByte(c); err != nil {
				return i, err
			}
		}
		return len(p), nil
	}

	// Full mode can accumulate in whole-chunk copies.
	var written int
	for written < len(p) {
		if w.pending == len(w.buffer) {
			if err := w.Flush(); err != nil {
				return written, err
			}
		}
		n := copy(w.buffer[w.pending:], p[written:])
		w.pending += n
		written += n
	}
	return written, nil
}

// Close implements io.Closer.Close. It flushes any pending bytes and then, if
// the underlying writer implements io.Closer, closes it. The flush always
// happens first so that no buffered output is lost on teardown. The
// underlying writer is released exactly once; additional calls return an
// error without touching it.
func (w *BufferedWriter) Close() error {
	if w.closed {
		return errors.New("writer already closed")
	}
	w.closed = true
	flushErr := w.Flush()
	if closer, ok := w.destination.(io.Closer); ok {
		if err := closer.Close(); err != nil && flushErr == nil {
			return errors.Wrap(err, "unable to close underlying writer")
		}
	}
	return flushErr
}
