package stream

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultBufferCapacity is the buffer capacity used by buffered streams when
// no explicit capacity is specified.
const DefaultBufferCapacity = 4096

// BufferedReader wraps a reader with a fixed-capacity read-ahead buffer,
// amortizing small reads into fewer underlying transfers. It takes exclusive
// ownership of the underlying reader: once wrapped, the reader must not be
// read from or closed through any other handle. If the underlying reader
// implements io.Closer, it is closed (exactly once) by Close.
type BufferedReader struct {
	// source is the underlying reader.
	source io.Reader
	// buffer is the fixed-capacity read-ahead buffer. Its capacity never
	// changes after construction.
	buffer []byte
	// consumed is the number of buffered bytes already served to callers. It
	// never exceeds filled.
	consumed int
	// filled is the number of valid bytes in the buffer. It never exceeds the
	// buffer capacity.
	filled int
	// closed indicates whether or not Close has been invoked.
	closed bool
}

// NewBufferedReader creates a buffered reader with DefaultBufferCapacity that
// takes ownership of the specified reader.
func NewBufferedReader(source io.Reader) *BufferedReader {
	return NewBufferedReaderCapacity(source, DefaultBufferCapacity)
}

// NewBufferedReaderCapacity creates a buffered reader with the specified
// buffer capacity that takes ownership of the specified reader. It panics if
// the capacity is not positive.
func NewBufferedReaderCapacity(source io.Reader, capacity int) *BufferedReader {
	if capacity <= 0 {
		panic("non-positive buffer capacity")
	}
	return &BufferedReader{
		source: source,
		buffer: make([]byte, capacity),
	}
}

// refill discards any already-consumed bytes, resets the buffer cursors, and
// performs exactly one read on the underlying reader. It reports whether or
// not any bytes were obtained. End-of-data is reported as (false, nil);
// failures are returned verbatim.
func (r *BufferedReader) refill() (bool, error) {
	r.consumed = 0
	r.filled = 0
	n, err := r.source.Read(r.buffer)
	if n < 0 {
		panic("reader returned negative count")
	}
	r.filled = n
	if err != nil && err != io.EOF {
		return n > 0, err
	}
	return n > 0, nil
}

// Read implements io.Reader.Read. If the buffer holds unconsumed bytes, they
// are served without touching the underlying reader, even if fewer than
// len(p) are available. Only when the buffer is empty does Read perform
// exactly one refill, serving whatever that refill yields. It never performs
// more than one refill per call and returns (0, io.EOF) at end-of-data.
func (r *BufferedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.consumed == r.filled {
		if ok, err := r.refill(); err != nil {
			return 0, err
		} else if !ok {
			return 0, io.EOF
		}
	}
	n := copy(p, r.buffer[r.consumed:r.filled])
	r.consumed += n
	return n, nil
}

// ReadN reads until p is full or end-of-data is reached, refilling the buffer
// as many times as necessary. The returned count is less than len(p) only at
// end-of-data; failures are returned immediately with the count served so
// far.
func (r *BufferedReader) ReadN(p []byte) (int, error) {
	var read int
	for read < len(p) {
		if r.consumed == r.filled {
			if ok, err := r.refill(); err != nil {
				return read, err
			} else if !ok {
				return read, nil
			}
		}
		n := copy(p[read:], r.buffer[r.consumed:r.filled])
		r.consumed += n
		read += n
	}
	return read, nil
}

// ReadByte implements io.ByteReader.ReadByte, serving a single buffered byte
// and refilling at most once if the buffer is empty. It returns io.EOF at
// end-of-data.
func (r *BufferedReader) ReadByte() (byte, error) {
	if r.consumed == r.filled {
		if ok, err := r.refill(); err != nil {
			return 0, err
		} else if !ok {
			return 0, io.EOF
		}
	}
	c := r.buffer[r.consumed]
	r.consumed++
	return c, nil
}

// Buffered returns the number of unconsumed bytes currently held in the
// buffer.
func (r *BufferedReader) Buffered() int {
	return r.filled - r.consumed
}

// Close implements io.Closer.Close. If the underlying reader implements
// io.Closer, it is closed. The underlying reader is released exactly once;
// additional calls return an error without touching it.
func (r *BufferedReader) Close() error {
	if r.closed {
		return errors.New("reader already closed")
	}
	r.closed = true
	if closer, ok := r.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
