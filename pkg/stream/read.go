package stream

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// initialReadAllCapacity is the initial capacity of the growth buffer used by
// ReadAll. The buffer doubles in capacity whenever it fills.
const initialReadAllCapacity = 32

// GetChar reads a single byte from the reader. It returns io.EOF once the
// reader has reached end-of-data. Like the other convenience operations, it
// treats a zero-byte read with no error as end-of-data.
func GetChar(reader io.Reader) (byte, error) {
	var buffer [1]byte
	n, err := reader.Read(buffer[:])
	if n > 0 {
		return buffer[0], nil
	} else if err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// ReadN reads from the reader until the buffer is full or end-of-data is
// reached, absorbing short transfers along the way. It returns the number of
// bytes obtained. A count shorter than len(buffer) with a nil error indicates
// end-of-data; failures are returned immediately with the count obtained so
// far.
func ReadN(reader io.Reader, buffer []byte) (int, error) {
	var read int
	for read < len(buffer) {
		n, err := reader.Read(buffer[read:])
		read += n
		if err == io.EOF {
			return read, nil
		} else if err != nil {
			return read, err
		} else if n == 0 {
			return read, nil
		}
	}
	return read, nil
}

// ReadAll reads the remainder of the stream into a growth buffer that doubles
// in capacity whenever it fills, returning the full accumulated content once
// end-of-data is reached. The stream is consumed in the process and is not
// restartable.
func ReadAll(reader io.Reader) ([]byte, error) {
	buffer := make([]byte, initialReadAllCapacity)
	var filled int
	for {
		n, err := reader.Read(buffer[filled:])
		filled += n
		if err == io.EOF || (err == nil && n == 0) {
			return buffer[:filled], nil
		} else if err != nil {
			return buffer[:filled], err
		}
		if filled == len(buffer) {
			grown := make([]byte, 2*len(buffer))
			copy(grown, buffer)
			buffer = grown
		}
	}
}

// ReadUntil reads bytes one at a time until the accumulated bytes end with
// the delimiter or end-of-data is reached. The delimiter is included in the
// result. Because accumulation proceeds byte by byte, multi-byte delimiters
// are detected correctly regardless of where any underlying buffer refills
// fall. If end-of-data is reached before the delimiter, the bytes accumulated
// up to that point are returned alongside io.EOF.
func ReadUntil(reader io.Reader, delimiter []byte) ([]byte, error) {
	if len(delimiter) == 0 {
		return nil, errors.New("empty delimiter")
	}
	var accumulated []byte
	for {
		c, err := GetChar(reader)
		if err == io.EOF {
			return accumulated, io.EOF
		} else if err != nil {
			return accumulated, err
		}
		accumulated = append(accumulated, c)
		if len(accumulated) >= len(delimiter) &&
			bytes.Equal(accumulated[len(accumulated)-len(delimiter):], delimiter) {
			return accumulated, nil
		}
	}
}

// GetLine behaves like ReadUntil but strips the trailing delimiter from the
// result when present.
func GetLine(reader io.Reader, delimiter []byte) ([]byte, error) {
	line, err := ReadUntil(reader, delimiter)
	if bytes.HasSuffix(line, delimiter) {
		line = line[:len(line)-len(delimiter)]
	}
	return line, err
}
