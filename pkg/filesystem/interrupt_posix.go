//go:build !windows

package filesystem

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// openRetryingOnEINTR is a wrapper around the open system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func openRetryingOnEINTR(path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Open(path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// readRetryingOnEINTR is a wrapper around the read system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error. A successful zero-byte read is converted to io.EOF. Failed calls
// report a zero count (the raw system call reports -1, which would violate
// the io.Reader contract and corrupt buffer cursors computed from it).
func readRetryingOnEINTR(file int, buffer []byte) (int, error) {
	for {
		result, err := unix.Read(file, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return 0, err
		} else if result == 0 {
			return 0, io.EOF
		}
		return result, nil
	}
}

// writeRetryingOnEINTR is a wrapper around the write system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error. Short writes are not absorbed here; callers that need full transfers
// must loop. Failed calls report a zero count for the same reason as
// readRetryingOnEINTR.
func writeRetryingOnEINTR(file int, buffer []byte) (int, error) {
	for {
		result, err := unix.Write(file, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return 0, err
		}
		return result, nil
	}
}

// closeConsideringEINTR is a direct passthrough to the close system call that
// doesn't retry on EINTR. POSIX makes no guarantees about the state of a file
// descriptor after close fails with EINTR, so retrying closure could race
// with descriptor re-use if the descriptor was, in fact, closed. This is the
// same policy adopted by the Go standard library and runtime.
func closeConsideringEINTR(file int) error {
	return unix.Close(file)
}
