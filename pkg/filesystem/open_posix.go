//go:build !windows

package filesystem

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"

	"github.com/fdstream-io/fdstream/pkg/stream"
)

// Intent represents an abstract access intent for opening a path. It carries
// no state of its own and maps to platform open flags.
type Intent uint8

const (
	// IntentRead opens an existing path for reading only.
	IntentRead Intent = iota
	// IntentWrite opens a path for writing only, truncating any existing
	// content and creating the path if absent.
	IntentWrite
	// IntentAppend opens a path for appending, creating it if absent.
	IntentAppend
	// IntentReadWrite opens a path for reading and writing, creating it if
	// absent.
	IntentReadWrite
)

// creationMode is the permission mode applied to paths created on open.
const creationMode = 0666

// String provides a human-readable representation of an open intent.
func (i Intent) String() string {
	switch i {
	case IntentRead:
		return "read"
	case IntentWrite:
		return "write"
	case IntentAppend:
		return "append"
	case IntentReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// flags converts the intent to platform open flags.
func (i Intent) flags() (int, error) {
	switch i {
	case IntentRead:
		return unix.O_RDONLY, nil
	case IntentWrite:
		return unix.O_WRONLY | unix.O_TRUNC | unix.O_CREAT, nil
	case IntentAppend:
		return unix.O_WRONLY | unix.O_APPEND | unix.O_CREAT, nil
	case IntentReadWrite:
		return unix.O_RDWR | unix.O_CREAT, nil
	default:
		return 0, errors.Errorf("unknown open intent (%d)", i)
	}
}

// readable indicates whether or not the intent permits reading.
func (i Intent) readable() bool {
	return i == IntentRead || i == IntentReadWrite
}

// writable indicates whether or not the intent permits writing.
func (i Intent) writable() bool {
	return i == IntentWrite || i == IntentAppend || i == IntentReadWrite
}

// open maps the intent to platform flags and opens the path, retrying on
// EINTR. Failures carry the originating platform error code and leave no
// resources allocated.
func open(path string, intent Intent) (int, error) {
	flags, err := intent.flags()
	if err != nil {
		return -1, err
	}
	descriptor, err := openRetryingOnEINTR(path, flags, creationMode)
	if err != nil {
		return -1, errors.Wrapf(err, "unable to open %s for %s", path, intent)
	}
	return descriptor, nil
}

// OpenInput opens the path with the specified intent and returns a raw input
// stream owning the resulting descriptor. Intents that don't permit reading
// are rejected.
func OpenInput(path string, intent Intent, options ...Option) (*Input, error) {
	if !intent.readable() {
		return nil, errors.Errorf("%s intent does not permit reading", intent)
	}
	descriptor, err := open(path, intent)
	if err != nil {
		return nil, err
	}
	return NewInput(descriptor, options...), nil
}

// OpenOutput opens the path with the specified intent and returns a raw
// output stream owning the resulting descriptor. Intents that don't permit
// writing are rejected.
func OpenOutput(path string, intent Intent, options ...Option) (*Output, error) {
	if !intent.writable() {
		return nil, errors.Errorf("%s intent does not permit writing", intent)
	}
	descriptor, err := open(path, intent)
	if err != nil {
		return nil, err
	}
	return NewOutput(descriptor, options...), nil
}

// OpenWriter opens the path with the specified intent and wraps the raw
// output stream in a fully buffered writer that owns it. Callers needing a
// different buffering mode should use OpenOutput and wrap explicitly.
func OpenWriter(path string, intent Intent, options ...Option) (stream.WriteFlushCloser, error) {
	output, err := OpenOutput(path, intent, options...)
	if err != nil {
		return nil, err
	}
	return stream.NewBufferedWriter(output, stream.ModeFull), nil
}
