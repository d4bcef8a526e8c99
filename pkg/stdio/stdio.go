// Package stdio provides the process-wide standard streams: a buffered
// standard input, a buffered standard output, and an unbuffered standard
// error. The streams are constructed exactly once, before any user code runs,
// and live for the process lifetime; they are never re-initialized. Flush
// must be called before the process exits so that no buffered output is lost.
package stdio

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/fdstream-io/fdstream/pkg/filesystem"
	"github.com/fdstream-io/fdstream/pkg/stream"
)

var (
	// Stdin is the process-wide buffered standard input stream.
	Stdin *stream.BufferedReader
	// Stdout is the process-wide buffered standard output stream. It is
	// line-buffered when standard output is a terminal and fully buffered
	// otherwise, matching platform stdio behavior.
	Stdout *stream.BufferedWriter
	// Stderr is the process-wide standard error stream. It is always
	// unbuffered.
	Stderr *stream.BufferedWriter
)

// init constructs the standard streams around descriptors 0, 1, and 2.
func init() {
	Stdin = stream.NewBufferedReader(filesystem.NewInput(0))
	outputMode := stream.ModeFull
	if isatty.IsTerminal(os.Stdout.Fd()) {
		outputMode = stream.ModeLine
	}
	Stdout = stream.NewBufferedWriter(filesystem.NewOutput(1), outputMode)
	Stderr = stream.NewBufferedWriter(filesystem.NewOutput(2), stream.ModeNone)
}

// Flush flushes the standard output streams in order. It must be called
// before process termination.
func Flush() error {
	return stream.NewMultiFlusher(Stdout, Stderr).Flush()
}

// Perror writes the specified message, a separator, the platform's textual
// description of the specified error, and a newline to the unbuffered
// standard error stream. Write failures are necessarily discarded since
// there's nowhere left to report them.
func Perror(message string, err error) {
	_ = stream.Puts(Stderr, message+": "+err.Error()+"\n")
}
