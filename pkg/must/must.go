// Package must provides best-effort cleanup helpers for operations whose
// failures can't meaningfully be propagated (typically in defer statements),
// logging those failures instead of discarding them.
package must

import (
	"io"

	"github.com/fdstream-io/fdstream/pkg/logging"
	"github.com/fdstream-io/fdstream/pkg/stream"
)

// Close closes the closer, logging any failure.
func Close(closer io.Closer, logger *logging.Logger) {
	if err := closer.Close(); err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// Flush flushes the flusher, logging any failure.
func Flush(flusher stream.Flusher, logger *logging.Logger) {
	if err := flusher.Flush(); err != nil {
		logger.Warnf("Unable to flush: %s", err.Error())
	}
}
