// Package stream provides the buffered I/O layer used throughout fdstream:
// capability interfaces for readable and writable streams, convenience
// operations layered on the single-read and single-write primitives, and
// fixed-capacity buffered reader and writer implementations that amortize
// small transfers into fewer underlying operations.
//
// Readable streams are io.Reader implementations with a stricter contract:
// Read blocks until at least one byte is available or end-of-data is
// reached, and end-of-data is signaled by io.EOF rather than an error
// condition. Writable streams are io.Writer implementations whose Write
// either transfers all bytes or fails; callers never observe partial
// success.
//
// No stream type in this package provides internal locking. Concurrent use
// of a single stream instance must be serialized externally.
package stream
