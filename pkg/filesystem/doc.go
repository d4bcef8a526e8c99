// Package filesystem provides raw, descriptor-level input and output streams
// over POSIX file descriptors, together with the open-intent configuration
// used to construct them.
//
// Each stream owns its descriptor exclusively and releases it exactly once,
// on Close. Read and write failures carry the originating platform error
// code; end-of-data on read is signaled by io.EOF and is not an error.
package filesystem
