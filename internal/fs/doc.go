// Package fs provides the concrete fsh.Filesystem implementations.
//
// Available implementations:
//   - OSFilesystem: backed by real OS calls, used by the interactive shell
//   - MemoryFilesystem: an in-memory tree, used to test the dispatcher
//     without touching the disk
//
// Both carry their own working directory, so tests can run with independent,
// isolated working directories instead of sharing the process-wide one.
package fs
