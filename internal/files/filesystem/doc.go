// Package filesystem provides a small read/write filesystem abstraction.
//
// The pickle store persists gzip files through this interface so tests can
// run against memory instead of disk.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
