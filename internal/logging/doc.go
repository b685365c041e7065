// Package logging provides concrete implementations of the mediaurl.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
