package mediaurl

// Logger provides a pluggable logging interface for mediaurl operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Trace logs very fine-grained detail, such as skipped optional parameters.
	// Only logged when tracing is enabled.
	Trace(format string, args ...interface{})

	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode (or tracing) is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
