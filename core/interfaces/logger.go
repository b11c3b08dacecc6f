package interfaces

// Logger defines the interface for structured logging throughout the
// application, keeping the core independent of any logging library.
//
// Example usage:
//
//	logger.Info("Enriching result", map[string]interface{}{
//		"url":    "https://example.com/article",
//		"engine": "duckduckgo",
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
