// ABOUTME: Logger adapter built on the standard library log package
// ABOUTME: Writes leveled lines with fields appended as compact JSON

package standard

import (
	"encoding/json"
	"log"
	"os"
)

// StandardLogger implements the Logger interface without third-party
// dependencies. Debug, info, and warn lines go to stdout, errors to
// stderr. Selected with LOGGER_TYPE=standard; logrus is the default
// backend.
type StandardLogger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// NewStandardLogger creates a logger with level-prefixed outputs
func NewStandardLogger() *StandardLogger {
	return &StandardLogger{
		debug: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		info:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		warn:  log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		error: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.write(l.debug, msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.write(l.info, msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.warn, msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.write(l.error, msg, fields)
}

// write emits one line, appending fields as compact JSON when present
func (l *StandardLogger) write(dst *log.Logger, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		dst.Println(msg)
		return
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		dst.Printf("%s (unencodable fields: %v)", msg, err)
		return
	}

	dst.Printf("%s %s", msg, encoded)
}
