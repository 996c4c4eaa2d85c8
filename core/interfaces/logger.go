package interfaces

// Logger defines the interface for logging inside the client. The
// abstraction keeps the library decoupled from any particular logging
// backend (logrus, zap, etc.).
//
// Example usage:
//
//	logger.Debug("api request", map[string]interface{}{
//		"method":   "GET",
//		"endpoint": "entries",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
