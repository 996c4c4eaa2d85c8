// ABOUTME: Default implementations for client dependencies
// ABOUTME: Provides factory functions for the default transport and loggers

package rssreader

import (
	"github.com/burakozcn01/rssreader-client/core/interfaces"
	httpInfra "github.com/burakozcn01/rssreader-client/infrastructure/http/standard"
	loggerInfra "github.com/burakozcn01/rssreader-client/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates the default HTTP transport with the default timeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout)
}

// DefaultLogger creates the default logrus-backed logger at warn level
func DefaultLogger() interfaces.Logger {
	return loggerInfra.New()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// defaultConfig returns the default client configuration. The HTTP
// transport is created after options are applied so WithTimeout can take
// effect.
func defaultConfig() Config {
	return Config{
		Logger:    DefaultLogger(),
		UserAgent: defaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}
