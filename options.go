// ABOUTME: Configuration options for the RSS Reader client
// ABOUTME: Provides functional options pattern for flexible client configuration

package rssreader

import (
	"time"

	"github.com/burakozcn01/rssreader-client/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP transport implementation
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return &Error{Message: "HTTP client cannot be nil"}
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return &Error{Message: "logger cannot be nil"}
		}
		c.Logger = logger
		return nil
	}
}

// WithTimeout sets the timeout of the default HTTP transport. It has no
// effect when a custom transport is supplied via WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return &Error{Message: "timeout must be positive"}
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent on every request
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		if userAgent == "" {
			return &Error{Message: "user agent cannot be empty"}
		}
		c.UserAgent = userAgent
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// FeedOption is a functional option for feed listings
type FeedOption func(*feedOptions)

// feedOptions holds the query filters of a feed listing
type feedOptions struct {
	categoryID int64
}

// WithFeedCategory restricts a feed listing to one category. Non-positive
// IDs leave the listing unfiltered.
func WithFeedCategory(categoryID int64) FeedOption {
	return func(o *feedOptions) {
		o.categoryID = categoryID
	}
}

// EntryOption is a functional option for entry listings
type EntryOption func(*entryOptions)

// entryOptions holds the pagination and query filters of an entry listing
type entryOptions struct {
	page       int
	perPage    int
	categoryID int64
	feedID     int64
}

// defaultEntryOptions returns the default entry listing options
func defaultEntryOptions() entryOptions {
	return entryOptions{
		page:    DefaultPage,
		perPage: DefaultPerPage,
	}
}

// WithPagination sets the page window of an entry listing. Non-positive
// values fall back to the defaults.
func WithPagination(page, perPage int) EntryOption {
	return func(o *entryOptions) {
		if page < 1 {
			page = DefaultPage
		}
		if perPage < 1 {
			perPage = DefaultPerPage
		}
		o.page = page
		o.perPage = perPage
	}
}

// WithCategory restricts an entry listing to one category. Only meaningful
// for Entries; the per-category and per-feed listings already carry their
// filter in the endpoint path.
func WithCategory(categoryID int64) EntryOption {
	return func(o *entryOptions) {
		o.categoryID = categoryID
	}
}

// WithFeed restricts an entry listing to one feed. Only meaningful for
// Entries.
func WithFeed(feedID int64) EntryOption {
	return func(o *entryOptions) {
		o.feedID = feedID
	}
}
