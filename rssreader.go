// ABOUTME: Package documentation and default constants for the RSS Reader client
// ABOUTME: The library is a thin typed mapping layer over the remote JSON API

// Package rssreader provides a typed client for a remote RSS-aggregation
// HTTP API: categories, feeds, entries, pagination, system status and
// background-task status. The client authenticates with a static API key,
// performs one blocking request per call and translates failures into a
// small typed error hierarchy. It never retries, caches or mutates remote
// state on its own.
package rssreader

import "time"

const (
	// DefaultPage is the page number used when a listing requests none.
	DefaultPage = 1

	// DefaultPerPage is the page size used when a listing requests none.
	DefaultPerPage = 50

	// DefaultTimeout is the HTTP timeout of the default transport.
	DefaultTimeout = 30 * time.Second

	// defaultUserAgent identifies the client on outgoing requests.
	defaultUserAgent = "RSSReader-Client/1.0"
)
