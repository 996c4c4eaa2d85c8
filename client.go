// ABOUTME: Main client for the RSS Reader API with one method per remote operation
// ABOUTME: Composes the request executor with the typed decoders

package rssreader

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/burakozcn01/rssreader-client/core/interfaces"
	httpInfra "github.com/burakozcn01/rssreader-client/infrastructure/http/standard"
)

// Client is a client for the RSS Reader API. Its configuration is immutable
// after construction, so a single instance is safe to reuse across
// concurrent calls.
type Client struct {
	config  Config
	apiURL  string
	headers map[string]string
}

// Config holds the configuration for the client
type Config struct {
	// BaseURL of the remote API, without the /api suffix
	BaseURL string

	// APIKey sent as the X-API-Key header on every request
	APIKey string

	// HTTPClient is the transport used for requests
	HTTPClient interfaces.HTTPClient

	// Logger receives diagnostic output
	Logger interfaces.Logger

	// UserAgent identifies the client on outgoing requests
	UserAgent string

	// Timeout of the default transport
	Timeout time.Duration
}

// NewClient creates a new RSS Reader client for the API at baseURL,
// authenticating with apiKey. Trailing slashes on baseURL are stripped.
func NewClient(baseURL, apiKey string, options ...Option) (*Client, error) {
	config := defaultConfig()
	config.BaseURL = strings.TrimRight(baseURL, "/")
	config.APIKey = apiKey

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.HTTPClient == nil {
		config.HTTPClient = httpInfra.NewStandardHTTPClient(config.Timeout)
	}

	return &Client{
		config: config,
		apiURL: config.BaseURL + "/api",
		headers: map[string]string{
			"X-API-Key":    config.APIKey,
			"Content-Type": "application/json",
			"User-Agent":   config.UserAgent,
		},
	}, nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.BaseURL == "" {
		return &Error{Message: "base URL is required"}
	}
	if config.Logger == nil {
		return &Error{Message: "logger is required"}
	}
	return nil
}

// Categories returns all categories
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	raw, err := c.request(ctx, http.MethodGet, "categories", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := decode(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Feeds returns all feeds, optionally filtered by category
func (c *Client) Feeds(ctx context.Context, opts ...FeedOption) ([]Feed, error) {
	options := feedOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	query := url.Values{}
	if options.categoryID > 0 {
		query.Set("category_id", strconv.FormatInt(options.categoryID, 10))
	}

	raw, err := c.request(ctx, http.MethodGet, "feeds", query, nil)
	if err != nil {
		return nil, err
	}

	var feeds []Feed
	if err := decode(raw, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// Entries returns one page of entries, optionally filtered by category or
// feed. Unset filters are omitted from the outgoing query entirely.
func (c *Client) Entries(ctx context.Context, opts ...EntryOption) (*EntryList, error) {
	options := defaultEntryOptions()
	for _, opt := range opts {
		opt(&options)
	}

	query := pageQuery(options)
	if options.categoryID > 0 {
		query.Set("category_id", strconv.FormatInt(options.categoryID, 10))
	}
	if options.feedID > 0 {
		query.Set("feed_id", strconv.FormatInt(options.feedID, 10))
	}

	raw, err := c.request(ctx, http.MethodGet, "entries", query, nil)
	if err != nil {
		return nil, err
	}

	var list EntryList
	if err := decode(raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CategoryEntries returns one page of a category's entries together with
// the category data when the response carries it
func (c *Client) CategoryEntries(ctx context.Context, categoryID int64, opts ...EntryOption) (*CategoryEntryList, error) {
	options := defaultEntryOptions()
	for _, opt := range opts {
		opt(&options)
	}

	endpoint := fmt.Sprintf("categories/%d/entries", categoryID)
	raw, err := c.request(ctx, http.MethodGet, endpoint, pageQuery(options), nil)
	if err != nil {
		return nil, err
	}

	var list CategoryEntryList
	if err := decode(raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FeedEntries returns one page of a feed's entries together with the feed
// data when the response carries it
func (c *Client) FeedEntries(ctx context.Context, feedID int64, opts ...EntryOption) (*FeedEntryList, error) {
	options := defaultEntryOptions()
	for _, opt := range opts {
		opt(&options)
	}

	endpoint := fmt.Sprintf("feeds/%d/entries", feedID)
	raw, err := c.request(ctx, http.MethodGet, endpoint, pageQuery(options), nil)
	if err != nil {
		return nil, err
	}

	var list FeedEntryList
	if err := decode(raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Entry returns a single entry with its content and media populated
func (c *Client) Entry(ctx context.Context, entryID int64) (*Entry, error) {
	endpoint := fmt.Sprintf("entries/%d", entryID)
	raw, err := c.request(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := decode(raw, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Status returns the aggregator's system status
func (c *Client) Status(ctx context.Context) (*SystemStatus, error) {
	raw, err := c.request(ctx, http.MethodGet, "status", nil, nil)
	if err != nil {
		return nil, err
	}

	var status SystemStatus
	if err := decode(raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// TaskStatus returns the status of the aggregator's background tasks
func (c *Client) TaskStatus(ctx context.Context) (*TaskStatus, error) {
	raw, err := c.request(ctx, http.MethodGet, "task_status", nil, nil)
	if err != nil {
		return nil, err
	}

	var status TaskStatus
	if err := decode(raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// pageQuery builds the pagination query every entry listing sends
func pageQuery(options entryOptions) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(options.page))
	query.Set("per_page", strconv.Itoa(options.perPage))
	return query
}
