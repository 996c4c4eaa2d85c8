// ABOUTME: Public types for the RSS Reader API entities
// ABOUTME: Decoding tolerates missing optional keys by substituting documented defaults

package rssreader

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/burakozcn01/rssreader-client/pkg/utils/parse"
	utiltime "github.com/burakozcn01/rssreader-client/pkg/utils/time"
)

// Category represents a user-defined grouping of feeds
type Category struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	FeedCount int    `json:"feed_count"`
}

// FeedCategory is the partial category embedded in a feed
type FeedCategory struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Feed represents a subscribed RSS/Atom source. Optional string fields are
// empty when the API omits them; a missing and a null site_url are both
// treated as "no site URL".
type Feed struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	SiteURL           string        `json:"site_url"`
	FeedURL           string        `json:"feed_url"`
	Category          *FeedCategory `json:"category"`
	CheckedAt         string        `json:"checked_at"`
	Disabled          bool          `json:"disabled"`
	ParsingErrorCount int           `json:"parsing_error_count"`
	EntryCount        int           `json:"entry_count"`
}

// Media describes one media attachment of an entry
type Media struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Entry represents one article from an aggregated feed. Content and Media
// are populated only when the entry is fetched individually. Timestamp
// fields stay opaque strings; the remote API does not guarantee their
// format beyond published_at.
type Entry struct {
	ID          int64   `json:"id"`
	FeedID      int64   `json:"feed_id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
	Author      string  `json:"author"`
	Feed        *Feed   `json:"feed"`
	Content     string  `json:"content"`
	Media       []Media `json:"media"`
}

// PublishedTime parses the published timestamp as ISO-8601, treating a
// trailing "Z" as an explicit +00:00 offset. It reports false when the
// entry carries no parseable published timestamp.
func (e *Entry) PublishedTime() (time.Time, bool) {
	if e.PublishedAt == "" {
		return time.Time{}, false
	}
	return utiltime.ParseISOTime(e.PublishedAt)
}

// Pagination describes one page of an entry listing
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// defaultPagination returns the documented defaults for a listing whose
// response carried no pagination data.
func defaultPagination() Pagination {
	return Pagination{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		Pages:   1,
	}
}

// UnmarshalJSON decodes pagination data, substituting the documented
// defaults for missing keys
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var raw struct {
		Page    *int  `json:"page"`
		PerPage *int  `json:"per_page"`
		Total   *int  `json:"total"`
		Pages   *int  `json:"pages"`
		HasNext *bool `json:"has_next"`
		HasPrev *bool `json:"has_prev"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = defaultPagination()
	if raw.Page != nil {
		p.Page = *raw.Page
	}
	if raw.PerPage != nil {
		p.PerPage = *raw.PerPage
	}
	if raw.Total != nil {
		p.Total = *raw.Total
	}
	if raw.Pages != nil {
		p.Pages = *raw.Pages
	}
	if raw.HasNext != nil {
		p.HasNext = *raw.HasNext
	}
	if raw.HasPrev != nil {
		p.HasPrev = *raw.HasPrev
	}
	return nil
}

// SystemStatus represents the aggregator's system status, flattened from
// the nested counters the status endpoint returns
type SystemStatus struct {
	FeedCount      int
	CategoryCount  int
	EntryCount     int
	LatestChecked  string
	LatestEntry    string
	UpdateInterval int
}

// UnmarshalJSON flattens the nested feeds/categories/entries counters
func (s *SystemStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		Feeds struct {
			Total         int    `json:"total"`
			LatestChecked string `json:"latest_checked"`
		} `json:"feeds"`
		Categories struct {
			Total int `json:"total"`
		} `json:"categories"`
		Entries struct {
			Total  int    `json:"total"`
			Latest string `json:"latest"`
		} `json:"entries"`
		UpdateInterval int `json:"update_interval"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.FeedCount = raw.Feeds.Total
	s.CategoryCount = raw.Categories.Total
	s.EntryCount = raw.Entries.Total
	s.LatestChecked = raw.Feeds.LatestChecked
	s.LatestEntry = raw.Entries.Latest
	s.UpdateInterval = raw.UpdateInterval
	return nil
}

// TaskStatus represents the status of the aggregator's background
// feed-refresh tasks
type TaskStatus struct {
	FeedTasks       map[int64]bool
	AllFeedsRunning bool
}

// taskState is the per-key payload of the task_status response
type taskState struct {
	Running bool `json:"running"`
}

// taskKeyKind tags the variants a task_status key can decode into
type taskKeyKind int

const (
	taskKeyUnknown taskKeyKind = iota
	taskKeyGlobal
	taskKeyFeed
)

// classifyTaskKey decodes one task_status key into its variant. Keys that
// are neither "all_feeds" nor "feed_<integer>" are unknown and skipped.
func classifyTaskKey(key string) (taskKeyKind, int64) {
	if key == "all_feeds" {
		return taskKeyGlobal, 0
	}
	if rest, ok := strings.CutPrefix(key, "feed_"); ok {
		if id, ok := parse.Int64(rest); ok {
			return taskKeyFeed, id
		}
	}
	return taskKeyUnknown, 0
}

// UnmarshalJSON scans the arbitrary-keyed task_status object, folding each
// classified key into the final structure
func (t *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw map[string]taskState
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.FeedTasks = make(map[int64]bool, len(raw))
	t.AllFeedsRunning = false
	for key, state := range raw {
		switch kind, id := classifyTaskKey(key); kind {
		case taskKeyGlobal:
			t.AllFeedsRunning = state.Running
		case taskKeyFeed:
			t.FeedTasks[id] = state.Running
		}
	}
	return nil
}

// EntryList is one page of entries with its pagination metadata
type EntryList struct {
	Entries    []Entry
	Pagination Pagination
}

// UnmarshalJSON decodes an entry listing, substituting an empty entries
// slice and default pagination for missing keys
func (l *EntryList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Entries    []Entry     `json:"entries"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Entries = raw.Entries
	if l.Entries == nil {
		l.Entries = []Entry{}
	}
	if raw.Pagination != nil {
		l.Pagination = *raw.Pagination
	} else {
		l.Pagination = defaultPagination()
	}
	return nil
}

// CategoryEntryList is one page of a category's entries. Category is nil
// when the response carries no category data.
type CategoryEntryList struct {
	Category   *Category
	Entries    []Entry
	Pagination Pagination
}

// UnmarshalJSON decodes a category entry listing
func (l *CategoryEntryList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category *Category `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var list EntryList
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	l.Category = raw.Category
	l.Entries = list.Entries
	l.Pagination = list.Pagination
	return nil
}

// FeedEntryList is one page of a feed's entries. Feed is nil when the
// response carries no feed data.
type FeedEntryList struct {
	Feed       *Feed
	Entries    []Entry
	Pagination Pagination
}

// UnmarshalJSON decodes a feed entry listing
func (l *FeedEntryList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Feed *Feed `json:"feed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var list EntryList
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	l.Feed = raw.Feed
	l.Entries = list.Entries
	l.Pagination = list.Pagination
	return nil
}
