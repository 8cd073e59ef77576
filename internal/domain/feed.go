package domain

import (
	"context"
	"time"
)

// FeedEvent is a single entry read from an external calendar feed.
type FeedEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	URL         string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// CalendarFetcher fetches and parses an ICS calendar feed.
type CalendarFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedEvent, error)
}

// FeedSource describes one calendar feed to import and the defaults applied to its entries.
type FeedSource struct {
	Name     string
	URL      string
	Source   EventSource
	Type     EventType
	Topics   []string
	HostName string
}

// ImportResult summarises one feed import run.
type ImportResult struct {
	Feed     string `json:"feed"`
	Fetched  int    `json:"fetched"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

// FeedImporter turns calendar feed entries into pending event submissions.
type FeedImporter interface {
	Import(ctx context.Context, feed FeedSource) (ImportResult, error)
}
