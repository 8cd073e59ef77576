package ical

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	ics "github.com/arran4/golang-ical"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
)

// maxFeedBytes caps the size of a downloaded calendar.
const maxFeedBytes = 10 << 20

type httpFetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPFetcher returns a CalendarFetcher that downloads ICS feeds over HTTP.
func NewHTTPFetcher(client *http.Client, logger *slog.Logger) domain.CalendarFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, logger: logger}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]domain.FeedEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/calendar")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar feed returned status: %d", resp.StatusCode)
	}
	return f.parse(io.LimitReader(resp.Body, maxFeedBytes))
}

func (f *httpFetcher) parse(r io.Reader) ([]domain.FeedEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	events := make([]domain.FeedEvent, 0)
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			// One bad entry does not spoil the feed.
			f.logger.Warn("skipping calendar entry", slog.String("uid", ev.UID), sl.Err(err))
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ics.VEvent) (domain.FeedEvent, error) {
	ev := domain.FeedEvent{
		UID:         propValue(ve, ics.ComponentPropertyUniqueId),
		Summary:     propValue(ve, ics.ComponentPropertySummary),
		Description: propValue(ve, ics.ComponentPropertyDescription),
		Location:    propValue(ve, ics.ComponentPropertyLocation),
		URL:         propValue(ve, ics.ComponentPropertyUrl),
	}
	if ev.Summary == "" {
		return ev, errors.New("missing SUMMARY")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, fmt.Errorf("invalid DTSTART: %w", err)
	}
	ev.Start = start
	// DTEND is optional.
	if end, err := ve.GetEndAt(); err == nil {
		ev.End = end
	}

	if dt := ve.GetProperty(ics.ComponentPropertyDtStart); dt != nil {
		if vs, ok := dt.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			ev.AllDay = true
		}
		if !strings.Contains(dt.Value, "T") {
			ev.AllDay = true
		}
	}
	return ev, nil
}

func propValue(ve *ics.VEvent, prop ics.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}
