package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
	"techscene/internal/metrics"
)

type feedImporter struct {
	fetcher   domain.CalendarFetcher
	eventRepo domain.EventRepository
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       Clock
}

// NewFeedImporter creates a FeedImporter that writes feed entries as pending events.
func NewFeedImporter(logger *slog.Logger, fetcher domain.CalendarFetcher, eventRepo domain.EventRepository, m *metrics.Metrics, clock Clock) domain.FeedImporter {
	return &feedImporter{
		fetcher:   fetcher,
		eventRepo: eventRepo,
		metrics:   m,
		logger:    logger,
		now:       clock,
	}
}

// Import fetches one feed and queues every upcoming entry that is not already stored.
// Entries are attempted once; a failed insert is counted and the run continues.
func (i *feedImporter) Import(ctx context.Context, feed domain.FeedSource) (domain.ImportResult, error) {
	const op = "services.importer.Import"
	log := i.logger.With(slog.String("op", op), slog.String("feed", feed.Name))

	result := domain.ImportResult{Feed: feed.Name}
	entries, err := i.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	result.Fetched = len(entries)

	now := i.now()
	for _, entry := range entries {
		if entryEnded(entry, now) {
			result.Skipped++
			continue
		}
		if entry.URL != "" {
			exists, err := i.eventRepo.ExistsByRegistrationURL(ctx, entry.URL)
			if err != nil {
				log.Error("duplicate check failed", slog.String("uid", entry.UID), sl.Err(err))
				result.Failed++
				continue
			}
			if exists {
				result.Skipped++
				i.metrics.Submissions.WithLabelValues(metrics.EntityEvent, metrics.OutcomeSkipped).Inc()
				continue
			}
		}

		event := NormalizeEventSubmission(submissionFromFeed(feed, entry, now.Location()), now)
		if err := i.eventRepo.Create(ctx, event); err != nil {
			log.Error("insert imported event failed", slog.String("uid", entry.UID), sl.Err(err))
			i.metrics.Submissions.WithLabelValues(metrics.EntityEvent, metrics.OutcomeFailed).Inc()
			result.Failed++
			continue
		}
		i.metrics.Submissions.WithLabelValues(metrics.EntityEvent, metrics.OutcomeAccepted).Inc()
		result.Imported++
	}

	log.Info("feed import finished",
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

func entryEnded(entry domain.FeedEvent, now time.Time) bool {
	if entry.End.IsZero() {
		return entry.Start.Before(now)
	}
	return entry.End.Before(now)
}

// submissionFromFeed maps a calendar entry onto the event form, applying the feed's defaults.
// All-day entries span the whole day; an end on a later date is dropped.
func submissionFromFeed(feed domain.FeedSource, entry domain.FeedEvent, loc *time.Location) domain.EventSubmission {
	start := entry.Start.In(loc)
	raw := domain.EventSubmission{
		Title:           entry.Summary,
		Description:     entry.Description,
		Date:            start.Format(eventDateLayout),
		StartTime:       start.Format(eventTimeLayout),
		Venue:           venueOf(entry.Location),
		Location:        entry.Location,
		Type:            string(feed.Type),
		Topics:          strings.Join(feed.Topics, ","),
		HostName:        feed.HostName,
		RegistrationURL: entry.URL,
		Source:          string(feed.Source),
	}
	if raw.HostName == "" {
		raw.HostName = feed.Name
	}
	switch {
	case entry.AllDay:
		// All-day dates are floating and must not shift across midnight.
		raw.Date = entry.Start.Format(eventDateLayout)
		raw.StartTime = "00:00"
		raw.EndTime = "23:59"
	case !entry.End.IsZero():
		end := entry.End.In(loc)
		if end.Format(eventDateLayout) == raw.Date {
			raw.EndTime = end.Format(eventTimeLayout)
		}
	}
	return raw
}

// venueOf takes the first comma-separated segment of a free-text location.
func venueOf(location string) string {
	venue, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(venue)
}
