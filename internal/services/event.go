package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
	"techscene/internal/metrics"
)

// Clock returns the current time in the directory's display timezone.
type Clock func() time.Time

type eventService struct {
	eventRepo      domain.EventRepository
	catalog        domain.EventCatalog
	metrics        *metrics.Metrics
	logger         *slog.Logger
	now            Clock
	contextTimeout time.Duration
}

// NewEventService creates an EventService. catalog may be nil to disable the demo fallback.
func NewEventService(logger *slog.Logger,
	eventRepo domain.EventRepository,
	catalog domain.EventCatalog,
	m *metrics.Metrics,
	clock Clock,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		catalog:        catalog,
		metrics:        m,
		logger:         logger,
		now:            clock,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListApprovedEvents(ctx context.Context) []*domain.Event {
	const op = "services.event.ListApprovedEvents"

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListApproved(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing approved events failed, serving empty list", slog.String("op", op), sl.Err(err))
		s.metrics.StoreReadFailures.WithLabelValues(metrics.EntityEvent).Inc()
		return []*domain.Event{}
	}

	now := s.now()
	visible := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if IsPublishEligible(e.ApprovedAt, now) {
			visible = append(visible, e)
		}
	}
	return visible
}

func (s *eventService) PublicEvents(ctx context.Context) ([]*domain.Event, bool) {
	events := s.ListApprovedEvents(ctx)
	if len(events) > 0 || s.catalog == nil {
		return events, false
	}
	s.metrics.FeedFallbacks.WithLabelValues(metrics.EntityEvent).Inc()
	return s.catalog.Events(), true
}

func (s *eventService) Feed(ctx context.Context, tab domain.EventTab, filter domain.EventFilter) domain.EventFeed {
	events, fallback := s.PublicEvents(ctx)
	part := Partition(events, s.now())

	selected := part.Upcoming
	if tab == domain.EventTabPast {
		selected = part.Past
	}
	return domain.EventFeed{
		UpcomingCount: len(part.Upcoming),
		PastCount:     len(part.Past),
		Events:        FilterEvents(selected, filter),
		Facets:        EventFacets(events),
		Fallback:      fallback,
	}
}

func (s *eventService) GetPublicEvent(ctx context.Context, id string) (*domain.Event, error) {
	const op = "services.event.GetPublicEvent"

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		if event.ApprovalStatus == domain.ApprovalApproved && IsPublishEligible(event.ApprovedAt, s.now()) {
			return event, nil
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		s.logger.ErrorContext(ctx, "event lookup failed", slog.String("op", op), slog.String("event_id", id), sl.Err(err))
		s.metrics.StoreReadFailures.WithLabelValues(metrics.EntityEvent).Inc()
	}

	if s.catalog != nil {
		for _, e := range s.catalog.Events() {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (s *eventService) SubmitEvent(ctx context.Context, raw domain.EventSubmission) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := NormalizeEventSubmission(raw, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.metrics.Submissions.WithLabelValues(metrics.EntityEvent, metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("submit event: %w", err)
	}
	s.metrics.Submissions.WithLabelValues(metrics.EntityEvent, metrics.OutcomeAccepted).Inc()
	s.logger.InfoContext(ctx, "event submitted for review", slog.String("event_id", event.ID), slog.String("source", string(event.Source)))
	return event, nil
}
