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

type personService struct {
	personRepo     domain.PersonRepository
	catalog        domain.PersonCatalog
	metrics        *metrics.Metrics
	logger         *slog.Logger
	now            Clock
	contextTimeout time.Duration
}

// NewPersonService creates a PersonService. catalog may be nil to disable the demo fallback.
// Approved profiles are listed immediately; the approval buffer applies to events only.
func NewPersonService(logger *slog.Logger,
	personRepo domain.PersonRepository,
	catalog domain.PersonCatalog,
	m *metrics.Metrics,
	clock Clock,
	timeout time.Duration,
) domain.PersonService {
	return &personService{
		personRepo:     personRepo,
		catalog:        catalog,
		metrics:        m,
		logger:         logger,
		now:            clock,
		contextTimeout: timeout,
	}
}

func (s *personService) ListApprovedPeople(ctx context.Context) []*domain.Person {
	const op = "services.person.ListApprovedPeople"

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	people, err := s.personRepo.ListApproved(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing approved people failed, serving empty list", slog.String("op", op), sl.Err(err))
		s.metrics.StoreReadFailures.WithLabelValues(metrics.EntityPerson).Inc()
		return []*domain.Person{}
	}
	return people
}

func (s *personService) PublicPeople(ctx context.Context) ([]*domain.Person, bool) {
	people := s.ListApprovedPeople(ctx)
	if len(people) > 0 || s.catalog == nil {
		return people, false
	}
	s.metrics.FeedFallbacks.WithLabelValues(metrics.EntityPerson).Inc()
	return s.catalog.People(), true
}

func (s *personService) Directory(ctx context.Context, filter domain.PersonFilter) domain.PeopleDirectory {
	people, fallback := s.PublicPeople(ctx)
	matched := FilterPeople(people, filter)
	return domain.PeopleDirectory{
		Total:    len(matched),
		People:   matched,
		Facets:   PersonFacets(people),
		Fallback: fallback,
	}
}

func (s *personService) GetPublicPerson(ctx context.Context, id string) (*domain.Person, error) {
	const op = "services.person.GetPublicPerson"

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	person, err := s.personRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		if person.ApprovalStatus == domain.ApprovalApproved {
			return person, nil
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		s.logger.ErrorContext(ctx, "person lookup failed", slog.String("op", op), slog.String("person_id", id), sl.Err(err))
		s.metrics.StoreReadFailures.WithLabelValues(metrics.EntityPerson).Inc()
	}

	if s.catalog != nil {
		for _, p := range s.catalog.People() {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (s *personService) SubmitPerson(ctx context.Context, raw domain.PersonSubmission) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	person := NormalizePersonSubmission(raw, s.now())
	if err := s.personRepo.Create(ctx, person); err != nil {
		s.metrics.Submissions.WithLabelValues(metrics.EntityPerson, metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("submit person: %w", err)
	}
	s.metrics.Submissions.WithLabelValues(metrics.EntityPerson, metrics.OutcomeAccepted).Inc()
	s.logger.InfoContext(ctx, "profile submitted for review", slog.String("person_id", person.ID))
	return person, nil
}
