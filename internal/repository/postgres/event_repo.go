package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"techscene/internal/domain"

	"github.com/lib/pq"
)

// invalidTextRepresentation is raised when a path id is not a valid uuid.
const invalidTextRepresentation = "22P02"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `
	id, title, description,
	to_char(date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	venue, location, type, topics, host_name, registration_url, image_url, source,
	created_at, approval_status, approved_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var endNull, regNull, imageNull sql.NullString
	var approvedNull sql.NullTime
	var topics pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.Description,
		&e.Date, &e.StartTime, &endNull,
		&e.Venue, &e.Location, &e.Type, &topics, &e.HostName, &regNull, &imageNull, &e.Source,
		&e.CreatedAt, &e.ApprovalStatus, &approvedNull,
	)
	if err != nil {
		return nil, err
	}
	e.Topics = nonNil(topics)
	e.EndTime = stringPtr(endNull)
	e.RegistrationURL = stringPtr(regNull)
	e.ImageURL = stringPtr(imageNull)
	if approvedNull.Valid {
		e.ApprovedAt = &approvedNull.Time
	}
	return e, nil
}

func (r *eventRepository) ListApproved(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events
		WHERE approval_status = 'approved' AND approved_at IS NOT NULL
		ORDER BY date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		var perr *pq.Error
		if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &perr) && perr.Code == invalidTextRepresentation) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (
			title, description, date, start_time, end_time, venue, location, type, topics,
			host_name, registration_url, image_url, source, created_at, approval_status, approved_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.StartTime, nullString(e.EndTime),
		e.Venue, e.Location, string(e.Type), pq.Array(e.Topics),
		e.HostName, nullString(e.RegistrationURL), nullString(e.ImageURL), string(e.Source),
		e.CreatedAt, string(e.ApprovalStatus), nullTime(e.ApprovedAt),
	).Scan(&e.ID)
}

func (r *eventRepository) ExistsByRegistrationURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE registration_url = $1)`, url,
	).Scan(&exists)
	return exists, err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nonNil(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}
