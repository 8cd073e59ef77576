package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techscene/internal/domain"

	"github.com/lib/pq"
)

type personRepository struct {
	DB *sql.DB
}

func NewPersonRepository(db *sql.DB) domain.PersonRepository {
	return &personRepository{DB: db}
}

const personColumns = `
	id, name, bio, building, role, company, interests, twitter, linkedin, website,
	avatar_url, location, communities, open_to_connect, created_at, approval_status, approved_at`

func scanPerson(row rowScanner) (*domain.Person, error) {
	p := &domain.Person{}
	var bio, building, company, twitter, linkedin, website, avatar, location sql.NullString
	var interests, communities pq.StringArray
	var approvedNull sql.NullTime
	err := row.Scan(
		&p.ID, &p.Name, &bio, &building, &p.Role, &company, &interests, &twitter, &linkedin, &website,
		&avatar, &location, &communities, &p.OpenToConnect, &p.CreatedAt, &p.ApprovalStatus, &approvedNull,
	)
	if err != nil {
		return nil, err
	}
	p.Bio = stringPtr(bio)
	p.Building = stringPtr(building)
	p.Company = stringPtr(company)
	p.Twitter = stringPtr(twitter)
	p.LinkedIn = stringPtr(linkedin)
	p.Website = stringPtr(website)
	p.AvatarURL = stringPtr(avatar)
	p.Location = stringPtr(location)
	p.Interests = nonNil(interests)
	p.Communities = nonNil(communities)
	if approvedNull.Valid {
		p.ApprovedAt = &approvedNull.Time
	}
	return p, nil
}

func (r *personRepository) ListApproved(ctx context.Context) ([]*domain.Person, error) {
	query := `
		SELECT` + personColumns + `
		FROM people
		WHERE approval_status = 'approved'
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	people := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *personRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `
		SELECT` + personColumns + `
		FROM people
		WHERE id = $1
	`
	p, err := scanPerson(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		var perr *pq.Error
		if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &perr) && perr.Code == invalidTextRepresentation) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *personRepository) Create(ctx context.Context, p *domain.Person) error {
	query := `
		INSERT INTO people (
			name, bio, building, role, company, interests, twitter, linkedin, website,
			avatar_url, location, communities, open_to_connect, created_at, approval_status, approved_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.Name, nullString(p.Bio), nullString(p.Building), string(p.Role), nullString(p.Company),
		pq.Array(p.Interests), nullString(p.Twitter), nullString(p.LinkedIn), nullString(p.Website),
		nullString(p.AvatarURL), nullString(p.Location), pq.Array(p.Communities), p.OpenToConnect,
		p.CreatedAt, string(p.ApprovalStatus), nullTime(p.ApprovedAt),
	).Scan(&p.ID)
}
