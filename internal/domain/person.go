package domain

import (
	"context"
	"fmt"
	"time"
)

// Role is what a community member primarily does.
type Role string

const (
	RoleFounder   Role = "founder"
	RoleDeveloper Role = "developer"
	RoleDesigner  Role = "designer"
	RoleInvestor  Role = "investor"
	RoleOperator  Role = "operator"
	RoleOther     Role = "other"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFounder, RoleDeveloper, RoleDesigner, RoleInvestor, RoleOperator, RoleOther:
		return true
	}
	return false
}

// ParseRole converts user or stored input into a Role.
func ParseRole(v string) (Role, error) {
	r := Role(v)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, v)
	}
	return r, nil
}

// Person is a community member's public profile.
// swagger:model Person
type Person struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Bio            *string        `json:"bio"`
	Building       *string        `json:"building"`
	Role           Role           `json:"role"`
	Company        *string        `json:"company"`
	Interests      []string       `json:"interests"`
	Twitter        *string        `json:"twitter"`
	LinkedIn       *string        `json:"linkedin"`
	Website        *string        `json:"website"`
	AvatarURL      *string        `json:"avatar_url"`
	Location       *string        `json:"location"`
	Communities    []string       `json:"communities"`
	OpenToConnect  bool           `json:"open_to_connect"`
	CreatedAt      time.Time      `json:"created_at"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	ApprovedAt     *time.Time     `json:"approved_at"`
}

// HasInterest reports whether interest is one of the person's interests.
func (p *Person) HasInterest(interest string) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// PersonSubmission is the raw profile form. OpenToConnect defaults to true when omitted.
type PersonSubmission struct {
	Name           string     `json:"name"`
	Bio            string     `json:"bio"`
	Building       string     `json:"building"`
	Role           string     `json:"role"`
	Company        string     `json:"company"`
	Interests      string     `json:"interests"`
	Twitter        string     `json:"twitter"`
	LinkedIn       string     `json:"linkedin"`
	Website        string     `json:"website"`
	AvatarURL      string     `json:"avatar_url"`
	Location       string     `json:"location"`
	Communities    string     `json:"communities"`
	OpenToConnect  *bool      `json:"open_to_connect"`
	ApprovalStatus string     `json:"approval_status,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
}

// PersonFilter holds the user-selected predicates for narrowing a people list.
// Empty or "all" values impose no constraint.
type PersonFilter struct {
	Query    string
	Role     string
	Interest string
}

// PersonFacets are the distinct filter values present in a people list.
type PersonFacets struct {
	Roles     []Role   `json:"roles"`
	Interests []string `json:"interests"`
}

// PersonRepository defines the interface for profile storage
type PersonRepository interface {
	// ListApproved returns approved profiles, newest first.
	ListApproved(ctx context.Context) ([]*Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	Create(ctx context.Context, person *Person) error
}

// PersonCatalog is a static profile dataset used when the store yields nothing.
type PersonCatalog interface {
	People() []*Person
}

// PeopleDirectory is the public people listing after filtering.
type PeopleDirectory struct {
	Total    int          `json:"total"`
	People   []*Person    `json:"people"`
	Facets   PersonFacets `json:"facets"`
	Fallback bool         `json:"fallback"`
}

// PersonService defines the business logic for listing and submitting profiles.
type PersonService interface {
	// ListApprovedPeople returns approved profiles; store failures yield an empty list.
	ListApprovedPeople(ctx context.Context) []*Person
	PublicPeople(ctx context.Context) ([]*Person, bool)
	Directory(ctx context.Context, filter PersonFilter) PeopleDirectory
	GetPublicPerson(ctx context.Context, id string) (*Person, error)
	SubmitPerson(ctx context.Context, raw PersonSubmission) (*Person, error)
}
