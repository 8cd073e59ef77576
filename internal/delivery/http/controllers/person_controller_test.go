package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"techscene/internal/delivery/http/helpers"
	"techscene/internal/delivery/http/middleware"
	"techscene/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPersonID = "0f9a4c1e-2b7d-4e8a-9c3f-5d6e7f8a9b0c"

// fakePersonService implements domain.PersonService for handler tests.
type fakePersonService struct {
	dir            domain.PeopleDirectory
	person         *domain.Person
	getErr         error
	submitErr      error
	lastFilter     *domain.PersonFilter
	lastSubmission *domain.PersonSubmission
}

func (f *fakePersonService) ListApprovedPeople(ctx context.Context) []*domain.Person {
	return f.dir.People
}

func (f *fakePersonService) PublicPeople(ctx context.Context) ([]*domain.Person, bool) {
	return f.dir.People, f.dir.Fallback
}

func (f *fakePersonService) Directory(ctx context.Context, filter domain.PersonFilter) domain.PeopleDirectory {
	f.lastFilter = &filter
	return f.dir
}

func (f *fakePersonService) GetPublicPerson(ctx context.Context, id string) (*domain.Person, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.person, nil
}

func (f *fakePersonService) SubmitPerson(ctx context.Context, raw domain.PersonSubmission) (*domain.Person, error) {
	f.lastSubmission = &raw
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Person{ID: "p-created", Name: raw.Name, ApprovalStatus: domain.ApprovalPending}, nil
}

func TestPersonController_ListPeople(t *testing.T) {
	people := []*domain.Person{
		{ID: "p-1", Name: "Ada", Role: domain.RoleDeveloper, Interests: []string{"AI"}},
		{ID: "p-2", Name: "Grace", Role: domain.RoleFounder, Interests: []string{"Fintech"}},
		{ID: "p-3", Name: "Linus", Role: domain.RoleDeveloper, Interests: []string{}},
	}
	fake := &fakePersonService{dir: domain.PeopleDirectory{
		Total:  3,
		People: people,
		Facets: domain.PersonFacets{Roles: []domain.Role{domain.RoleDeveloper, domain.RoleFounder}, Interests: []string{"AI", "Fintech"}},
	}}
	req := httptest.NewRequest(http.MethodGet, "/people?q=ada&role=developer&interest=AI&page=2&page_size=2", nil)
	rr := httptest.NewRecorder()

	NewPersonController(testLogger, fake).ListPeople(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp ListPeopleResponse
	require.Nil(t, decodeEnvelope(t, rr, &resp))
	require.NotNil(t, fake.lastFilter)
	assert.Equal(t, domain.PersonFilter{Query: "ada", Role: "developer", Interest: "AI"}, *fake.lastFilter)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.People, 1)
	assert.Equal(t, "p-3", resp.People[0].ID)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 2, Total: 3, TotalPages: 2}, resp.Pagination)
	assert.Equal(t, []string{"AI", "Fintech"}, resp.Facets.Interests)
	assert.False(t, resp.Fallback)
}

func TestPersonController_ListPeople_PageOutOfRange(t *testing.T) {
	fake := &fakePersonService{dir: domain.PeopleDirectory{
		Total:  1,
		People: []*domain.Person{{ID: "p-1", Name: "Ada", Interests: []string{}}},
	}}

	for _, page := range []string{"184467440737095517", "9223372036854775807", "2"} {
		t.Run(page, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewPersonController(testLogger, fake).ListPeople(rr, httptest.NewRequest(http.MethodGet, "/people?page="+page, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp ListPeopleResponse
			require.Nil(t, decodeEnvelope(t, rr, &resp))
			assert.Empty(t, resp.People)
			assert.Equal(t, 1, resp.Total)
		})
	}
}

func TestPersonController_GetPerson(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		getErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "success", id: validPersonID, wantStatus: http.StatusOK},
		{name: "invalid id", id: "42", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "not found", id: validPersonID, getErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "unexpected error", id: validPersonID, getErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePersonService{
				person: &domain.Person{ID: validPersonID, Name: "Ada", Interests: []string{}},
				getErr: tt.getErr,
			}
			req := httptest.NewRequest(http.MethodGet, "/people/"+tt.id, nil)
			req.SetPathValue("personID", tt.id)
			rr := httptest.NewRecorder()

			NewPersonController(testLogger, fake).GetPerson(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var person domain.Person
			apiErr := decodeEnvelope(t, rr, &person)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, "Ada", person.Name)
		})
	}
}

func TestPersonController_SubmitPerson(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		noSession      bool
		submitErr      error
		wantStatus     int
		wantBodySubstr string
		checkSubmitted func(t *testing.T, raw *domain.PersonSubmission)
	}{
		{
			name:       "success with opt-out",
			body:       `{"name":"Ada","role":"developer","interests":"AI, Compilers","open_to_connect":false}`,
			wantStatus: http.StatusCreated,
			checkSubmitted: func(t *testing.T, raw *domain.PersonSubmission) {
				assert.Equal(t, "AI, Compilers", raw.Interests)
				require.NotNil(t, raw.OpenToConnect)
				assert.False(t, *raw.OpenToConnect)
			},
		},
		{
			name:       "open_to_connect omitted",
			body:       `{"name":"Ada","role":"developer","interests":"AI"}`,
			wantStatus: http.StatusCreated,
			checkSubmitted: func(t *testing.T, raw *domain.PersonSubmission) {
				assert.Nil(t, raw.OpenToConnect)
			},
		},
		{
			name:           "no session",
			body:           `{"name":"Ada","role":"developer","interests":"AI"}`,
			noSession:      true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "sign in required",
		},
		{
			name:           "missing fields",
			body:           `{"bio":"hi"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required; interests is required; role is required",
		},
		{
			name:           "bad role and urls",
			body:           `{"name":"Ada","role":"wizard","interests":"AI","linkedin":"linkedin.com/in/ada","avatar_url":"javascript:alert(1)"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "role must be one of founder, developer, designer, investor, operator, other; linkedin must be an http(s) URL; avatar_url must be an http(s) URL",
		},
		{
			name:           "store failure is generic",
			body:           `{"name":"Ada","role":"developer","interests":"AI"}`,
			submitErr:      errors.New("pq: relation \"people\" does not exist"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: helpers.MsgSubmitFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePersonService{submitErr: tt.submitErr}
			req := httptest.NewRequest(http.MethodPost, "/people", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if !tt.noSession {
				req = req.WithContext(middleware.SetSession(req.Context(), &domain.Session{Subject: "user_123"}))
			}
			rr := httptest.NewRecorder()

			NewPersonController(testLogger, fake).SubmitPerson(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var person domain.Person
			apiErr := decodeEnvelope(t, rr, &person)
			if tt.wantStatus != http.StatusCreated {
				require.NotNil(t, apiErr)
				assert.Contains(t, apiErr.Message, tt.wantBodySubstr)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, "p-created", person.ID)
			require.NotNil(t, fake.lastSubmission)
			tt.checkSubmitted(t, fake.lastSubmission)
		})
	}
}
