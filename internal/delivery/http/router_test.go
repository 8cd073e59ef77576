package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techscene/internal/delivery/http/controllers"
	"techscene/internal/domain"
	"techscene/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventService struct{}

func (stubEventService) ListApprovedEvents(ctx context.Context) []*domain.Event { return nil }
func (stubEventService) PublicEvents(ctx context.Context) ([]*domain.Event, bool) {
	return nil, false
}
func (stubEventService) Feed(ctx context.Context, tab domain.EventTab, f domain.EventFilter) domain.EventFeed {
	return domain.EventFeed{Events: []*domain.Event{}}
}
func (stubEventService) GetPublicEvent(ctx context.Context, id string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}
func (stubEventService) SubmitEvent(ctx context.Context, raw domain.EventSubmission) (*domain.Event, error) {
	return &domain.Event{ID: "ev-1"}, nil
}

type stubPersonService struct{}

func (stubPersonService) ListApprovedPeople(ctx context.Context) []*domain.Person { return nil }
func (stubPersonService) PublicPeople(ctx context.Context) ([]*domain.Person, bool) {
	return nil, false
}
func (stubPersonService) Directory(ctx context.Context, f domain.PersonFilter) domain.PeopleDirectory {
	return domain.PeopleDirectory{People: []*domain.Person{}}
}
func (stubPersonService) GetPublicPerson(ctx context.Context, id string) (*domain.Person, error) {
	return nil, domain.ErrNotFound
}
func (stubPersonService) SubmitPerson(ctx context.Context, raw domain.PersonSubmission) (*domain.Person, error) {
	return &domain.Person{ID: "p-1"}, nil
}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*domain.Session, error) {
	if token == "good" {
		return &domain.Session{Subject: "user_1"}, nil
	}
	return nil, domain.ErrUnauthenticated
}

type stubPinger struct{}

func (stubPinger) PingContext(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	verifier := stubVerifier{}
	h := NewRouter(Controllers{
		Events:  controllers.NewEventController(logger, stubEventService{}),
		People:  controllers.NewPersonController(logger, stubPersonService{}),
		Session: controllers.NewSessionController(logger, verifier, "https://accounts.example.com/sign-in"),
		Health:  controllers.NewHealthController(logger, stubPinger{}),
	}, verifier, logger, m, []string{"https://techscene.example"})
	return h, m
}

func TestRouter_Routes(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{name: "list events", method: http.MethodGet, path: "/events", wantStatus: http.StatusOK},
		{name: "event detail missing", method: http.MethodGet, path: "/events/7b0c7f38-5f0e-4c55-9a2e-1f6a3b0e9d41", wantStatus: http.StatusNotFound},
		{name: "submit event anonymous", method: http.MethodPost, path: "/events", body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "submit event bad token", method: http.MethodPost, path: "/events", body: `{}`, token: "stale", wantStatus: http.StatusUnauthorized},
		{name: "submit event signed in reaches validation", method: http.MethodPost, path: "/events", body: `{}`, token: "good", wantStatus: http.StatusBadRequest},
		{name: "list people", method: http.MethodGet, path: "/people", wantStatus: http.StatusOK},
		{name: "submit person signed in", method: http.MethodPost, path: "/people", body: `{"name":"Ada","role":"other","interests":"AI"}`, token: "good", wantStatus: http.StatusCreated},
		{name: "session status", method: http.MethodGet, path: "/auth/session", wantStatus: http.StatusOK},
		{name: "sign in redirect", method: http.MethodGet, path: "/auth/sign-in", wantStatus: http.StatusFound},
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "method not allowed", method: http.MethodDelete, path: "/events", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/tickets", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouter_MetricsUseRoutePattern(t *testing.T) {
	h, _ := newTestRouter(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/people?q=ada", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `techscene_http_requests_total{method="GET",route="GET /people",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched",status="404"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/events", nil)
	req.Header.Set("Origin", "https://techscene.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://techscene.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
