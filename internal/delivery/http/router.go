package http

import (
	"log/slog"
	"net/http"

	"techscene/internal/delivery/http/controllers"
	"techscene/internal/delivery/http/middleware"
	"techscene/internal/domain"
	"techscene/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events  *controllers.EventController
	People  *controllers.PersonController
	Session *controllers.SessionController
	Health  *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes and wraps it in the
// middleware chain: CORS, then request logging, then metrics.
func NewRouter(c Controllers, verifier domain.SessionVerifier, logger *slog.Logger, m *metrics.Metrics, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(verifier, logger)

	// Events
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEvent)
	mux.HandleFunc("POST /events", requireSession(c.Events.SubmitEvent))

	// People
	mux.HandleFunc("GET /people", c.People.ListPeople)
	mux.HandleFunc("GET /people/{personID}", c.People.GetPerson)
	mux.HandleFunc("POST /people", requireSession(c.People.SubmitPerson))

	// Auth
	mux.HandleFunc("GET /auth/session", c.Session.Status)
	mux.HandleFunc("GET /auth/sign-in", c.Session.SignIn)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", m.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.CORS(allowedOrigins, middleware.LoggingMiddleware(logger, middleware.Metrics(m, mux)))
}
