package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"techscene/internal/delivery/http/helpers"
	"techscene/internal/delivery/http/middleware"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// SubmitEventRequest is the request body for POST /events. Topics is a comma-separated list.
// approval_status and approved_at are accepted for compatibility and always ignored.
type SubmitEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	Venue           string     `json:"venue"`
	Location        string     `json:"location"`
	Type            string     `json:"type"`
	Topics          string     `json:"topics"`
	HostName        string     `json:"host_name"`
	RegistrationURL string     `json:"registration_url"`
	ImageURL        string     `json:"image_url"`
	ApprovalStatus  string     `json:"approval_status,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (req SubmitEventRequest) Validate() []string {
	var errs []string
	required := []struct{ field, value string }{
		{"title", req.Title},
		{"description", req.Description},
		{"date", req.Date},
		{"start_time", req.StartTime},
		{"venue", req.Venue},
		{"location", req.Location},
		{"type", req.Type},
		{"topics", req.Topics},
		{"host_name", req.HostName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.field+" is required")
		}
	}
	if d := strings.TrimSpace(req.Date); d != "" {
		if _, err := time.Parse(dateLayout, d); err != nil {
			errs = append(errs, "date must be YYYY-MM-DD")
		}
	}
	if !validClock(req.StartTime) {
		errs = append(errs, "start_time must be HH:MM")
	}
	if !validClock(req.EndTime) {
		errs = append(errs, "end_time must be HH:MM")
	}
	if t := strings.TrimSpace(req.Type); t != "" && !domain.EventType(t).Valid() {
		errs = append(errs, "type must be one of hackathon, meetup, workshop, conference, networking")
	}
	if !validURL(req.RegistrationURL) {
		errs = append(errs, "registration_url must be an http(s) URL")
	}
	if !validURL(req.ImageURL) {
		errs = append(errs, "image_url must be an http(s) URL")
	}
	return errs
}

func (req SubmitEventRequest) submission() domain.EventSubmission {
	return domain.EventSubmission{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Venue:           req.Venue,
		Location:        req.Location,
		Type:            req.Type,
		Topics:          req.Topics,
		HostName:        req.HostName,
		RegistrationURL: req.RegistrationURL,
		ImageURL:        req.ImageURL,
		Source:          string(domain.EventSourceManual),
		ApprovalStatus:  req.ApprovalStatus,
		ApprovedAt:      req.ApprovedAt,
	}
}

// validClock accepts an empty value or a wall-clock time with optional seconds.
func validClock(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	if _, err := time.Parse(timeLayout, v); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", v)
	return err == nil
}

// validURL accepts an empty value or an absolute http(s) URL.
func validURL(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	u, err := url.Parse(v)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ListEventsResponse is the data for GET /events.
type ListEventsResponse struct {
	Tab           domain.EventTab        `json:"tab"`
	UpcomingCount int                    `json:"upcoming_count"`
	PastCount     int                    `json:"past_count"`
	Events        []*domain.Event        `json:"events"`
	Facets        domain.EventFacets     `json:"facets"`
	Fallback      bool                   `json:"fallback"`
	Pagination    helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// EventSuccessResponse is the success envelope for endpoints returning a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List public events
// @Description Returns publicly visible events split into upcoming and past. Only the selected tab is listed, after filtering; counts cover both tabs before filtering. When nothing is published yet, sample events are served and fallback is true.
// @Tags events
// @Produce json
// @Param tab query string false "upcoming (default) or past"
// @Param q query string false "Case-insensitive search over title, description and venue"
// @Param type query string false "Event type, or all"
// @Param topic query string false "Exact topic, or all"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tab := domain.EventTab(q.Get("tab"))
	switch tab {
	case "":
		tab = domain.EventTabUpcoming
	case domain.EventTabUpcoming, domain.EventTabPast:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tab must be upcoming or past")
		return
	}
	params := helpers.ParsePagination(q)

	feed := c.Service.Feed(r.Context(), tab, domain.EventFilter{
		Query: strings.TrimSpace(q.Get("q")),
		Type:  q.Get("type"),
		Topic: q.Get("topic"),
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Tab:           tab,
		UpcomingCount: feed.UpcomingCount,
		PastCount:     feed.PastCount,
		Events:        domain.Paginate(feed.Events, params),
		Facets:        feed.Facets,
		Fallback:      feed.Fallback,
		Pagination:    helpers.NewPaginationMeta(params, len(feed.Events)),
	})
}

// GetEvent godoc
// @Summary Get a public event
// @Description Returns a single approved event once its approval buffer has elapsed. Pending, rejected and freshly approved events are reported as not found.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if _, err := uuid.Parse(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	event, err := c.Service.GetPublicEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.String("method", r.Method), sl.Err(err))
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// SubmitEvent godoc
// @Summary Submit an event for review
// @Description Queues an event for moderation. The stored record is always pending with no approval time, whatever the body says. Requires a signed-in session.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body SubmitEventRequest true "Event form"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the pending event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "sign in required")
		return
	}
	var req SubmitEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.SubmitEvent(r.Context(), req.submission())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "event submission failed",
			slog.String("subject", session.Subject), slog.String("path", r.URL.Path), sl.Err(err))
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgSubmitFailed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}
