package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"techscene/internal/delivery/http/helpers"
	"techscene/internal/delivery/http/middleware"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"

	"github.com/google/uuid"
)

// SubmitPersonRequest is the request body for POST /people. Interests and communities are
// comma-separated lists. open_to_connect defaults to true when omitted.
type SubmitPersonRequest struct {
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

// Validate implements Validator.
func (req SubmitPersonRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(req.Interests) == "" {
		errs = append(errs, "interests is required")
	}
	switch role := strings.TrimSpace(req.Role); {
	case role == "":
		errs = append(errs, "role is required")
	case !domain.Role(role).Valid():
		errs = append(errs, "role must be one of founder, developer, designer, investor, operator, other")
	}
	urls := []struct{ field, value string }{
		{"linkedin", req.LinkedIn},
		{"website", req.Website},
		{"avatar_url", req.AvatarURL},
	}
	for _, u := range urls {
		if !validURL(u.value) {
			errs = append(errs, u.field+" must be an http(s) URL")
		}
	}
	return errs
}

func (req SubmitPersonRequest) submission() domain.PersonSubmission {
	return domain.PersonSubmission{
		Name:           req.Name,
		Bio:            req.Bio,
		Building:       req.Building,
		Role:           req.Role,
		Company:        req.Company,
		Interests:      req.Interests,
		Twitter:        req.Twitter,
		LinkedIn:       req.LinkedIn,
		Website:        req.Website,
		AvatarURL:      req.AvatarURL,
		Location:       req.Location,
		Communities:    req.Communities,
		OpenToConnect:  req.OpenToConnect,
		ApprovalStatus: req.ApprovalStatus,
		ApprovedAt:     req.ApprovedAt,
	}
}

// ListPeopleResponse is the data for GET /people.
type ListPeopleResponse struct {
	Total      int                    `json:"total"`
	People     []*domain.Person       `json:"people"`
	Facets     domain.PersonFacets    `json:"facets"`
	Fallback   bool                   `json:"fallback"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListPeopleSuccessResponse is the success response envelope for GET /people (200).
type ListPeopleSuccessResponse struct {
	Data  ListPeopleResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// PersonSuccessResponse is the success envelope for endpoints returning a single profile.
type PersonSuccessResponse struct {
	Data  *domain.Person    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type PersonController struct {
	Logger  *slog.Logger
	Service domain.PersonService
}

func NewPersonController(logger *slog.Logger, svc domain.PersonService) *PersonController {
	return &PersonController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPeople godoc
// @Summary List community profiles
// @Description Returns approved profiles, newest first, filtered by the query, role and interest. When nothing is published yet, sample profiles are served and fallback is true.
// @Tags people
// @Produce json
// @Param q query string false "Case-insensitive search over name, bio, building, company, interests and communities"
// @Param role query string false "Role, or all"
// @Param interest query string false "Exact interest, or all"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListPeopleSuccessResponse
// @Router /people [get]
func (c *PersonController) ListPeople(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := helpers.ParsePagination(q)

	dir := c.Service.Directory(r.Context(), domain.PersonFilter{
		Query:    strings.TrimSpace(q.Get("q")),
		Role:     q.Get("role"),
		Interest: q.Get("interest"),
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPeopleResponse{
		Total:      dir.Total,
		People:     domain.Paginate(dir.People, params),
		Facets:     dir.Facets,
		Fallback:   dir.Fallback,
		Pagination: helpers.NewPaginationMeta(params, dir.Total),
	})
}

// GetPerson godoc
// @Summary Get a community profile
// @Tags people
// @Produce json
// @Param personID path string true "Person ID (UUID)"
// @Success 200 {object} controllers.PersonSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /people/{personID} [get]
func (c *PersonController) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID := r.PathValue("personID")
	if _, err := uuid.Parse(personID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid personID")
		return
	}
	person, err := c.Service.GetPublicPerson(r.Context(), personID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "person not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.String("method", r.Method), sl.Err(err))
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, person)
}

// SubmitPerson godoc
// @Summary Submit a profile for review
// @Description Queues a profile for moderation. The stored record is always pending. Requires a signed-in session.
// @Tags people
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param person body SubmitPersonRequest true "Profile form"
// @Success 201 {object} controllers.PersonSuccessResponse "data contains the pending profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /people [post]
func (c *PersonController) SubmitPerson(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "sign in required")
		return
	}
	var req SubmitPersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	person, err := c.Service.SubmitPerson(r.Context(), req.submission())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "profile submission failed",
			slog.String("subject", session.Subject), slog.String("path", r.URL.Path), sl.Err(err))
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgSubmitFailed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, person)
}
