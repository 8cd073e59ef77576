package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"techscene/internal/delivery/http/helpers"
	"techscene/internal/delivery/http/middleware"
	"techscene/internal/domain"
)

// SessionStatus is the data for GET /auth/session.
type SessionStatus struct {
	SignedIn bool `json:"signed_in"`
}

// SessionStatusSuccessResponse is the success response envelope for GET /auth/session (200).
type SessionStatusSuccessResponse struct {
	Data  SessionStatus     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionController reports sign-in state and hands users off to the identity provider.
// The directory never creates sessions itself.
type SessionController struct {
	Logger    *slog.Logger
	Verifier  domain.SessionVerifier
	SignInURL string
}

func NewSessionController(logger *slog.Logger, verifier domain.SessionVerifier, signInURL string) *SessionController {
	return &SessionController{
		Logger:    logger,
		Verifier:  verifier,
		SignInURL: signInURL,
	}
}

// Status godoc
// @Summary Report whether the caller is signed in
// @Description Lets clients decide between showing a submit form and a sign-in prompt. Never fails with 401.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.SessionStatusSuccessResponse
// @Router /auth/session [get]
func (c *SessionController) Status(w http.ResponseWriter, r *http.Request) {
	signedIn := false
	if token := middleware.TokenFromRequest(r); token != "" {
		_, err := c.Verifier.Verify(token)
		signedIn = err == nil
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SessionStatus{SignedIn: signedIn})
}

// SignIn godoc
// @Summary Redirect to the identity provider's sign-in page
// @Description redirect_url must be a path on this site; anything else is replaced with "/".
// @Tags auth
// @Param redirect_url query string false "Path to return to after signing in"
// @Success 302
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/sign-in [get]
func (c *SessionController) SignIn(w http.ResponseWriter, r *http.Request) {
	if c.SignInURL == "" {
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "sign-in is not configured")
		return
	}
	target, err := url.Parse(c.SignInURL)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "invalid sign-in url", slog.String("url", c.SignInURL))
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "sign-in is not configured")
		return
	}
	q := target.Query()
	q.Set("redirect_url", localPath(r.URL.Query().Get("redirect_url")))
	target.RawQuery = q.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

// localPath keeps only same-site paths so the redirect cannot be used as an open redirect.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return "/"
	}
	return p
}
