package domain

// Session is a signed-in identity as asserted by the external identity provider.
// The directory only cares that a session exists; Subject is kept for logging.
type Session struct {
	Subject string
}

// SessionVerifier checks a session token issued by the identity provider.
type SessionVerifier interface {
	Verify(token string) (*Session, error)
}
