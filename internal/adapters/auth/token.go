package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"techscene/internal/domain"
)

type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier returns a SessionVerifier for HS256 session tokens minted by the
// identity provider. An empty issuer disables the issuer check. An empty secret rejects
// every token, so an unconfigured deployment has no signed-in sessions.
func NewJWTVerifier(secret, issuer string) domain.SessionVerifier {
	return &jwtVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *jwtVerifier) Verify(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: session secret not configured", domain.ErrUnauthenticated)
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrUnauthenticated)
	}
	return &domain.Session{Subject: claims.Subject}, nil
}
