package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an issued token when the caller does
// not override it. Clients re-authenticate after expiry; there is no
// refresh or rotation mechanism.
const DefaultTokenTTL = 15 * time.Minute

// Claims is the identity a verified token carries.
type Claims struct {
	Subject string
	Role    domain.Role
}

// TokenService issues and verifies HS256-signed bearer tokens embedding
// subject, role and absolute expiry. The signing secret is fixed for the
// process lifetime; validity is purely a function of signature and expiry
// (no server-side state).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service signing with secret. A non-positive ttl
// falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the subject/role pair expiring after the service
// TTL.
func (s *TokenService) Issue(subjectID string, role domain.Role) (string, error) {
	return s.IssueWithTTL(subjectID, role, s.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime. A negative ttl
// produces an already-expired token; useful in tests, never in production
// paths.
func (s *TokenService) IssueWithTTL(subjectID string, role domain.Role, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role.String(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the identity claims.
// Errors:
//   - domain.ErrTokenExpired: structurally valid but past expiry.
//   - domain.ErrTokenInvalid: bad signature, wrong algorithm, malformed
//     structure, or missing expiry.
//   - domain.ErrTokenMalformedClaims: valid signature but sub or role is
//     absent. A client cannot forge this; it flags an issuance bug and is
//     surfaced distinctly so it can be logged server-side.
func (s *TokenService) Verify(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.ErrTokenExpired
		}
		return Claims{}, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return Claims{}, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	if sub == "" || roleStr == "" {
		return Claims{}, domain.ErrTokenMalformedClaims
	}
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return Claims{}, domain.ErrTokenMalformedClaims
	}

	return Claims{Subject: sub, Role: role}, nil
}
