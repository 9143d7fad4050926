// Package auth holds the authentication primitives: the admin credential
// verifier, the replay guard, the password hasher, and the token service.
// Everything here is a pure function over per-request input and immutable
// configuration captured at construction time, so all of it is safe for
// concurrent use without locking.
package auth

import "crypto/subtle"

// AdminCredentials is the single configured administrator credential pair,
// loaded once at startup and injected into the gates that need it.
type AdminCredentials struct {
	username []byte
	secret   []byte
}

func NewAdminCredentials(username, secret string) *AdminCredentials {
	return &AdminCredentials{
		username: []byte(username),
		secret:   []byte(secret),
	}
}

// Verify reports whether the supplied pair matches the configured one.
// Both fields are compared in constant time and both comparisons always
// run, so evaluation time does not depend on where the first mismatching
// byte sits. The supplied secret is never logged.
func (a *AdminCredentials) Verify(username, secret string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), a.username)
	passOK := subtle.ConstantTimeCompare([]byte(secret), a.secret)
	return userOK&passOK == 1
}
