package auth

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt for account passwords. bcrypt digests embed the
// algorithm, cost and salt, so Verify needs nothing beyond the digest
// itself. Hashing is deliberately CPU-costly; callers should keep it off
// latency-critical paths.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted digest from the plaintext. The plaintext is never
// stored or logged.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
