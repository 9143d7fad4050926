package domain

// Account maps a user to a password hash and a role. The hash is
// self-describing (bcrypt), so verification needs no external metadata.
// The plaintext password is never stored or logged.
type Account struct {
	UserID       string `json:"user_id"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
