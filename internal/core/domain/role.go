package domain

// Role is the closed set of account roles. Earlier schema revisions stored
// this as a free-form one-character column; it is now validated at the
// account boundary and carried as a typed value through token issuance.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleLecturer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
