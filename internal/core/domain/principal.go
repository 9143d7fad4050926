package domain

// PrincipalKind discriminates the three trust classes a gate can resolve.
type PrincipalKind int

const (
	// PrincipalAdministrator is an operator authenticated with the
	// configured HTTP Basic credentials.
	PrincipalAdministrator PrincipalKind = iota + 1
	// PrincipalDevice is an unattended check-in device holding the static
	// hardware key. The key identifies a device class, not an individual
	// unit.
	PrincipalDevice
	// PrincipalUser is an application user carrying a valid bearer token.
	PrincipalUser
)

// Principal is the outcome of a successful gate evaluation. It lives only
// for the duration of a single request and is never cached or persisted.
type Principal struct {
	Kind PrincipalKind

	// Username is set for PrincipalAdministrator.
	Username string

	// SubjectID and Role are set for PrincipalUser.
	SubjectID string
	Role      Role
}

func AdministratorPrincipal(username string) Principal {
	return Principal{Kind: PrincipalAdministrator, Username: username}
}

func DevicePrincipal() Principal {
	return Principal{Kind: PrincipalDevice}
}

func UserPrincipal(subjectID string, role Role) Principal {
	return Principal{Kind: PrincipalUser, SubjectID: subjectID, Role: role}
}
