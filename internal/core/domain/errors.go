package domain

import "errors"

// Authentication errors. All gate failures are terminal for the request;
// nothing here is retried internally.
var (
	// ErrReplayRejected means the client timestamp fell outside the
	// configured freshness window.
	ErrReplayRejected = errors.New("request rejected due to timestamp skew")

	// ErrInvalidCredentials covers a wrong admin username/secret pair as
	// well as a failed password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHybridAuthFailed is returned when neither the admin nor the
	// device path succeeded. Deliberately generic: it must not reveal
	// which of the two checks came closest.
	ErrHybridAuthFailed = errors.New("request requires X-API-KEY or admin login")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformedClaims means the signature verified but a required
	// claim is missing. A client cannot produce this without the signing
	// secret, so it points at an issuance bug on our side.
	ErrTokenMalformedClaims = errors.New("token missing required claims")
)

// Entity errors for the CRUD surface.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrInvalidRole     = errors.New("invalid role")

	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityExists   = errors.New("entity already exists")

	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrScheduleClosed       = errors.New("schedule is not open for attendance")
	ErrRegistrationNotFound = errors.New("course registration not found")
	ErrFingerprintNotFound  = errors.New("fingerprint not found")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
)
