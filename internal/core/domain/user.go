package domain

import "time"

// User is the identity record every profile, account, fingerprint and
// attendance row hangs off.
type User struct {
	UserID   string `json:"user_id"`
	ClassID  string `json:"class_id,omitempty"`
	FullName string `json:"full_name"`
}

// StudentProfile is the personal record attached to a student user, keyed
// by the user ID (one profile per user).
type StudentProfile struct {
	UserID    string    `json:"user_id"`
	BirthDate time.Time `json:"birth_date"`
	Gender    bool      `json:"gender"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
}

// LecturerProfile is the academic record attached to a lecturer user,
// keyed by the user ID.
type LecturerProfile struct {
	UserID          string `json:"user_id"`
	FacultyID       string `json:"faculty_id"`
	Degree          string `json:"degree"`
	ResearchArea    string `json:"research_area,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}
