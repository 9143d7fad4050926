package domain

import "time"

// Schedule is a single teaching session. Attendance may only be recorded
// while IsOpen is true.
type Schedule struct {
	ScheduleID  int64     `json:"schedule_id"`
	SubjectID   string    `json:"subject_id"`
	RoomID      string    `json:"room_id"`
	LecturerID  string    `json:"lecturer_id"`
	ClassID     string    `json:"class_id"`
	LearnDate   time.Time `json:"learn_date"`
	StartPeriod int       `json:"start_period"`
	EndPeriod   int       `json:"end_period"`
	IsOpen      bool      `json:"is_open"`
}

// CourseRegistration enrolls a user into a subject hosted by a class for a
// given semester/year.
type CourseRegistration struct {
	RegID       int64     `json:"reg_id"`
	UserID      string    `json:"user_id"`
	SubjectID   string    `json:"subject_id"`
	HostClassID string    `json:"host_class_id"`
	Semester    int       `json:"semester"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
}
