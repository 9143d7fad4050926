package domain

import "time"

// Attendance is one check-in event against a schedule.
type Attendance struct {
	AttendID   int64     `json:"attend_id"`
	ScheduleID int64     `json:"schedule_id"`
	UserID     string    `json:"user_id"`
	AttendTime time.Time `json:"attend_time"`
	Status     bool      `json:"status"` // true = present
}
