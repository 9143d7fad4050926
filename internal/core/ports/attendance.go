package ports

import (
	"context"
	"time"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// AttendanceRepository persists attendance records.
type AttendanceRepository interface {
	FindByID(ctx context.Context, attendID int64) (*domain.Attendance, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Attendance, error)
	ListBySchedule(ctx context.Context, scheduleID int64, skip, limit int64) ([]domain.Attendance, error)
	Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
	Update(ctx context.Context, attendID int64, record *domain.Attendance) error
	Delete(ctx context.Context, attendID int64) error
}

// CheckinInput is one device check-in event as submitted by the hardware
// (or by an admin exercising the endpoint manually).
type CheckinInput struct {
	UserID     string
	ScheduleID int64
	DeviceTime time.Time
}

// AttendanceService implements attendance CRUD plus the device check-in
// pipeline the dispatcher workers drive.
type AttendanceService interface {
	Get(ctx context.Context, attendID int64) (*domain.Attendance, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Attendance, error)
	ListBySchedule(ctx context.Context, scheduleID int64, skip, limit int64) ([]domain.Attendance, error)
	Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
	Update(ctx context.Context, attendID int64, record *domain.Attendance) (*domain.Attendance, error)
	Delete(ctx context.Context, attendID int64) error

	// ProcessCheckin validates, deduplicates and persists one check-in
	// event. Duplicate events are silently skipped.
	ProcessCheckin(ctx context.Context, in CheckinInput) error
}
