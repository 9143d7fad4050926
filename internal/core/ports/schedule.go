package ports

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// ScheduleRepository persists teaching sessions.
type ScheduleRepository interface {
	FindByID(ctx context.Context, scheduleID int64) (*domain.Schedule, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Update(ctx context.Context, scheduleID int64, schedule *domain.Schedule) error
	SetOpen(ctx context.Context, scheduleID int64, open bool) error
	Delete(ctx context.Context, scheduleID int64) error
}

// RegistrationRepository persists course registrations.
type RegistrationRepository interface {
	FindByID(ctx context.Context, regID int64) (*domain.CourseRegistration, error)
	List(ctx context.Context, skip, limit int64) ([]domain.CourseRegistration, error)
	ListByUser(ctx context.Context, userID string, skip, limit int64) ([]domain.CourseRegistration, error)
	Create(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error)
	Update(ctx context.Context, regID int64, reg *domain.CourseRegistration) error
	Delete(ctx context.Context, regID int64) error
}

// ScheduleService implements schedule and registration management with
// referential checks against the catalog and user collections.
type ScheduleService interface {
	Get(ctx context.Context, scheduleID int64) (*domain.Schedule, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Update(ctx context.Context, scheduleID int64, schedule *domain.Schedule) (*domain.Schedule, error)
	SetOpen(ctx context.Context, scheduleID int64, open bool) error
	Delete(ctx context.Context, scheduleID int64) error

	GetRegistration(ctx context.Context, regID int64) (*domain.CourseRegistration, error)
	ListRegistrations(ctx context.Context, userID string, skip, limit int64) ([]domain.CourseRegistration, error)
	Register(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error)
	UpdateRegistration(ctx context.Context, regID int64, reg *domain.CourseRegistration) (*domain.CourseRegistration, error)
	DeleteRegistration(ctx context.Context, regID int64) error
}
