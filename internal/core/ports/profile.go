package ports

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// StudentProfileRepository persists student personal records, one per user.
type StudentProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error)
	List(ctx context.Context, skip, limit int64) ([]domain.StudentProfile, error)
	Create(ctx context.Context, profile *domain.StudentProfile) error
	Update(ctx context.Context, userID string, profile *domain.StudentProfile) error
	Delete(ctx context.Context, userID string) error
}

// LecturerProfileRepository persists lecturer academic records, one per user.
type LecturerProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.LecturerProfile, error)
	List(ctx context.Context, skip, limit int64) ([]domain.LecturerProfile, error)
	Create(ctx context.Context, profile *domain.LecturerProfile) error
	Update(ctx context.Context, userID string, profile *domain.LecturerProfile) error
	Delete(ctx context.Context, userID string) error
}

// ProfileService implements student and lecturer profile management with
// referential checks against the user and faculty collections.
type ProfileService interface {
	GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error)
	ListStudents(ctx context.Context, skip, limit int64) ([]domain.StudentProfile, error)
	CreateStudent(ctx context.Context, profile *domain.StudentProfile) (*domain.StudentProfile, error)
	UpdateStudent(ctx context.Context, userID string, profile *domain.StudentProfile) (*domain.StudentProfile, error)
	DeleteStudent(ctx context.Context, userID string) error

	GetLecturer(ctx context.Context, userID string) (*domain.LecturerProfile, error)
	ListLecturers(ctx context.Context, skip, limit int64) ([]domain.LecturerProfile, error)
	CreateLecturer(ctx context.Context, profile *domain.LecturerProfile) (*domain.LecturerProfile, error)
	UpdateLecturer(ctx context.Context, userID string, profile *domain.LecturerProfile) (*domain.LecturerProfile, error)
	DeleteLecturer(ctx context.Context, userID string) error
}
