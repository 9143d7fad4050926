package service

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// ProfileService implements student and lecturer profile management. A
// profile is keyed by the user it belongs to; creates validate the user
// reference, and lecturer profiles additionally validate the faculty.
type ProfileService struct {
	students  ports.StudentProfileRepository
	lecturers ports.LecturerProfileRepository
	users     ports.UserRepository
	faculties ports.CatalogRepository[domain.Faculty]
}

func NewProfileService(
	students ports.StudentProfileRepository,
	lecturers ports.LecturerProfileRepository,
	users ports.UserRepository,
	faculties ports.CatalogRepository[domain.Faculty],
) *ProfileService {
	return &ProfileService{
		students:  students,
		lecturers: lecturers,
		users:     users,
		faculties: faculties,
	}
}

func (s *ProfileService) GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	return s.students.FindByUserID(ctx, userID)
}

func (s *ProfileService) ListStudents(ctx context.Context, skip, limit int64) ([]domain.StudentProfile, error) {
	return s.students.List(ctx, skip, limit)
}

func (s *ProfileService) CreateStudent(ctx context.Context, profile *domain.StudentProfile) (*domain.StudentProfile, error) {
	if _, err := s.users.FindByID(ctx, profile.UserID); err != nil {
		return nil, err
	}
	if err := s.students.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateStudent(ctx context.Context, userID string, profile *domain.StudentProfile) (*domain.StudentProfile, error) {
	profile.UserID = userID
	if err := s.students.Update(ctx, userID, profile); err != nil {
		return nil, err
	}
	return s.students.FindByUserID(ctx, userID)
}

func (s *ProfileService) DeleteStudent(ctx context.Context, userID string) error {
	return s.students.Delete(ctx, userID)
}

func (s *ProfileService) GetLecturer(ctx context.Context, userID string) (*domain.LecturerProfile, error) {
	return s.lecturers.FindByUserID(ctx, userID)
}

func (s *ProfileService) ListLecturers(ctx context.Context, skip, limit int64) ([]domain.LecturerProfile, error) {
	return s.lecturers.List(ctx, skip, limit)
}

func (s *ProfileService) CreateLecturer(ctx context.Context, profile *domain.LecturerProfile) (*domain.LecturerProfile, error) {
	if err := s.checkLecturerRefs(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.lecturers.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateLecturer(ctx context.Context, userID string, profile *domain.LecturerProfile) (*domain.LecturerProfile, error) {
	profile.UserID = userID
	if err := s.checkLecturerRefs(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.lecturers.Update(ctx, userID, profile); err != nil {
		return nil, err
	}
	return s.lecturers.FindByUserID(ctx, userID)
}

func (s *ProfileService) DeleteLecturer(ctx context.Context, userID string) error {
	return s.lecturers.Delete(ctx, userID)
}

func (s *ProfileService) checkLecturerRefs(ctx context.Context, profile *domain.LecturerProfile) error {
	if _, err := s.users.FindByID(ctx, profile.UserID); err != nil {
		return err
	}
	if _, err := s.faculties.Get(ctx, profile.FacultyID); err != nil {
		return err
	}
	return nil
}
