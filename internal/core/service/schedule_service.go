package service

import (
	"context"
	"time"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// ScheduleService implements schedule and course-registration management.
// Creates validate every foreign reference before writing, mirroring the
// relational constraints the data originally lived under.
type ScheduleService struct {
	schedules     ports.ScheduleRepository
	registrations ports.RegistrationRepository
	users         ports.UserRepository
	subjects      ports.CatalogRepository[domain.Subject]
	rooms         ports.CatalogRepository[domain.Room]
	classes       ports.CatalogRepository[domain.Class]
}

func NewScheduleService(
	schedules ports.ScheduleRepository,
	registrations ports.RegistrationRepository,
	users ports.UserRepository,
	subjects ports.CatalogRepository[domain.Subject],
	rooms ports.CatalogRepository[domain.Room],
	classes ports.CatalogRepository[domain.Class],
) *ScheduleService {
	return &ScheduleService{
		schedules:     schedules,
		registrations: registrations,
		users:         users,
		subjects:      subjects,
		rooms:         rooms,
		classes:       classes,
	}
}

func (s *ScheduleService) Get(ctx context.Context, scheduleID int64) (*domain.Schedule, error) {
	return s.schedules.FindByID(ctx, scheduleID)
}

func (s *ScheduleService) List(ctx context.Context, skip, limit int64) ([]domain.Schedule, error) {
	return s.schedules.List(ctx, skip, limit)
}

func (s *ScheduleService) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if err := s.checkScheduleRefs(ctx, schedule); err != nil {
		return nil, err
	}
	return s.schedules.Create(ctx, schedule)
}

func (s *ScheduleService) Update(ctx context.Context, scheduleID int64, schedule *domain.Schedule) (*domain.Schedule, error) {
	if err := s.checkScheduleRefs(ctx, schedule); err != nil {
		return nil, err
	}
	if err := s.schedules.Update(ctx, scheduleID, schedule); err != nil {
		return nil, err
	}
	return s.schedules.FindByID(ctx, scheduleID)
}

func (s *ScheduleService) SetOpen(ctx context.Context, scheduleID int64, open bool) error {
	return s.schedules.SetOpen(ctx, scheduleID, open)
}

func (s *ScheduleService) Delete(ctx context.Context, scheduleID int64) error {
	return s.schedules.Delete(ctx, scheduleID)
}

func (s *ScheduleService) checkScheduleRefs(ctx context.Context, schedule *domain.Schedule) error {
	if _, err := s.subjects.Get(ctx, schedule.SubjectID); err != nil {
		return err
	}
	if _, err := s.rooms.Get(ctx, schedule.RoomID); err != nil {
		return err
	}
	if _, err := s.classes.Get(ctx, schedule.ClassID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, schedule.LecturerID); err != nil {
		return err
	}
	return nil
}

func (s *ScheduleService) GetRegistration(ctx context.Context, regID int64) (*domain.CourseRegistration, error) {
	return s.registrations.FindByID(ctx, regID)
}

func (s *ScheduleService) ListRegistrations(ctx context.Context, userID string, skip, limit int64) ([]domain.CourseRegistration, error) {
	if userID != "" {
		return s.registrations.ListByUser(ctx, userID, skip, limit)
	}
	return s.registrations.List(ctx, skip, limit)
}

func (s *ScheduleService) Register(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error) {
	if err := s.checkRegistrationRefs(ctx, reg); err != nil {
		return nil, err
	}
	reg.CreatedAt = time.Now().UTC()
	return s.registrations.Create(ctx, reg)
}

func (s *ScheduleService) UpdateRegistration(ctx context.Context, regID int64, reg *domain.CourseRegistration) (*domain.CourseRegistration, error) {
	if err := s.checkRegistrationRefs(ctx, reg); err != nil {
		return nil, err
	}
	if err := s.registrations.Update(ctx, regID, reg); err != nil {
		return nil, err
	}
	return s.registrations.FindByID(ctx, regID)
}

func (s *ScheduleService) DeleteRegistration(ctx context.Context, regID int64) error {
	return s.registrations.Delete(ctx, regID)
}

func (s *ScheduleService) checkRegistrationRefs(ctx context.Context, reg *domain.CourseRegistration) error {
	if _, err := s.users.FindByID(ctx, reg.UserID); err != nil {
		return err
	}
	if _, err := s.subjects.Get(ctx, reg.SubjectID); err != nil {
		return err
	}
	if _, err := s.classes.Get(ctx, reg.HostClassID); err != nil {
		return err
	}
	return nil
}
