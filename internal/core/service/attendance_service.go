package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID string, scheduleID int64, ts time.Time) (bool, error)
	Mark(ctx context.Context, userID string, scheduleID int64, ts time.Time) error
}

// AttendanceService implements attendance CRUD and the device check-in
// pipeline driven by the dispatcher workers.
type AttendanceService struct {
	attendance ports.AttendanceRepository
	schedules  ports.ScheduleRepository
	users      ports.UserRepository
	dedup      DedupChecker
	log        zerolog.Logger
}

func NewAttendanceService(
	attendance ports.AttendanceRepository,
	schedules ports.ScheduleRepository,
	users ports.UserRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		schedules:  schedules,
		users:      users,
		dedup:      dedup,
		log:        log,
	}
}

func (s *AttendanceService) Get(ctx context.Context, attendID int64) (*domain.Attendance, error) {
	return s.attendance.FindByID(ctx, attendID)
}

func (s *AttendanceService) List(ctx context.Context, skip, limit int64) ([]domain.Attendance, error) {
	return s.attendance.List(ctx, skip, limit)
}

func (s *AttendanceService) ListBySchedule(ctx context.Context, scheduleID int64, skip, limit int64) ([]domain.Attendance, error) {
	return s.attendance.ListBySchedule(ctx, scheduleID, skip, limit)
}

// Create is the admin path: foreign keys are checked but the schedule does
// not have to be open.
func (s *AttendanceService) Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	if _, err := s.schedules.FindByID(ctx, record.ScheduleID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, record.UserID); err != nil {
		return nil, err
	}
	return s.attendance.Create(ctx, record)
}

func (s *AttendanceService) Update(ctx context.Context, attendID int64, record *domain.Attendance) (*domain.Attendance, error) {
	if err := s.attendance.Update(ctx, attendID, record); err != nil {
		return nil, err
	}
	return s.attendance.FindByID(ctx, attendID)
}

func (s *AttendanceService) Delete(ctx context.Context, attendID int64) error {
	return s.attendance.Delete(ctx, attendID)
}

// ProcessCheckin validates, deduplicates and persists one device check-in.
func (s *AttendanceService) ProcessCheckin(ctx context.Context, in ports.CheckinInput) error {
	started := time.Now()

	// 1. Idempotency check: the same user/schedule/timestamp triple is
	// processed at most once. Failures here degrade to processing anyway.
	isDup, err := s.dedup.IsDuplicate(ctx, in.UserID, in.ScheduleID, in.DeviceTime)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.CheckinsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().
			Str("user_id", in.UserID).
			Int64("schedule_id", in.ScheduleID).
			Msg("duplicate check-in skipped")
		return nil
	}
	metrics.CheckinsDedupTotal.WithLabelValues("miss").Inc()

	// 2. The schedule must exist and be open for attendance.
	schedule, err := s.schedules.FindByID(ctx, in.ScheduleID)
	if err != nil {
		metrics.CheckinsProcessedTotal.WithLabelValues("schedule_not_found").Inc()
		return fmt.Errorf("process checkin: %w", err)
	}
	if !schedule.IsOpen {
		metrics.CheckinsProcessedTotal.WithLabelValues("schedule_closed").Inc()
		return fmt.Errorf("process checkin: %w", domain.ErrScheduleClosed)
	}

	// 3. The user must exist.
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		metrics.CheckinsProcessedTotal.WithLabelValues("user_not_found").Inc()
		return fmt.Errorf("process checkin: %w", err)
	}

	// 4. Mark before writing so a retried event does not double-insert.
	if markErr := s.dedup.Mark(ctx, in.UserID, in.ScheduleID, in.DeviceTime); markErr != nil {
		s.log.Warn().Err(markErr).Str("user_id", in.UserID).Msg("failed to set dedup key")
	}

	// 5. Persist the record.
	record := &domain.Attendance{
		ScheduleID: in.ScheduleID,
		UserID:     in.UserID,
		AttendTime: in.DeviceTime,
		Status:     true,
	}
	if _, err := s.attendance.Create(ctx, record); err != nil {
		metrics.CheckinsProcessedTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process checkin: insert: %w", err)
	}

	metrics.CheckinsProcessedTotal.WithLabelValues("recorded").Inc()
	metrics.CheckinProcessingDuration.WithLabelValues("recorded").Observe(time.Since(started).Seconds())

	s.log.Info().
		Str("user_id", in.UserID).
		Int64("schedule_id", in.ScheduleID).
		Time("attend_time", in.DeviceTime).
		Msg("check-in recorded")

	return nil
}
