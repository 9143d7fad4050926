package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAttendanceRepo struct {
	insertErr error
	created   []*domain.Attendance
	nextID    int64
}

func (r *stubAttendanceRepo) FindByID(_ context.Context, attendID int64) (*domain.Attendance, error) {
	for _, rec := range r.created {
		if rec.AttendID == attendID {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) List(_ context.Context, _, _ int64) ([]domain.Attendance, error) {
	out := make([]domain.Attendance, 0, len(r.created))
	for _, rec := range r.created {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubAttendanceRepo) ListBySchedule(_ context.Context, scheduleID int64, _, _ int64) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for _, rec := range r.created {
		if rec.ScheduleID == scheduleID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) Create(_ context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	record.AttendID = r.nextID
	clone := *record
	r.created = append(r.created, &clone)
	return record, nil
}

func (r *stubAttendanceRepo) Update(_ context.Context, attendID int64, record *domain.Attendance) error {
	for i, rec := range r.created {
		if rec.AttendID == attendID {
			record.AttendID = attendID
			clone := *record
			r.created[i] = &clone
			return nil
		}
	}
	return domain.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) Delete(_ context.Context, attendID int64) error {
	for i, rec := range r.created {
		if rec.AttendID == attendID {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return domain.ErrAttendanceNotFound
}

type stubScheduleRepo struct {
	byID map[int64]*domain.Schedule
}

func newStubScheduleRepo(schedules ...*domain.Schedule) *stubScheduleRepo {
	r := &stubScheduleRepo{byID: make(map[int64]*domain.Schedule)}
	for _, s := range schedules {
		r.byID[s.ScheduleID] = s
	}
	return r
}

func (r *stubScheduleRepo) FindByID(_ context.Context, scheduleID int64) (*domain.Schedule, error) {
	s, ok := r.byID[scheduleID]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubScheduleRepo) List(_ context.Context, _, _ int64) ([]domain.Schedule, error) {
	out := make([]domain.Schedule, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubScheduleRepo) Create(_ context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	schedule.ScheduleID = int64(len(r.byID) + 1)
	clone := *schedule
	r.byID[schedule.ScheduleID] = &clone
	return schedule, nil
}

func (r *stubScheduleRepo) Update(_ context.Context, scheduleID int64, schedule *domain.Schedule) error {
	if _, ok := r.byID[scheduleID]; !ok {
		return domain.ErrScheduleNotFound
	}
	schedule.ScheduleID = scheduleID
	clone := *schedule
	r.byID[scheduleID] = &clone
	return nil
}

func (r *stubScheduleRepo) SetOpen(_ context.Context, scheduleID int64, open bool) error {
	s, ok := r.byID[scheduleID]
	if !ok {
		return domain.ErrScheduleNotFound
	}
	s.IsOpen = open
	return nil
}

func (r *stubScheduleRepo) Delete(_ context.Context, scheduleID int64) error {
	if _, ok := r.byID[scheduleID]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(r.byID, scheduleID)
	return nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, userID string, _ int64, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, userID string, _ int64, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, userID)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func openSchedule(id int64) *domain.Schedule {
	return &domain.Schedule{
		ScheduleID: id,
		SubjectID:  "INT1449",
		RoomID:     "A2.3",
		LecturerID: "lc042",
		ClassID:    "12DHTH11",
		LearnDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsOpen:     true,
	}
}

func checkin(userID string, scheduleID int64) ports.CheckinInput {
	return ports.CheckinInput{
		UserID:     userID,
		ScheduleID: scheduleID,
		DeviceTime: time.Date(2026, 3, 10, 7, 15, 0, 0, time.UTC),
	}
}

func TestAttendanceService_ProcessCheckin_Recorded(t *testing.T) {
	attendance := &stubAttendanceRepo{}
	dedup := &stubDedup{}
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), dedup, zerolog.Nop())

	if err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(attendance.created) != 1 {
		t.Fatalf("expected one record, got %d", len(attendance.created))
	}
	rec := attendance.created[0]
	if rec.UserID != "sv001" || rec.ScheduleID != 7 || !rec.Status {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(dedup.marked) != 1 {
		t.Errorf("expected dedup key marked")
	}
}

func TestAttendanceService_ProcessCheckin_DuplicateSkipped(t *testing.T) {
	attendance := &stubAttendanceRepo{}
	dedup := &stubDedup{dupResult: true} // simulate already processed
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), dedup, zerolog.Nop())

	if err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7)); err != nil {
		t.Fatalf("expected no error for duplicate, got: %v", err)
	}
	if len(attendance.created) != 0 {
		t.Errorf("expected no insert for duplicate check-in")
	}
}

func TestAttendanceService_ProcessCheckin_ScheduleNotFound(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, newStubScheduleRepo(), newStubUserRepo("sv001"), &stubDedup{}, zerolog.Nop())

	err := svc.ProcessCheckin(context.Background(), checkin("sv001", 99))
	if !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got: %v", err)
	}
}

func TestAttendanceService_ProcessCheckin_ScheduleClosed(t *testing.T) {
	closed := openSchedule(7)
	closed.IsOpen = false
	attendance := &stubAttendanceRepo{}
	svc := NewAttendanceService(attendance, newStubScheduleRepo(closed), newStubUserRepo("sv001"), &stubDedup{}, zerolog.Nop())

	err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7))
	if !errors.Is(err, domain.ErrScheduleClosed) {
		t.Errorf("expected ErrScheduleClosed, got: %v", err)
	}
	if len(attendance.created) != 0 {
		t.Errorf("expected no insert against a closed schedule")
	}
}

func TestAttendanceService_ProcessCheckin_UserNotFound(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, newStubScheduleRepo(openSchedule(7)), newStubUserRepo(), &stubDedup{}, zerolog.Nop())

	err := svc.ProcessCheckin(context.Background(), checkin("ghost", 7))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestAttendanceService_ProcessCheckin_DedupCheckError_ProcessesAnyway(t *testing.T) {
	attendance := &stubAttendanceRepo{}
	dedup := &stubDedup{dupErr: errors.New("redis timeout")} // dedup check fails
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), dedup, zerolog.Nop())

	// Should still process despite dedup check failure
	if err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(attendance.created) != 1 {
		t.Errorf("expected insert to proceed when dedup check errors")
	}
}

func TestAttendanceService_ProcessCheckin_MarkFailureIsNonFatal(t *testing.T) {
	attendance := &stubAttendanceRepo{}
	dedup := &stubDedup{markErr: errors.New("redis unavailable")}
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), dedup, zerolog.Nop())

	if err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7)); err != nil {
		t.Fatalf("expected mark failure to be non-fatal, got: %v", err)
	}
	if len(attendance.created) != 1 {
		t.Errorf("expected record to be inserted")
	}
}

func TestAttendanceService_ProcessCheckin_InsertFailed(t *testing.T) {
	attendance := &stubAttendanceRepo{insertErr: errors.New("mongo unavailable")}
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), &stubDedup{}, zerolog.Nop())

	if err := svc.ProcessCheckin(context.Background(), checkin("sv001", 7)); err == nil {
		t.Fatalf("expected error when insert fails")
	}
}

func TestAttendanceService_Create_ChecksReferences(t *testing.T) {
	attendance := &stubAttendanceRepo{}
	svc := NewAttendanceService(attendance, newStubScheduleRepo(openSchedule(7)), newStubUserRepo("sv001"), &stubDedup{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Attendance{ScheduleID: 99, UserID: "sv001"}); !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Attendance{ScheduleID: 7, UserID: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	created, err := svc.Create(context.Background(), &domain.Attendance{
		ScheduleID: 7,
		UserID:     "sv001",
		AttendTime: time.Now().UTC(),
		Status:     true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.AttendID == 0 {
		t.Errorf("expected allocated attend_id")
	}
}
