package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
)

type stubProfileService struct {
	getStudentFn     func(ctx context.Context, userID string) (*domain.StudentProfile, error)
	createStudentFn  func(ctx context.Context, p *domain.StudentProfile) (*domain.StudentProfile, error)
	getLecturerFn    func(ctx context.Context, userID string) (*domain.LecturerProfile, error)
	createLecturerFn func(ctx context.Context, p *domain.LecturerProfile) (*domain.LecturerProfile, error)
}

func (s *stubProfileService) GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	return s.getStudentFn(ctx, userID)
}

func (s *stubProfileService) CreateStudent(ctx context.Context, p *domain.StudentProfile) (*domain.StudentProfile, error) {
	return s.createStudentFn(ctx, p)
}

func (s *stubProfileService) ListStudents(context.Context, int64, int64) ([]domain.StudentProfile, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProfileService) UpdateStudent(context.Context, string, *domain.StudentProfile) (*domain.StudentProfile, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProfileService) DeleteStudent(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubProfileService) GetLecturer(ctx context.Context, userID string) (*domain.LecturerProfile, error) {
	return s.getLecturerFn(ctx, userID)
}

func (s *stubProfileService) CreateLecturer(ctx context.Context, p *domain.LecturerProfile) (*domain.LecturerProfile, error) {
	return s.createLecturerFn(ctx, p)
}

func (s *stubProfileService) ListLecturers(context.Context, int64, int64) ([]domain.LecturerProfile, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProfileService) UpdateLecturer(context.Context, string, *domain.LecturerProfile) (*domain.LecturerProfile, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProfileService) DeleteLecturer(context.Context, string) error {
	return errors.New("not implemented")
}

func TestProfileHandler_CreateStudent(t *testing.T) {
	var got *domain.StudentProfile
	h := NewProfileHandler(&stubProfileService{
		createStudentFn: func(_ context.Context, p *domain.StudentProfile) (*domain.StudentProfile, error) {
			got = p
			return p, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/student-profiles",
		`{"user_id":"sv001","birth_date":"2004-05-20","gender":true,"phone":"0901234567","address":"12 Nguyen Trai"}`)
	if err := h.CreateStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	want := time.Date(2004, 5, 20, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.BirthDate.Equal(want) {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestProfileHandler_CreateStudent_BadDate(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/student-profiles",
		`{"user_id":"sv001","birth_date":"20/05/2004","gender":true,"phone":"0901234567","address":"12 Nguyen Trai"}`)
	err := h.CreateStudent(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProfileHandler_CreateStudent_GenderRequired(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		createStudentFn: func(_ context.Context, p *domain.StudentProfile) (*domain.StudentProfile, error) {
			return p, nil
		},
	})

	// gender false is a valid value; only an absent field fails validation.
	c, rec := newTestContext(t, http.MethodPost, "/api/student-profiles",
		`{"user_id":"sv001","birth_date":"2004-05-20","gender":false,"phone":"0901234567","address":"12 Nguyen Trai"}`)
	if err := h.CreateStudent(c); err != nil {
		t.Fatalf("gender=false rejected: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodPost, "/api/student-profiles",
		`{"user_id":"sv001","birth_date":"2004-05-20","phone":"0901234567","address":"12 Nguyen Trai"}`)
	err := h.CreateStudent(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing gender, got %v", err)
	}
}

func TestProfileHandler_CreateLecturer_RequiresFaculty(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/lecturer-profiles",
		`{"user_id":"gv001","degree":"PhD"}`)
	err := h.CreateLecturer(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProfileHandler_Me_DispatchesByRole(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		getStudentFn: func(_ context.Context, userID string) (*domain.StudentProfile, error) {
			return &domain.StudentProfile{UserID: userID, Phone: "0901234567"}, nil
		},
		getLecturerFn: func(_ context.Context, userID string) (*domain.LecturerProfile, error) {
			return &domain.LecturerProfile{UserID: userID, Degree: "PhD"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/me/profile", "")
	c.Set("user_id", "sv001")
	c.Set("role", domain.RoleStudent)
	if err := h.Me(c); err != nil {
		t.Fatalf("student: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "0901234567") {
		t.Fatalf("expected student profile, got %s", rec.Body.String())
	}

	c, rec = newTestContext(t, http.MethodGet, "/api/me/profile", "")
	c.Set("user_id", "gv001")
	c.Set("role", domain.RoleLecturer)
	if err := h.Me(c); err != nil {
		t.Fatalf("lecturer: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "PhD") {
		t.Fatalf("expected lecturer profile, got %s", rec.Body.String())
	}
}
