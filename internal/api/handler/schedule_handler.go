package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for teaching sessions and course
// registrations.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type scheduleRequest struct {
	SubjectID   string `json:"subject_id" validate:"required"`
	RoomID      string `json:"room_id" validate:"required"`
	LecturerID  string `json:"lecturer_id" validate:"required"`
	ClassID     string `json:"class_id" validate:"required"`
	LearnDate   string `json:"learn_date" validate:"required"` // YYYY-MM-DD
	StartPeriod int    `json:"start_period" validate:"gte=1"`
	EndPeriod   int    `json:"end_period" validate:"gte=1"`
	IsOpen      bool   `json:"is_open"`
}

func (req *scheduleRequest) toDomain() (*domain.Schedule, error) {
	learnDate, err := time.ParseInLocation("2006-01-02", req.LearnDate, time.UTC)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "learn_date must be YYYY-MM-DD")
	}
	return &domain.Schedule{
		SubjectID:   req.SubjectID,
		RoomID:      req.RoomID,
		LecturerID:  req.LecturerID,
		ClassID:     req.ClassID,
		LearnDate:   learnDate,
		StartPeriod: req.StartPeriod,
		EndPeriod:   req.EndPeriod,
		IsOpen:      req.IsOpen,
	}, nil
}

type registrationRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	SubjectID   string `json:"subject_id" validate:"required"`
	HostClassID string `json:"host_class_id" validate:"required"`
	Semester    int    `json:"semester" validate:"gte=1"`
	Year        int    `json:"year" validate:"gte=2000"`
}

func (req *registrationRequest) toDomain() *domain.CourseRegistration {
	return &domain.CourseRegistration{
		UserID:      req.UserID,
		SubjectID:   req.SubjectID,
		HostClassID: req.HostClassID,
		Semester:    req.Semester,
		Year:        req.Year,
	}
}

// Create adds a teaching session.
//
// @Summary      Create a schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      scheduleRequest  true  "Schedule details"
// @Success      201   {object}  domain.Schedule
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := req.toDomain()
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), schedule)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one schedule.
//
// @Summary      Get a schedule
// @Tags         schedules
// @Produce      json
// @Param        schedule_id  path      int  true  "Schedule ID"
// @Success      200          {object}  domain.Schedule
// @Failure      404          {object}  map[string]string
// @Router       /api/schedules/{schedule_id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := pathInt64(c, "schedule_id")
	if err != nil {
		return err
	}
	schedule, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// List returns schedules.
//
// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Param        skip   query  int  false  "Rows to skip"
// @Param        limit  query  int  false  "Max rows"
// @Success      200    {array}  domain.Schedule
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	skip, limit := listRange(c)
	schedules, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedules)
}

// Update replaces a schedule.
//
// @Summary      Update a schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        schedule_id  path      int              true  "Schedule ID"
// @Param        body         body      scheduleRequest  true  "New details"
// @Success      200          {object}  domain.Schedule
// @Failure      404          {object}  map[string]string
// @Router       /api/schedules/{schedule_id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := pathInt64(c, "schedule_id")
	if err != nil {
		return err
	}

	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	schedule, err := req.toDomain()
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, schedule)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

type setOpenRequest struct {
	IsOpen bool `json:"is_open"`
}

// SetOpen opens or closes a schedule for attendance.
//
// @Summary      Open or close a schedule
// @Tags         schedules
// @Accept       json
// @Security     BasicAuth
// @Param        schedule_id  path  int             true  "Schedule ID"
// @Param        body         body  setOpenRequest  true  "Open flag"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/schedules/{schedule_id}/open [patch]
func (h *ScheduleHandler) SetOpen(c echo.Context) error {
	id, err := pathInt64(c, "schedule_id")
	if err != nil {
		return err
	}

	var req setOpenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetOpen(c.Request().Context(), id, req.IsOpen); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a schedule.
//
// @Summary      Delete a schedule
// @Tags         schedules
// @Security     BasicAuth
// @Param        schedule_id  path  int  true  "Schedule ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/schedules/{schedule_id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := pathInt64(c, "schedule_id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register enrolls a user into a subject.
//
// @Summary      Create a course registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      registrationRequest  true  "Registration details"
// @Success      201   {object}  domain.CourseRegistration
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/registrations [post]
func (h *ScheduleHandler) Register(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Register(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// GetRegistration returns one registration.
//
// @Summary      Get a course registration
// @Tags         registrations
// @Produce      json
// @Param        reg_id  path      int  true  "Registration ID"
// @Success      200     {object}  domain.CourseRegistration
// @Failure      404     {object}  map[string]string
// @Router       /api/registrations/{reg_id} [get]
func (h *ScheduleHandler) GetRegistration(c echo.Context) error {
	id, err := pathInt64(c, "reg_id")
	if err != nil {
		return err
	}
	reg, err := h.service.GetRegistration(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reg)
}

// ListRegistrations returns registrations, optionally scoped to a user.
//
// @Summary      List course registrations
// @Tags         registrations
// @Produce      json
// @Param        user_id  query  string  false  "Filter by user"
// @Param        skip     query  int     false  "Rows to skip"
// @Param        limit    query  int     false  "Max rows"
// @Success      200      {array}  domain.CourseRegistration
// @Router       /api/registrations [get]
func (h *ScheduleHandler) ListRegistrations(c echo.Context) error {
	skip, limit := listRange(c)
	regs, err := h.service.ListRegistrations(c.Request().Context(), c.QueryParam("user_id"), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// UpdateRegistration replaces a registration.
//
// @Summary      Update a course registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        reg_id  path      int                  true  "Registration ID"
// @Param        body    body      registrationRequest  true  "New details"
// @Success      200     {object}  domain.CourseRegistration
// @Failure      404     {object}  map[string]string
// @Router       /api/registrations/{reg_id} [put]
func (h *ScheduleHandler) UpdateRegistration(c echo.Context) error {
	id, err := pathInt64(c, "reg_id")
	if err != nil {
		return err
	}

	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateRegistration(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRegistration removes a registration.
//
// @Summary      Delete a course registration
// @Tags         registrations
// @Security     BasicAuth
// @Param        reg_id  path  int  true  "Registration ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/registrations/{reg_id} [delete]
func (h *ScheduleHandler) DeleteRegistration(c echo.Context) error {
	id, err := pathInt64(c, "reg_id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteRegistration(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
