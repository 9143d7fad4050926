package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// AttendanceHandler handles HTTP requests for attendance records.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type attendanceRequest struct {
	ScheduleID int64  `json:"schedule_id" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
	AttendTime int64  `json:"attend_time"` // unix seconds; 0 = server time
	Status     bool   `json:"status"`
}

func (req *attendanceRequest) toDomain() *domain.Attendance {
	attendTime := time.Now().UTC()
	if req.AttendTime != 0 {
		attendTime = time.Unix(req.AttendTime, 0).UTC()
	}
	return &domain.Attendance{
		ScheduleID: req.ScheduleID,
		UserID:     req.UserID,
		AttendTime: attendTime,
		Status:     req.Status,
	}
}

// Create inserts an attendance record directly (admin correction path; the
// hardware path goes through the check-in queue instead).
//
// @Summary      Create an attendance record
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      attendanceRequest  true  "Attendance details"
// @Success      201   {object}  domain.Attendance
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Create(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one attendance record.
//
// @Summary      Get an attendance record
// @Tags         attendance
// @Produce      json
// @Param        attend_id  path      int  true  "Attendance ID"
// @Success      200        {object}  domain.Attendance
// @Failure      404        {object}  map[string]string
// @Router       /api/attendance/{attend_id} [get]
func (h *AttendanceHandler) Get(c echo.Context) error {
	id, err := pathInt64(c, "attend_id")
	if err != nil {
		return err
	}
	record, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// List returns attendance records, optionally scoped to a schedule.
//
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Param        schedule_id  query  int  false  "Filter by schedule"
// @Param        skip         query  int  false  "Rows to skip"
// @Param        limit        query  int  false  "Max rows"
// @Success      200          {array}  domain.Attendance
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	skip, limit := listRange(c)

	if c.QueryParam("schedule_id") != "" {
		scheduleID, err := queryInt64(c, "schedule_id")
		if err != nil {
			return err
		}
		records, err := h.service.ListBySchedule(c.Request().Context(), scheduleID, skip, limit)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, records)
	}

	records, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Update replaces an attendance record.
//
// @Summary      Update an attendance record
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        attend_id  path      int                true  "Attendance ID"
// @Param        body       body      attendanceRequest  true  "New details"
// @Success      200        {object}  domain.Attendance
// @Failure      404        {object}  map[string]string
// @Router       /api/attendance/{attend_id} [put]
func (h *AttendanceHandler) Update(c echo.Context) error {
	id, err := pathInt64(c, "attend_id")
	if err != nil {
		return err
	}

	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an attendance record.
//
// @Summary      Delete an attendance record
// @Tags         attendance
// @Security     BasicAuth
// @Param        attend_id  path  int  true  "Attendance ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/attendance/{attend_id} [delete]
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id, err := pathInt64(c, "attend_id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
