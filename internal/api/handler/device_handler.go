package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/ports"
)

// CheckinEnqueuer accepts check-in submissions for asynchronous processing.
type CheckinEnqueuer interface {
	Enqueue(input ports.CheckinInput)
	EnqueueBatch(inputs []ports.CheckinInput)
}

// DeviceHandler handles submissions from attendance terminals. Requests
// arrive through the hybrid gate: either the device API key or an admin
// exercising the endpoint manually.
type DeviceHandler struct {
	queue CheckinEnqueuer
}

func NewDeviceHandler(queue CheckinEnqueuer) *DeviceHandler {
	return &DeviceHandler{queue: queue}
}

type checkinRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	ScheduleID int64  `json:"schedule_id" validate:"required"`
	DeviceTime int64  `json:"device_time"` // unix seconds; 0 = server time
}

func (req *checkinRequest) toInput() ports.CheckinInput {
	deviceTime := time.Now().UTC()
	if req.DeviceTime != 0 {
		deviceTime = time.Unix(req.DeviceTime, 0).UTC()
	}
	return ports.CheckinInput{
		UserID:     req.UserID,
		ScheduleID: req.ScheduleID,
		DeviceTime: deviceTime,
	}
}

type checkinAccepted struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Checkin enqueues a single check-in for asynchronous processing.
//
// @Summary      Submit a device check-in
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        X-TIMESTAMP  header    string          true  "Unix timestamp of the request"
// @Param        X-API-KEY    header    string          false "Device hardware key"
// @Param        body         body      checkinRequest  true  "Check-in event"
// @Success      202          {object}  checkinAccepted
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Failure      403          {object}  map[string]string
// @Router       /api/device/checkin [post]
func (h *DeviceHandler) Checkin(c echo.Context) error {
	var req checkinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.queue.Enqueue(req.toInput())
	return c.JSON(http.StatusAccepted, checkinAccepted{Status: "queued", Count: 1})
}

// CheckinBatch enqueues a batch of buffered check-ins, preserving per-user
// ordering. Terminals flush their offline buffer through this endpoint.
//
// @Summary      Submit buffered device check-ins
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        X-TIMESTAMP  header    string            true  "Unix timestamp of the request"
// @Param        X-API-KEY    header    string            false "Device hardware key"
// @Param        body         body      []checkinRequest  true  "Check-in events"
// @Success      202          {object}  checkinAccepted
// @Failure      400          {object}  map[string]string
// @Router       /api/device/checkin/batch [post]
func (h *DeviceHandler) CheckinBatch(c echo.Context) error {
	var reqs []checkinRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty batch")
	}

	inputs := make([]ports.CheckinInput, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		inputs = append(inputs, reqs[i].toInput())
	}

	h.queue.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, checkinAccepted{Status: "queued", Count: len(inputs)})
}
