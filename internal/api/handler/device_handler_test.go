package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/ports"
)

type captureQueue struct {
	inputs []ports.CheckinInput
}

func (q *captureQueue) Enqueue(input ports.CheckinInput) {
	q.inputs = append(q.inputs, input)
}

func (q *captureQueue) EnqueueBatch(inputs []ports.CheckinInput) {
	q.inputs = append(q.inputs, inputs...)
}

func TestDeviceHandler_Checkin_Accepted(t *testing.T) {
	queue := &captureQueue{}
	h := NewDeviceHandler(queue)

	c, rec := newTestContext(t, http.MethodPost, "/api/device/checkin",
		`{"user_id":"sv001","schedule_id":7,"device_time":1767600000}`)
	if err := h.Checkin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(queue.inputs) != 1 {
		t.Fatalf("expected one enqueued check-in, got %d", len(queue.inputs))
	}
	in := queue.inputs[0]
	if in.UserID != "sv001" || in.ScheduleID != 7 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.DeviceTime.Equal(time.Unix(1767600000, 0).UTC()) {
		t.Fatalf("unexpected device time: %v", in.DeviceTime)
	}
}

func TestDeviceHandler_Checkin_DefaultsToServerTime(t *testing.T) {
	queue := &captureQueue{}
	h := NewDeviceHandler(queue)

	before := time.Now().UTC()
	c, _ := newTestContext(t, http.MethodPost, "/api/device/checkin",
		`{"user_id":"sv001","schedule_id":7}`)
	if err := h.Checkin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	got := queue.inputs[0].DeviceTime
	if got.Before(before.Add(-time.Second)) || got.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("expected server-side timestamp, got %v", got)
	}
}

func TestDeviceHandler_Checkin_MissingFields(t *testing.T) {
	queue := &captureQueue{}
	h := NewDeviceHandler(queue)

	c, _ := newTestContext(t, http.MethodPost, "/api/device/checkin", `{"user_id":"sv001"}`)
	err := h.Checkin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(queue.inputs) != 0 {
		t.Fatalf("expected nothing enqueued")
	}
}

func TestDeviceHandler_CheckinBatch_PreservesOrder(t *testing.T) {
	queue := &captureQueue{}
	h := NewDeviceHandler(queue)

	c, rec := newTestContext(t, http.MethodPost, "/api/device/checkin/batch",
		`[{"user_id":"sv001","schedule_id":7,"device_time":1767600000},
		  {"user_id":"sv001","schedule_id":7,"device_time":1767600060},
		  {"user_id":"sv002","schedule_id":7,"device_time":1767600030}]`)
	if err := h.CheckinBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(queue.inputs) != 3 {
		t.Fatalf("expected 3 enqueued, got %d", len(queue.inputs))
	}
	if queue.inputs[0].DeviceTime.After(queue.inputs[1].DeviceTime) {
		t.Fatalf("expected submission order preserved")
	}
}

func TestDeviceHandler_CheckinBatch_EmptyRejected(t *testing.T) {
	queue := &captureQueue{}
	h := NewDeviceHandler(queue)

	c, _ := newTestContext(t, http.MethodPost, "/api/device/checkin/batch", `[]`)
	err := h.CheckinBatch(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %v", err)
	}
}
