package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// FingerprintHandler handles HTTP requests for biometric enrollment.
// Template bytes travel as base64 in JSON ([]byte marshalling).
type FingerprintHandler struct {
	service ports.FingerprintService
}

func NewFingerprintHandler(service ports.FingerprintService) *FingerprintHandler {
	return &FingerprintHandler{service: service}
}

type fingerprintRequest struct {
	FingerID   string `json:"finger_id" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
	FingerData []byte `json:"finger_data" validate:"required"`
}

// Create enrolls a fingerprint template for a user.
//
// @Summary      Enroll a fingerprint
// @Tags         fingerprints
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      fingerprintRequest  true  "Template details (finger_data is base64)"
// @Success      201   {object}  domain.Fingerprint
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/fingerprints [post]
func (h *FingerprintHandler) Create(c echo.Context) error {
	var req fingerprintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Fingerprint{
		FingerID:   req.FingerID,
		UserID:     req.UserID,
		FingerData: req.FingerData,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one enrolled template.
//
// @Summary      Get a fingerprint
// @Tags         fingerprints
// @Produce      json
// @Security     BasicAuth
// @Param        finger_id  path      string  true  "Fingerprint ID"
// @Success      200        {object}  domain.Fingerprint
// @Failure      404        {object}  map[string]string
// @Router       /api/fingerprints/{finger_id} [get]
func (h *FingerprintHandler) Get(c echo.Context) error {
	fp, err := h.service.Get(c.Request().Context(), c.Param("finger_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fp)
}

// List returns enrolled templates, optionally scoped to a user.
//
// @Summary      List fingerprints
// @Tags         fingerprints
// @Produce      json
// @Security     BasicAuth
// @Param        user_id  query  string  false  "Filter by user"
// @Param        skip     query  int     false  "Rows to skip"
// @Param        limit    query  int     false  "Max rows"
// @Success      200      {array}  domain.Fingerprint
// @Router       /api/fingerprints [get]
func (h *FingerprintHandler) List(c echo.Context) error {
	if userID := c.QueryParam("user_id"); userID != "" {
		fps, err := h.service.ListByUser(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, fps)
	}

	skip, limit := listRange(c)
	fps, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fps)
}

// Update replaces an enrolled template.
//
// @Summary      Update a fingerprint
// @Tags         fingerprints
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        finger_id  path      string              true  "Fingerprint ID"
// @Param        body       body      fingerprintRequest  true  "New template"
// @Success      200        {object}  domain.Fingerprint
// @Failure      404        {object}  map[string]string
// @Router       /api/fingerprints/{finger_id} [put]
func (h *FingerprintHandler) Update(c echo.Context) error {
	var req fingerprintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("finger_id"), &domain.Fingerprint{
		FingerID:   c.Param("finger_id"),
		UserID:     req.UserID,
		FingerData: req.FingerData,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an enrolled template.
//
// @Summary      Delete a fingerprint
// @Tags         fingerprints
// @Security     BasicAuth
// @Param        finger_id  path  string  true  "Fingerprint ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/fingerprints/{finger_id} [delete]
func (h *FingerprintHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("finger_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
