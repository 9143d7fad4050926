package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// UserHandler handles HTTP requests for identity records.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	ClassID  string `json:"class_id"`
	FullName string `json:"full_name" validate:"required"`
}

// Create adds a new user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      userRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), &domain.User{
		UserID:   req.UserID,
		ClassID:  req.ClassID,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Get returns one user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  domain.User
// @Failure      404      {object}  map[string]string
// @Router       /api/users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List returns users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        skip   query  int  false  "Rows to skip"
// @Param        limit  query  int  false  "Max rows"
// @Success      200    {array}  domain.User
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	skip, limit := listRange(c)
	users, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update replaces a user record.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        user_id  path      string       true  "User ID"
// @Param        body     body      userRequest  true  "New details"
// @Success      200      {object}  domain.User
// @Failure      404      {object}  map[string]string
// @Router       /api/users/{user_id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("user_id"), &domain.User{
		UserID:   c.Param("user_id"),
		ClassID:  req.ClassID,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BasicAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{user_id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
