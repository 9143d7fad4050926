package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// AccountHandler handles HTTP requests for login and account management.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type loginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type accountRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student lecturer admin"`
}

type accountResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{UserID: a.UserID, Role: a.Role.String()}
}

// Login authenticates a user by password and returns a bearer token.
//
// @Summary      Login with user ID and password
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.UserID,
		Role:        result.Role.String(),
	})
}

// Create registers login credentials for an existing user.
//
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      accountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.Create(c.Request().Context(), req.UserID, req.Password, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Get returns one account (password hash excluded).
//
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Security     BasicAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  accountResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/accounts/{user_id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// List returns accounts, optionally filtered by role.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BasicAuth
// @Param        role   query     string  false  "Filter by role"
// @Param        skip   query     int     false  "Rows to skip"
// @Param        limit  query     int     false  "Max rows"
// @Success      200    {array}   accountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	skip, limit := listRange(c)

	var (
		accounts []domain.Account
		err      error
	)
	if roleParam := c.QueryParam("role"); roleParam != "" {
		role, perr := domain.ParseRole(roleParam)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, perr.Error())
		}
		accounts, err = h.service.ListByRole(c.Request().Context(), role, skip, limit)
	} else {
		accounts, err = h.service.List(c.Request().Context(), skip, limit)
	}
	if err != nil {
		return err
	}

	resp := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toAccountResponse(&accounts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update replaces an account's password and role.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        user_id  path      string          true  "User ID"
// @Param        body     body      accountRequest  true  "New credentials"
// @Success      200      {object}  accountResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/accounts/{user_id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.Update(c.Request().Context(), c.Param("user_id"), req.Password, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Delete removes an account.
//
// @Summary      Delete an account
// @Tags         accounts
// @Security     BasicAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/accounts/{user_id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
