package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// ProfileHandler handles HTTP requests for student and lecturer profiles.
// Both record types are keyed by the user they belong to.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type studentProfileRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"` // YYYY-MM-DD
	Gender    *bool  `json:"gender" validate:"required"`
	Phone     string `json:"phone" validate:"required,max=15"`
	Address   string `json:"address" validate:"required"`
}

func (req *studentProfileRequest) toDomain() (*domain.StudentProfile, error) {
	birthDate, err := time.ParseInLocation("2006-01-02", req.BirthDate, time.UTC)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}
	return &domain.StudentProfile{
		UserID:    req.UserID,
		BirthDate: birthDate,
		Gender:    *req.Gender,
		Phone:     req.Phone,
		Address:   req.Address,
	}, nil
}

type lecturerProfileRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	FacultyID       string `json:"faculty_id" validate:"required"`
	Degree          string `json:"degree" validate:"required"`
	ResearchArea    string `json:"research_area"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (req *lecturerProfileRequest) toDomain() *domain.LecturerProfile {
	return &domain.LecturerProfile{
		UserID:          req.UserID,
		FacultyID:       req.FacultyID,
		Degree:          req.Degree,
		ResearchArea:    req.ResearchArea,
		ProfileImageURL: req.ProfileImageURL,
	}
}

// CreateStudent adds a student profile.
//
// @Summary      Create a student profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      studentProfileRequest  true  "Profile details"
// @Success      201   {object}  domain.StudentProfile
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/student-profiles [post]
func (h *ProfileHandler) CreateStudent(c echo.Context) error {
	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := req.toDomain()
	if err != nil {
		return err
	}
	created, err := h.service.CreateStudent(c.Request().Context(), profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// GetStudent returns one student profile by user ID.
//
// @Summary      Get a student profile
// @Tags         profiles
// @Produce      json
// @Security     BasicAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  domain.StudentProfile
// @Failure      404      {object}  map[string]string
// @Router       /api/student-profiles/{user_id} [get]
func (h *ProfileHandler) GetStudent(c echo.Context) error {
	profile, err := h.service.GetStudent(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListStudents returns student profiles with pagination.
func (h *ProfileHandler) ListStudents(c echo.Context) error {
	skip, limit := listRange(c)
	profiles, err := h.service.ListStudents(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// UpdateStudent replaces a student profile.
func (h *ProfileHandler) UpdateStudent(c echo.Context) error {
	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := req.toDomain()
	if err != nil {
		return err
	}
	updated, err := h.service.UpdateStudent(c.Request().Context(), c.Param("user_id"), profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student profile.
func (h *ProfileHandler) DeleteStudent(c echo.Context) error {
	if err := h.service.DeleteStudent(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateLecturer adds a lecturer profile.
//
// @Summary      Create a lecturer profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      lecturerProfileRequest  true  "Profile details"
// @Success      201   {object}  domain.LecturerProfile
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/lecturer-profiles [post]
func (h *ProfileHandler) CreateLecturer(c echo.Context) error {
	var req lecturerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateLecturer(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// GetLecturer returns one lecturer profile by user ID.
//
// @Summary      Get a lecturer profile
// @Tags         profiles
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  domain.LecturerProfile
// @Failure      404      {object}  map[string]string
// @Router       /api/lecturer-profiles/{user_id} [get]
func (h *ProfileHandler) GetLecturer(c echo.Context) error {
	profile, err := h.service.GetLecturer(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListLecturers returns lecturer profiles with pagination.
func (h *ProfileHandler) ListLecturers(c echo.Context) error {
	skip, limit := listRange(c)
	profiles, err := h.service.ListLecturers(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// UpdateLecturer replaces a lecturer profile.
func (h *ProfileHandler) UpdateLecturer(c echo.Context) error {
	var req lecturerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateLecturer(c.Request().Context(), c.Param("user_id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteLecturer removes a lecturer profile.
func (h *ProfileHandler) DeleteLecturer(c echo.Context) error {
	if err := h.service.DeleteLecturer(c.Request().Context(), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the profile belonging to the token subject: the student record
// for student tokens, the lecturer record for lecturer tokens.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(domain.Role)

	switch role {
	case domain.RoleStudent:
		profile, err := h.service.GetStudent(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, profile)
	case domain.RoleLecturer:
		profile, err := h.service.GetLecturer(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, profile)
	default:
		return domain.ErrProfileNotFound
	}
}
