package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campushq/attendance-system/docs"
	"github.com/campushq/attendance-system/internal/api/handler"
	"github.com/campushq/attendance-system/internal/api/middleware"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

// RouterDeps carries everything the router needs: constructed handlers,
// the auth primitives the gates wrap, and the raw clients for readiness
// probes.
type RouterDeps struct {
	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger

	AdminCreds  *auth.AdminCredentials
	HardwareKey string
	ReplayGuard *auth.ReplayGuard
	Tokens      *auth.TokenService

	Accounts     *handler.AccountHandler
	Users        *handler.UserHandler
	Profiles     *handler.ProfileHandler
	Schedules    *handler.ScheduleHandler
	Attendance   *handler.AttendanceHandler
	Fingerprints *handler.FingerprintHandler
	Device       *handler.DeviceHandler

	Faculties *handler.CatalogHandler[domain.Faculty]
	Majors    *handler.CatalogHandler[domain.Major]
	EduLevels *handler.CatalogHandler[domain.EducationLevel]
	Classes   *handler.CatalogHandler[domain.Class]
	Subjects  *handler.CatalogHandler[domain.Subject]
	Rooms     *handler.CatalogHandler[domain.Room]
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Gates ---
	adminGate := middleware.AdminAuth(deps.AdminCreds)
	hybridGate := middleware.DeviceOrAdmin(deps.AdminCreds, deps.HardwareKey, deps.ReplayGuard)
	bearerGate := middleware.Auth(deps.Tokens, deps.Log)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	g := e.Group("/api")

	// --- Login (public) ---
	g.POST("/login", deps.Accounts.Login)

	// --- Accounts (admin only, credentials live here) ---
	g.POST("/accounts", deps.Accounts.Create, adminGate)
	g.GET("/accounts", deps.Accounts.List, adminGate)
	g.GET("/accounts/:user_id", deps.Accounts.Get, adminGate)
	g.PUT("/accounts/:user_id", deps.Accounts.Update, adminGate)
	g.DELETE("/accounts/:user_id", deps.Accounts.Delete, adminGate)

	// --- Users: reads open, mutations admin ---
	g.GET("/users", deps.Users.List)
	g.GET("/users/:user_id", deps.Users.Get)
	g.POST("/users", deps.Users.Create, adminGate)
	g.PUT("/users/:user_id", deps.Users.Update, adminGate)
	g.DELETE("/users/:user_id", deps.Users.Delete, adminGate)

	// --- Profiles: student records are personal data, admin only;
	// lecturer records are the public directory, mutations admin ---
	g.POST("/student-profiles", deps.Profiles.CreateStudent, adminGate)
	g.GET("/student-profiles", deps.Profiles.ListStudents, adminGate)
	g.GET("/student-profiles/:user_id", deps.Profiles.GetStudent, adminGate)
	g.PUT("/student-profiles/:user_id", deps.Profiles.UpdateStudent, adminGate)
	g.DELETE("/student-profiles/:user_id", deps.Profiles.DeleteStudent, adminGate)

	g.GET("/lecturer-profiles", deps.Profiles.ListLecturers)
	g.GET("/lecturer-profiles/:user_id", deps.Profiles.GetLecturer)
	g.POST("/lecturer-profiles", deps.Profiles.CreateLecturer, adminGate)
	g.PUT("/lecturer-profiles/:user_id", deps.Profiles.UpdateLecturer, adminGate)
	g.DELETE("/lecturer-profiles/:user_id", deps.Profiles.DeleteLecturer, adminGate)

	// --- Academic catalogs ---
	deps.Faculties.Register(g, "/faculties", adminGate)
	deps.Majors.Register(g, "/majors", adminGate)
	deps.EduLevels.Register(g, "/education-levels", adminGate)
	deps.Classes.Register(g, "/classes", adminGate)
	deps.Subjects.Register(g, "/subjects", adminGate)
	deps.Rooms.Register(g, "/rooms", adminGate)

	// --- Schedules and registrations ---
	g.GET("/schedules", deps.Schedules.List)
	g.GET("/schedules/:schedule_id", deps.Schedules.Get)
	g.POST("/schedules", deps.Schedules.Create, adminGate)
	g.PUT("/schedules/:schedule_id", deps.Schedules.Update, adminGate)
	g.PATCH("/schedules/:schedule_id/open", deps.Schedules.SetOpen, adminGate)
	g.DELETE("/schedules/:schedule_id", deps.Schedules.Delete, adminGate)

	g.GET("/registrations", deps.Schedules.ListRegistrations)
	g.GET("/registrations/:reg_id", deps.Schedules.GetRegistration)
	g.POST("/registrations", deps.Schedules.Register, adminGate)
	g.PUT("/registrations/:reg_id", deps.Schedules.UpdateRegistration, adminGate)
	g.DELETE("/registrations/:reg_id", deps.Schedules.DeleteRegistration, adminGate)

	// --- Attendance records ---
	g.GET("/attendance", deps.Attendance.List)
	g.GET("/attendance/:attend_id", deps.Attendance.Get)
	g.POST("/attendance", deps.Attendance.Create, adminGate)
	g.PUT("/attendance/:attend_id", deps.Attendance.Update, adminGate)
	g.DELETE("/attendance/:attend_id", deps.Attendance.Delete, adminGate)

	// --- Fingerprints (biometric data never served anonymously) ---
	g.GET("/fingerprints", deps.Fingerprints.List, adminGate)
	g.GET("/fingerprints/:finger_id", deps.Fingerprints.Get, adminGate)
	g.POST("/fingerprints", deps.Fingerprints.Create, adminGate)
	g.PUT("/fingerprints/:finger_id", deps.Fingerprints.Update, adminGate)
	g.DELETE("/fingerprints/:finger_id", deps.Fingerprints.Delete, adminGate)

	// --- Device check-in: hardware key or an admin, replay-guarded ---
	g.POST("/device/checkin", deps.Device.Checkin, hybridGate)
	g.POST("/device/checkin/batch", deps.Device.CheckinBatch, hybridGate)

	// --- Token-bearing self-service ---
	me := g.Group("/me", bearerGate)
	me.GET("", claimsHandler())
	me.GET("/profile", deps.Profiles.Me, middleware.RBAC(domain.RoleStudent, domain.RoleLecturer))
	me.GET("/registrations", myRegistrations(deps.Schedules), middleware.RBAC(domain.RoleStudent, domain.RoleAdmin))

	return e
}

// claimsHandler answers GET /api/me with the claims of the presented token.
func claimsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, _ := c.Get("user_id").(string)
		role, _ := c.Get("role").(domain.Role)
		return c.JSON(http.StatusOK, map[string]string{
			"user_id": userID,
			"role":    role.String(),
		})
	}
}

// myRegistrations scopes the registration listing to the token subject,
// ignoring any user_id query parameter.
func myRegistrations(h *handler.ScheduleHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, _ := c.Get("user_id").(string)
		c.QueryParams().Set("user_id", userID)
		return h.ListRegistrations(c)
	}
}
