// Campus attendance backend: academic catalog CRUD, schedules, course
// registrations and asynchronous device check-in ingestion.
//
// @title        Campus Attendance API
// @version      1.0
// @description  Biometric attendance backend with hybrid device/admin authentication.
// @BasePath     /
//
// @securityDefinitions.basic  BasicAuth
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushq/attendance-system/internal/api"
	"github.com/campushq/attendance-system/internal/api/handler"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/service"
	mongodb "github.com/campushq/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/campushq/attendance-system/internal/infrastructure/db/redis"
	"github.com/campushq/attendance-system/internal/infrastructure/queue"
	"github.com/campushq/attendance-system/internal/pkg/config"
	"github.com/campushq/attendance-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "attendance-api",
		Pretty:  cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	accounts := mongodb.NewAccountRepository(db)
	users := mongodb.NewUserRepository(db)
	studentProfiles := mongodb.NewStudentProfileRepository(db)
	lecturerProfiles := mongodb.NewLecturerProfileRepository(db)
	schedules := mongodb.NewScheduleRepository(db)
	registrations := mongodb.NewRegistrationRepository(db)
	attendance := mongodb.NewAttendanceRepository(db)
	fingerprints := mongodb.NewFingerprintRepository(db)

	faculties := mongodb.NewFacultyRepository(db)
	majors := mongodb.NewMajorRepository(db)
	eduLevels := mongodb.NewEducationLevelRepository(db)
	classes := mongodb.NewClassRepository(db)
	subjects := mongodb.NewSubjectRepository(db)
	rooms := mongodb.NewRoomRepository(db)

	// --- Auth primitives (SECRET_KEY backs both the admin login and tokens) ---
	adminCreds := auth.NewAdminCredentials(cfg.AdminUsername, cfg.SecretKey)
	replayGuard := auth.NewReplayGuard(cfg.ReplayWindow)
	hasher := auth.NewHasher()
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	// --- Services ---
	accountService := service.NewAccountService(accounts, users, hasher, tokens)
	userService := service.NewUserService(users, classes)
	profileService := service.NewProfileService(studentProfiles, lecturerProfiles, users, faculties)
	scheduleService := service.NewScheduleService(schedules, registrations, users, subjects, rooms, classes)
	attendanceService := service.NewAttendanceService(attendance, schedules, users, redisdb.NewDedupChecker(rdb), log)
	fingerprintService := service.NewFingerprintService(fingerprints, users)

	// --- Check-in pipeline ---
	dispatcher := queue.NewDispatcher(cfg.CheckinWorkers, attendanceService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		Mongo: db,
		Redis: rdb,
		Log:   log,

		AdminCreds:  adminCreds,
		HardwareKey: cfg.HardwareAPIKey,
		ReplayGuard: replayGuard,
		Tokens:      tokens,

		Accounts:     handler.NewAccountHandler(accountService),
		Users:        handler.NewUserHandler(userService),
		Profiles:     handler.NewProfileHandler(profileService),
		Schedules:    handler.NewScheduleHandler(scheduleService),
		Attendance:   handler.NewAttendanceHandler(attendanceService),
		Fingerprints: handler.NewFingerprintHandler(fingerprintService),
		Device:       handler.NewDeviceHandler(dispatcher),

		Faculties: handler.NewCatalogHandler[domain.Faculty](faculties, "faculty_id"),
		Majors:    handler.NewCatalogHandler[domain.Major](majors, "major_id"),
		EduLevels: handler.NewCatalogHandler[domain.EducationLevel](eduLevels, "edu_level_id"),
		Classes:   handler.NewCatalogHandler[domain.Class](classes, "class_id"),
		Subjects:  handler.NewCatalogHandler[domain.Subject](subjects, "subject_id"),
		Rooms:     handler.NewCatalogHandler[domain.Room](rooms, "room_id"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
