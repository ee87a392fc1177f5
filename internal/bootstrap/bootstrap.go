package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/skytech/srms/internal/app/controllers"
	appMigrations "github.com/skytech/srms/internal/app/migrations"
	appRepos "github.com/skytech/srms/internal/app/repositories"
	appRoutes "github.com/skytech/srms/internal/app/routes"
	appServices "github.com/skytech/srms/internal/app/services"
	"github.com/skytech/srms/internal/config"
	"github.com/skytech/srms/internal/db"
	appMiddleware "github.com/skytech/srms/internal/middleware"
	"github.com/skytech/srms/internal/pkg/logger"
)

// Dependencies holds all the application dependencies, built by explicit
// construction: stores first, then services, then controllers.
type Dependencies struct {
	StudentService       *appServices.StudentService
	CourseService        *appServices.CourseService
	EnrollmentService    *appServices.EnrollmentService
	ReportService        *appServices.ReportService
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	ReportController     *appControllers.ReportController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies wires stores, services and controllers together.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(dbPool)

	studentService := appServices.NewStudentService(repos.StudentRepository)
	courseService := appServices.NewCourseService(repos.CourseRepository)
	enrollmentService := appServices.NewEnrollmentService(
		repos.EnrollmentRepository,
		repos.StudentRepository,
		repos.CourseRepository,
	)
	reportService := appServices.NewReportService(studentService, courseService, enrollmentService)

	return &Dependencies{
		StudentService:       studentService,
		CourseService:        courseService,
		EnrollmentService:    enrollmentService,
		ReportService:        reportService,
		StudentController:    appControllers.NewStudentController(studentService),
		CourseController:     appControllers.NewCourseController(courseService),
		EnrollmentController: appControllers.NewEnrollmentController(enrollmentService),
		ReportController:     appControllers.NewReportController(reportService),
		Repos:                repos,
		Logger:               lgr,
	}
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.ReportController,
	)

	return router
}
