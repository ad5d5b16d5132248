package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/student-api/internal/app/controllers"
	appMigrations "github.com/yigit/student-api/internal/app/migrations"
	appRepos "github.com/yigit/student-api/internal/app/repositories"
	appRoutes "github.com/yigit/student-api/internal/app/routes"
	appServices "github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/config"
	"github.com/yigit/student-api/internal/db"
	appMiddleware "github.com/yigit/student-api/internal/middleware"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// Dependencies holds the services and the controllers built on them
type Dependencies struct {
	Services    *appServices.Services
	Controllers appRoutes.Controllers
}

// LoggerConfig translates the logging section of the config for the logger package.
func LoggerConfig(cfg *config.Config) logger.Config {
	lc := logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	}
	if cfg.Logging.FilePath != "" {
		lc.File = &logger.FileConfig{
			Path:       cfg.Logging.FilePath,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		}
	}
	return lc
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lc := LoggerConfig(cfg)
	logger.Configure(lc)

	lgr := logger.Get()
	event := lgr.Info().Str("logLevel", string(lc.Level)).Str("logFormat", cfg.Logging.Format)
	if lc.File != nil {
		event = event.Str("logFile", lc.File.Path)
	}
	event.Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Establishing database connection...")

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{}

	repos := appRepos.NewRepositories(db.NewExecutor(database.Pool, lgr))
	deps.Services = appServices.NewServices(repos, appServices.Options{
		ConflictPrecheck: cfg.Features.ConflictPrecheck,
	})

	deps.Controllers = appRoutes.Controllers{
		Health:  appControllers.NewHealthController(database),
		Student: appControllers.NewStudentController(deps.Services.StudentService),
		User:    appControllers.NewUserController(deps.Services.UserService),
		Market:  appControllers.NewMarketController(deps.Services.MarketService),
		Vendor:  appControllers.NewVendorController(deps.Services.VendorService),
		Article: appControllers.NewArticleController(deps.Services.ArticleService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.ConfigureValidator()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.ErrorHandler(),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
