package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appMigrations "github.com/yigit/hostel/internal/app/migrations"
	appRepos "github.com/yigit/hostel/internal/app/repositories"
	appServices "github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/app/store"
	"github.com/yigit/hostel/internal/config"
	"github.com/yigit/hostel/internal/db"
	"github.com/yigit/hostel/internal/pkg/filestorage"
	"github.com/yigit/hostel/internal/pkg/logger"
	"github.com/yigit/hostel/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config   *config.Config
	Store    *store.Store
	Repos    *appRepos.Repositories
	Services *appServices.Services
	Logger   zerolog.Logger

	closers []func() error
}

// Close releases the database pool and the log file, in reverse order of acquisition
func (d *Dependencies) Close() error {
	var errs error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, d.closers[i]())
	}
	d.closers = nil
	return errs
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Every log line of the run carries the same session id.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, func() error, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, nil, err
	}

	output, closeOutput, err := logger.OpenOutput(cfg.Logging.File)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: output,
	})

	// Detach the global logger from the file before it is closed
	closeLog := func() error {
		logger.Configure(logger.Config{Level: logger.WarnLevel, Pretty: true})
		return closeOutput()
	}

	lgr := log.Logger.With().Str("session", uuid.NewString()).Logger()
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Str("storage", cfg.Storage.Driver).
		Msg("Logger configured")
	return cfg, lgr, closeLog, nil
}

// SetupStorage opens the configured backing store. The returned close func is never nil.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return setupDatabase(ctx, cfg, lgr)
	default:
		storage, err := filestorage.NewLocalStorage(cfg.Storage.DataDir)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize file storage")
			return nil, nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		lgr.Info().
			Str("dataDir", storage.BasePath()).
			Str("studentFile", cfg.Storage.StudentFile).
			Str("attendanceFile", cfg.Storage.AttendanceFile).
			Msg("File storage ready")
		repos := appRepos.NewFileRepositories(storage, cfg.Storage.StudentFile, cfg.Storage.AttendanceFile)
		return repos, func() error { return nil }, nil
	}
}

// setupDatabase establishes the database connection, runs migrations and seeds departments
func setupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func() error, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	closeDB := func() error {
		database.Close()
		return nil
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Students reference departments, so a failed seed is fatal here
	if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to seed departments: %w", err)
	}

	return appRepos.NewPostgresRepositories(database), closeDB, nil
}

// BuildDependencies initializes storage, the in-memory store and the services
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Logger: lgr}

	repos, closeStorage, err := SetupStorage(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.Repos = repos
	deps.closers = append(deps.closers, closeStorage)

	deps.Store = store.New(cfg.Hostel.RoomCapacity)
	deps.Services = appServices.NewServices(deps.Store, repos, appServices.Options{
		MinRoom:          cfg.Hostel.MinRoom,
		MaxRoom:          cfg.Hostel.MaxRoom,
		EnforceRoomRange: cfg.Hostel.EnforceRoomRange,
		PINHash:          cfg.Admin.PINHash,
	}, lgr)

	lgr.Info().Int("roomCapacity", cfg.Hostel.RoomCapacity).Msg("Dependencies initialized")
	return deps, nil
}

// Setup runs the full startup sequence for a config file
func Setup(ctx context.Context, configPath string) (*Dependencies, error) {
	cfg, lgr, closeLog, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	deps, err := BuildDependencies(ctx, cfg, lgr)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}
	deps.closers = append([]func() error{closeLog}, deps.closers...)
	return deps, nil
}
