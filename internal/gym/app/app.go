package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/gymtrack/internal/gym/http"
	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store/drivers/postgres"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/mailx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

// BuildVersion is set at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application owns the gym service and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	codec   *jwtx.Codec
	mailer  mailx.Mailer
	metrics *metrics.Metrics

	authService          *service.AuthService
	userService          *service.UserService
	passwordResetService *service.PasswordResetService
	workoutService       *service.WorkoutService
	exerciseSetService   *service.ExerciseSetService
	setService           *service.SetService
	catalogService       *service.CatalogService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "gymtrack",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New initialises the store, services and HTTP server. Migrations are
// applied before it returns.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg:     cfg,
		logger:  NewLogger(cfg),
		metrics: metrics.New(),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database ready", "driver", cfg.DatabaseDriver)

	if err := app.initLinks(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := app.initMailer(); err != nil {
		_ = db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// OpenStore opens the configured driver and applies pending migrations.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case "sqlite":
		db, err = sqlite.NewStore(cfg.DatabaseFile)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("GYM_DATABASE_URL is required for the postgres driver")
		}
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// Run serves until SIGINT or SIGTERM and then shuts down gracefully.
func (app *Application) Run() error {
	app.logger.Info("gym service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gym service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("gym service stopped")
	return nil
}

// initLinks builds the email link codec. Outside prod a missing secret is
// replaced by a random one, which invalidates links on restart.
func (app *Application) initLinks() error {
	secret := app.cfg.LinkSecret
	if secret == "" {
		if app.cfg.Env == "prod" {
			return errors.New("GYM_LINK_SECRET is required in prod")
		}
		generated, err := cryptox.GenerateToken(32)
		if err != nil {
			return fmt.Errorf("failed to generate link secret: %w", err)
		}
		secret = generated
		app.logger.Warn("GYM_LINK_SECRET not set, using a random secret")
	}

	codec, err := jwtx.NewCodec([]byte(secret), app.cfg.LinkTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize link codec: %w", err)
	}
	app.codec = codec
	return nil
}

func (app *Application) initMailer() error {
	switch app.cfg.MailDriver {
	case "smtp":
		m, err := mailx.NewSMTPMailer(mailx.SMTPConfig{
			Host:       app.cfg.SMTPHost,
			Port:       app.cfg.SMTPPort,
			Username:   app.cfg.SMTPUser,
			Password:   app.cfg.SMTPPass,
			From:       app.cfg.SMTPFrom,
			RequireTLS: app.cfg.Env == "prod",
		})
		if err != nil {
			return err
		}
		app.mailer = m
	case "log":
		app.mailer = mailx.LogMailer{Logger: app.logger}
	default:
		return fmt.Errorf("unknown mail driver %q", app.cfg.MailDriver)
	}
	app.logger.Info("mailer ready", "driver", app.cfg.MailDriver)
	return nil
}

func (app *Application) initServices() {
	notifier := &service.Notifier{
		Mailer:  app.mailer,
		Codec:   app.codec,
		BaseURL: app.cfg.PublicBaseURL,
		Metrics: app.metrics,
	}

	app.authService = &service.AuthService{Store: app.db, Codec: app.codec, Notifier: notifier, Metrics: app.metrics}
	app.userService = &service.UserService{Store: app.db, Notifier: notifier}
	app.passwordResetService = &service.PasswordResetService{Store: app.db, Codec: app.codec, Notifier: notifier, Metrics: app.metrics}
	app.workoutService = &service.WorkoutService{Store: app.db}
	app.exerciseSetService = &service.ExerciseSetService{Store: app.db}
	app.setService = &service.SetService{Store: app.db}
	app.catalogService = &service.CatalogService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.metrics,
		app.authService,
		app.cfg.CORSOrigins,
		app.logger,
	)

	router.UserService = app.userService
	router.PasswordResetService = app.passwordResetService
	router.WorkoutService = app.workoutService
	router.ExerciseSetService = app.exerciseSetService
	router.SetService = app.setService
	router.CatalogService = app.catalogService
	router.Limits = app.cfg.RateLimits
	router.Swagger = app.cfg.Env != "prod"
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
