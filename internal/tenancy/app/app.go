package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	httpapi "github.com/causewayhq/causeway/internal/tenancy/http"
	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/internal/tenancy/store/drivers/sqlite"
	"github.com/causewayhq/causeway/pkg/cryptox"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/mailx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tokenx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tenancy service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	tokens *tokenx.Codec
	mailer mailx.Mailer

	// Services
	sessionService      *service.SessionService
	identityService     *service.IdentityService
	accessService       *service.AccessService
	inviteService       *service.InviteService
	organizationService *service.OrganizationService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "causeway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// The role-to-permission table is static; a hole in it is a
	// programming error caught at startup, not at request time.
	if err := domain.ValidatePermissionTable(); err != nil {
		return nil, fmt.Errorf("invalid permission table: %w", err)
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	secret, err := tokenx.LoadOrGenerateSecret(app.cfg.TokenSecretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load token secret: %w", err)
	}
	codec, err := tokenx.NewCodec(secret, app.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.tokens = codec

	if err := app.initMailer(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("causeway starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down causeway...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("causeway stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer selects the invite mail transport. Without a configured
// sender address delivery is disabled and invites are logged instead,
// which keeps local development free of AWS credentials.
func (app *Application) initMailer() error {
	if app.cfg.SESFromEmail == "" {
		app.logger.Info("email delivery disabled, invite emails will be logged")
		app.mailer = mailx.LogMailer{}
		return nil
	}

	mailer, err := mailx.NewSESMailer(context.Background(), mailx.SESConfig{
		Region:    app.cfg.SESRegion,
		FromEmail: app.cfg.SESFromEmail,
		FromName:  app.cfg.SESFromName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize SES mailer: %w", err)
	}
	app.mailer = mailer
	app.logger.Info("SES email delivery enabled", "from", app.cfg.SESFromEmail)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	if _, err := service.ParseDenyMode(app.cfg.AccessDenyMode); err != nil {
		return fmt.Errorf("invalid ACCESS_DENY_MODE: %w", err)
	}

	app.identityService = &service.IdentityService{Store: app.db}
	app.accessService = &service.AccessService{
		Store:    app.db,
		Identity: app.identityService,
	}
	app.sessionService = &service.SessionService{
		Store:      app.db,
		Tokens:     app.tokens,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.inviteService = &service.InviteService{
		Store:     app.db,
		Tokens:    app.tokens,
		Mailer:    app.mailer,
		InviteTTL: app.cfg.InviteTTL,
		BaseURL:   app.cfg.AppBaseURL,
	}
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	denyMode, _ := service.ParseDenyMode(app.cfg.AccessDenyMode)

	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.logger,
		httpx.NewMetrics("causeway"),
		denyMode,
		app.cfg.AccessRedirectURL,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.IdentityService = app.identityService
	router.AccessService = app.accessService
	router.InviteService = app.inviteService
	router.OrganizationService = app.organizationService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
