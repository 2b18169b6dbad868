package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventPass/internal/config"
	"github.com/stpnv0/EventPass/internal/handler"
	"github.com/stpnv0/EventPass/internal/middleware"
	"github.com/stpnv0/EventPass/internal/notification"
	"github.com/stpnv0/EventPass/internal/repository"
	"github.com/stpnv0/EventPass/internal/router"
	"github.com/stpnv0/EventPass/internal/scheduler"
	"github.com/stpnv0/EventPass/internal/service"
	"github.com/stpnv0/EventPass/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventPass",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	promotionRepo := repository.NewPromotionRepo(a.db)
	requestRepo := repository.NewRequestRepo(a.db)
	participantRepo := repository.NewParticipantRepo(a.db)
	entryPassRepo := repository.NewEntryPassRepo(a.db)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.VerifiersChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	provider, err := storage.NewProvider(a.cfg.Uploads)
	if err != nil {
		return fmt.Errorf("init uploads provider: %w", err)
	}
	a.log.Info("uploads provider ready", logger.String("provider", provider.Name()))

	eventService := service.NewEventService(eventRepo)
	userService := service.NewUserService(userRepo)
	promotionService := service.NewPromotionService(promotionRepo, eventRepo, a.cfg.UPI.PayeeName)
	uploadService := service.NewUploadService(provider, a.cfg.Uploads.MaxSizeBytes, a.log)
	participantService := service.NewParticipantService(participantRepo, eventRepo, userRepo, promotionRepo, a.log)
	entryPassService := service.NewEntryPassService(entryPassRepo, eventRepo, userRepo, promotionRepo, a.log)
	registrationService := service.NewRegistrationService(
		requestRepo,
		eventRepo,
		userRepo,
		participantRepo,
		entryPassRepo,
		promotionRepo,
		n,
		a.cfg.Registration.PollInterval,
		a.log,
	)

	a.scheduler = scheduler.New(
		registrationService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.StaleAfter,
		a.log,
	)

	h := handler.NewHandler(
		eventService,
		userService,
		registrationService,
		participantService,
		entryPassService,
		promotionService,
		uploadService,
	)
	auth := middleware.NewAuthenticator(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, userService)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		auth,
		a.cfg.Uploads.Dir,
		a.cfg.Uploads.MaxSizeBytes,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowedOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
