package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/roamline/TripBooker/internal/audit"
	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/config"
	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/handler"
	"github.com/roamline/TripBooker/internal/middleware"
	"github.com/roamline/TripBooker/internal/notification"
	"github.com/roamline/TripBooker/internal/repository"
	"github.com/roamline/TripBooker/internal/router"
	"github.com/roamline/TripBooker/internal/scheduler"
	"github.com/roamline/TripBooker/internal/service"
	"github.com/roamline/TripBooker/internal/service/ports"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TripBooker",
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

	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := a.redis.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	}

	return nil
}

func (a *App) initServices() error {
	hotelBookingRepo := repository.NewHotelBookingRepo(a.db)
	activityBookingRepo := repository.NewActivityBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	auditRepo := repository.NewAuditRepo(a.db)

	if err := a.seedAdmin(userRepo); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	var hotelRepo ports.HotelRepo = repository.NewHotelRepo(a.db)
	var activityRepo ports.ActivityRepo = repository.NewActivityRepo(a.db)
	if a.redis != nil {
		hotelRepo = repository.NewCachedHotelRepo(hotelRepo, a.redis, a.cfg.Redis.CacheTTL)
		activityRepo = repository.NewCachedActivityRepo(activityRepo, a.redis, a.cfg.Redis.CacheTTL)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.OpsChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	notifier := audit.NewFanout(audit.NewRecorder(auditRepo, a.log), tg)

	tokens := auth.NewManager(a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL)

	bookingService := service.NewBookingService(
		hotelBookingRepo,
		activityBookingRepo,
		hotelRepo,
		activityRepo,
		userRepo,
		notifier,
		service.Policy{
			AutoConfirm: a.cfg.Booking.AutoConfirm,
			PendingTTL:  a.cfg.Booking.PendingTTL,
		},
		a.log,
	)
	catalogService := service.NewCatalogService(hotelRepo, activityRepo, a.log)
	authService := service.NewAuthService(userRepo, tokens, a.log)

	if a.cfg.Booking.PendingTTL > 0 {
		a.scheduler = scheduler.New(bookingService, a.cfg.Booking.SweepInterval, a.log)
	}

	h := handler.NewHandler(bookingService, catalogService, authService, a.cfg.Auth.TokenTTL)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		tokens,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

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

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// seedAdmin creates the bootstrap admin account when one is configured.
// An already registered email is not an error.
func (a *App) seedAdmin(users ports.UserRepo) error {
	if a.cfg.Auth.AdminEmail == "" || a.cfg.Auth.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		ID:           uuid.New().String(),
		Name:         "Administrator",
		Email:        a.cfg.Auth.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err = users.Create(context.Background(), admin); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	a.log.Info("admin account seeded", logger.String("email", admin.Email))
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
