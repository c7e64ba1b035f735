package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/config"
	"github.com/amu0701/aman-khelkud-backend-main/internal/handler"
	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/amu0701/aman-khelkud-backend-main/internal/middleware"
	"github.com/amu0701/aman-khelkud-backend-main/internal/repository"
	"github.com/amu0701/aman-khelkud-backend-main/internal/router"
	"github.com/amu0701/aman-khelkud-backend-main/internal/scheduler"
	"github.com/amu0701/aman-khelkud-backend-main/internal/service"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const storeOpTimeout = 30 * time.Second

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      *repository.Store
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"khelkud",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("indexes: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
	defer cancel()

	store, err := repository.Connect(ctx, repository.Options{
		URI:                    a.cfg.Mongo.URI,
		Database:               a.cfg.Mongo.Database,
		ServerSelectionTimeout: a.cfg.Mongo.ServerSelectionTimeout,
		SocketTimeout:          a.cfg.Mongo.SocketTimeout,
		MaxPoolSize:            a.cfg.Mongo.MaxPoolSize,
		Connect: retry.Strategy{
			Attempts: a.cfg.Mongo.ConnectAttempts,
			Delay:    a.cfg.Mongo.ConnectDelay,
			Backoff:  2,
		},
	}, a.log)
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}

	a.store = store
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("database", store.DB().Name()),
	)

	return nil
}

func (a *App) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
	defer cancel()

	if err := a.store.EnsureIndexes(ctx); err != nil {
		return err
	}

	a.log.Info("indexes ensured")
	return nil
}

func (a *App) initServices() {
	db := a.store.DB()
	userRepo := repository.NewUserRepo(db)
	slotRepo := repository.NewSlotRepo(db)
	communityRepo := repository.NewCommunityRepo(db)
	sportRepo := repository.NewSportRepo(db)

	userService := service.NewUserService(userRepo, a.log)
	slotService := service.NewSlotService(slotRepo, a.log)
	communityService := service.NewCommunityService(communityRepo)
	sportService := service.NewSportService(sportRepo)

	h := handler.NewHandler(userService, slotService, communityService, sportService, a.store)

	opts := router.Options{}
	if a.cfg.Metrics.Enabled {
		opts.MetricsPath = a.cfg.Metrics.Path
		opts.MetricsHandler = metrics.Handler()
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		opts,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowOrigins),
	)

	if a.cfg.Metrics.Enabled && a.cfg.Metrics.StatsInterval > 0 {
		a.scheduler = scheduler.New(a.store, metrics.SetCollectionSize, a.cfg.Metrics.StatsInterval, a.log)
	}

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
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
		_ = a.closeStore()
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

	if err := a.closeStore(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout)
	defer cancel()

	if err := a.store.Close(ctx); err != nil {
		return fmt.Errorf("close mongodb: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}
