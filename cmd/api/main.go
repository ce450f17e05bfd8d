package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk-br/chamados-api/internal/api/http"
	"github.com/helpdesk-br/chamados-api/internal/api/http/handlers"
	"github.com/helpdesk-br/chamados-api/internal/config"
	"github.com/helpdesk-br/chamados-api/internal/domain"
	"github.com/helpdesk-br/chamados-api/internal/events"
	"github.com/helpdesk-br/chamados-api/internal/observability"
	"github.com/helpdesk-br/chamados-api/internal/persistence"
	"github.com/helpdesk-br/chamados-api/internal/repository"
	"github.com/helpdesk-br/chamados-api/internal/service"
	"github.com/helpdesk-br/chamados-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	callRepos := make(map[domain.CallVariant]repository.CallRepository)
	for _, variant := range []domain.CallVariant{domain.CallVariantTI, domain.CallVariantManutencao} {
		repo, err := repository.NewCallRepository(pool, variant)
		if err != nil {
			logger.Fatal("failed to build call repository", zap.Error(err))
		}
		callRepos[variant] = repo
	}

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	callService := service.NewCallService(*cfg, service.CallDependencies{
		Repos:      callRepos,
		Cache:      redis,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:   handlers.NewAuthHandler(authService),
		Calls:  handlers.NewCallsHandler(callService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
