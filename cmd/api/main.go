package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/makeready-service/internal/api/http"
	"github.com/spec-kit/makeready-service/internal/api/http/handlers"
	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/config"
	"github.com/spec-kit/makeready-service/internal/events"
	"github.com/spec-kit/makeready-service/internal/observability"
	"github.com/spec-kit/makeready-service/internal/persistence"
	"github.com/spec-kit/makeready-service/internal/repository"
	"github.com/spec-kit/makeready-service/internal/service"
	"github.com/spec-kit/makeready-service/internal/worker"
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

	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	requestRepo := repository.NewServiceRequestRepository(pool)
	contactRepo := repository.NewContactFormRepository(pool)
	planCatalog := repository.NewPlanCatalog()

	roleCache := persistence.NewRoleCache(redis.Client, cfg.Auth.RoleCacheTTL())
	dispatcher := events.NewInMemoryDispatcher()

	profileService := service.NewProfileService(profileRepo, roleCache, logger)
	propertyService := service.NewPropertyService(propertyRepo, dispatcher)
	requestService := service.NewRequestService(service.RequestDependencies{
		RequestRepo:  requestRepo,
		PropertyRepo: propertyRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	contactService := service.NewContactService(contactRepo, dispatcher)
	planService := service.NewPlanService(planCatalog)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	identity := auth.NewIdentityMiddleware(tokenManager, profileService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(),
		Properties: handlers.NewPropertiesHandler(propertyService),
		Requests:   handlers.NewRequestsHandler(requestService),
		Profiles:   handlers.NewProfilesHandler(profileService),
		Contact:    handlers.NewContactHandler(contactService),
		Plans:      handlers.NewPlansHandler(planService),
		Identity:   identity,
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
