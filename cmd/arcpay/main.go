package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	"github.com/piresc/arcpay/internal/pkg/config"
	"github.com/piresc/arcpay/internal/pkg/database"
	"github.com/piresc/arcpay/internal/pkg/health"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/middleware"
	"github.com/piresc/arcpay/internal/pkg/nats"
	nrpkg "github.com/piresc/arcpay/internal/pkg/newrelic"
	"github.com/piresc/arcpay/internal/pkg/server"
	auditHandler "github.com/piresc/arcpay/services/audit/handler/http"
	auditUsecase "github.com/piresc/arcpay/services/audit/usecase"
	"github.com/piresc/arcpay/services/balance"
	balanceRepository "github.com/piresc/arcpay/services/balance/repository"
	balanceUsecase "github.com/piresc/arcpay/services/balance/usecase"
	guardianHandler "github.com/piresc/arcpay/services/guardian/handler/http"
	guardianUsecase "github.com/piresc/arcpay/services/guardian/usecase"
	intentGateway "github.com/piresc/arcpay/services/intent/gateway"
	intentUsecase "github.com/piresc/arcpay/services/intent/usecase"
	"github.com/piresc/arcpay/services/payment"
	paymentGateway "github.com/piresc/arcpay/services/payment/gateway"
	paymentRepository "github.com/piresc/arcpay/services/payment/repository"
	queryUsecase "github.com/piresc/arcpay/services/query/usecase"
	"github.com/piresc/arcpay/services/scheduler"
	schedulerGateway "github.com/piresc/arcpay/services/scheduler/gateway"
	schedulerHandler "github.com/piresc/arcpay/services/scheduler/handler/http"
	schedulerUsecase "github.com/piresc/arcpay/services/scheduler/usecase"
)

// rail is the payment rail seen by the guardian, balance monitor and execution engine
type rail interface {
	payment.PaymentAPI
	payment.BalanceAPI
}

func main() {
	appName := "arcpay"
	configPath := "config/arcpay.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	if configs.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgresClient.Migrate(ctx); err != nil {
			cancel()
			zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
		}
		cancel()
		logger.Info("Database schema migrated")
	}

	var redisClient *database.RedisClient
	if configs.Balance.UseRedisCache || configs.Scheduler.DistributedLock {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
	}

	// A nil publisher leaves notifications and events in the log only
	var natsClient *nats.Client
	var publisher paymentGateway.JSONPublisher
	if configs.NATS.Enabled && configs.Notification.Sink == "nats" {
		natsClient, err = nats.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		publisher = natsClient
		logger.Info("NATS client initialized",
			logger.String("url", configs.NATS.URL),
			logger.Bool("connected", natsClient.IsConnected()))
	}

	breakers := circuitbreaker.NewManager(zapLogger)

	// Repositories
	paymentRepo := paymentRepository.NewPaymentRepository(configs, postgresClient.GetDB())
	userRepo := paymentRepository.NewUserRepository(postgresClient.GetDB())
	riskRepo := paymentRepository.NewRiskAssessmentRepository(postgresClient.GetDB())

	var balanceCache balance.BalanceCache = balanceRepository.NewMemoryCache()
	if configs.Balance.UseRedisCache {
		balanceCache = balanceRepository.NewRedisCache(redisClient, configs.Balance.CacheTTL)
	}

	// Gateways
	var paymentRail rail = paymentGateway.NewSandboxRail()
	if configs.PaymentAPI.Mode != "sandbox" {
		paymentRail = paymentGateway.NewHTTPRail(configs.PaymentAPI, breakers, zapLogger)
	}
	logger.Info("Payment rail selected", logger.String("mode", configs.PaymentAPI.Mode))

	notifier := paymentGateway.NewNotifier(publisher, configs.Notification.AdminEmail)
	events := paymentGateway.NewEventPublisher(publisher)
	model := intentGateway.NewIntentModel(configs.Model, breakers, zapLogger)
	engine := schedulerGateway.NewEngine(paymentRail, breakers, zapLogger)

	var locker scheduler.Locker = schedulerGateway.NewMemoryLocker()
	if configs.Scheduler.DistributedLock {
		locker = schedulerGateway.NewRedisLocker(redisClient, lockOwner(appName))
	}

	// Usecases
	balanceUC := balanceUsecase.NewBalanceUC(configs, paymentRail, balanceCache, notifier)
	intentUC := intentUsecase.NewIntentUC(configs, model, userRepo)
	guardianUC := guardianUsecase.NewGuardianUC(configs, userRepo, paymentRepo, riskRepo, balanceUC, model, paymentRail, notifier)
	queryUC := queryUsecase.NewQueryUC(paymentRepo, riskRepo, userRepo, balanceUC, model)
	schedulerUC := schedulerUsecase.NewSchedulerUC(configs, paymentRepo, userRepo, balanceUC, engine, locker, notifier, events)
	auditUC := auditUsecase.NewAuditUC(paymentRepo, riskRepo, notifier)

	// Handlers
	commandHandler := guardianHandler.NewCommandHandler(intentUC, guardianUC, queryUC)
	paymentHandler := guardianHandler.NewPaymentHandler(paymentRepo)
	tickHandler := schedulerHandler.NewSchedulerHandler(schedulerUC)
	auditAPI := auditHandler.NewAuditHandler(auditUC)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	}
	healthService.AddInfo("circuit_breakers", func() interface{} { return breakers.Stats() })
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	v1 := e.Group("/v1", middleware.APIKey(configs.APIKey.Keys))
	guardianHandler.RegisterRoutes(v1, commandHandler, paymentHandler)
	tickHandler.RegisterRoutes(v1)
	auditAPI.RegisterRoutes(v1)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	srv := server.New(e, zapLogger, addr, time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Components close in reverse order: runner, NATS, Redis, PostgreSQL, New Relic
	if nrApp != nil {
		srv.OnShutdown("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	srv.OnShutdown("postgres", func(context.Context) error { return postgresClient.Close() })
	if redisClient != nil {
		srv.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })
	}
	if natsClient != nil {
		srv.OnShutdown("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if configs.Scheduler.Enabled {
		runnerCtx, stopRunner := context.WithCancel(ctx)
		runner := schedulerUsecase.NewRunner(configs, schedulerUC, nrApp)
		go runner.Start(runnerCtx)
		srv.OnShutdown("scheduler", func(context.Context) error {
			stopRunner()
			return nil
		})
	} else {
		logger.Info("Scheduler runner disabled, use POST /v1/scheduler/tick")
	}

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
	_ = zapLogger.Sync()
}

// lockOwner identifies this process in the payment claim lease
func lockOwner(appName string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = appName
	}
	return host + "-" + uuid.NewString()[:8]
}
