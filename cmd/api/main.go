package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calldeck/calldeck/internal/pkg/config"
	"github.com/calldeck/calldeck/internal/pkg/database"
	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	nsqpkg "github.com/calldeck/calldeck/internal/pkg/nsq"
	"github.com/calldeck/calldeck/internal/pkg/server"
	"github.com/calldeck/calldeck/internal/utils"

	accountsGateway "github.com/calldeck/calldeck/services/accounts/gateway"
	accountsHandler "github.com/calldeck/calldeck/services/accounts/handler"
	accountsHTTP "github.com/calldeck/calldeck/services/accounts/handler/http"
	accountsRepository "github.com/calldeck/calldeck/services/accounts/repository"
	accountsUsecase "github.com/calldeck/calldeck/services/accounts/usecase"

	devicesHandler "github.com/calldeck/calldeck/services/devices/handler"
	devicesHTTP "github.com/calldeck/calldeck/services/devices/handler/http"
	devicesRepository "github.com/calldeck/calldeck/services/devices/repository"
	devicesUsecase "github.com/calldeck/calldeck/services/devices/usecase"

	campaignsHandler "github.com/calldeck/calldeck/services/campaigns/handler"
	campaignsHTTP "github.com/calldeck/calldeck/services/campaigns/handler/http"
	campaignsRepository "github.com/calldeck/calldeck/services/campaigns/repository"
	campaignsUsecase "github.com/calldeck/calldeck/services/campaigns/usecase"
)

const appName = "calldeck-api"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize MongoDB connection
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer for outbound mail events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	accountRepo := accountsRepository.NewAccountRepo(mongoClient)
	deviceRepo := devicesRepository.NewDeviceRepo(mongoClient, redisClient)
	callLogRepo := devicesRepository.NewCallLogRepo(mongoClient)
	campaignRepo := campaignsRepository.NewCampaignRepo(mongoClient)

	// Initialize gateways
	mailGW := accountsGateway.NewMailGW(producer, configs)

	// Initialize usecases
	accountUC := accountsUsecase.NewAccountUC(accountRepo, mailGW, configs)
	deviceUC := devicesUsecase.NewDeviceUC(deviceRepo, callLogRepo, configs)
	campaignUC := campaignsUsecase.NewCampaignUC(campaignRepo, accountRepo, configs)

	// Initialize handlers
	accountsH := accountsHandler.NewHandler(
		accountsHTTP.NewAuthHandler(accountUC),
		accountsHTTP.NewAdminHandler(accountUC),
		accountsHTTP.NewProfileHandler(accountUC),
	)
	devicesH := devicesHandler.NewHandler(
		devicesHTTP.NewDeviceHandler(deviceUC),
		devicesHTTP.NewCallLogHandler(deviceUC),
	)
	campaignsH := campaignsHandler.NewHandler(
		campaignsHTTP.NewCampaignHandler(campaignUC, accountUC),
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	session := middleware.SessionAuthMiddleware(configs.JWT, accountUC)
	authRateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "ratelimit:auth",
		Limit:       20,
		Period:      time.Minute,
	})

	e.GET("/health", func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "OK", map[string]string{
			"app":     appName,
			"version": configs.App.Version,
		})
	})

	accountsH.RegisterRoutes(e, session, authRateLimiter)
	devicesH.RegisterRoutes(e, session)
	campaignsH.RegisterRoutes(e, session)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	srv.RegisterCleanup(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return mongoClient.Close()
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
