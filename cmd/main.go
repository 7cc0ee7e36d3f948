package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "elocalpass/docs"
	"elocalpass/internal/caching"
	"elocalpass/internal/config"
	"elocalpass/internal/handlers"
	"elocalpass/internal/jobs"
	"elocalpass/internal/logging"
	"elocalpass/internal/middleware"
	"elocalpass/internal/repositories"
	"elocalpass/internal/services"
	"elocalpass/pkg/database"
)

const version = "1.0.0"

//	@title			eLocalPass API
//	@version		1.0
//	@description	Distributor, location and seller management with customer access redemption.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{Component: "api", Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := database.NewPool(ctx, database.PoolConfig{
		DSN:               cfg.DatabaseURL,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   time.Hour,
		HealthCheckPeriod: time.Minute,
	}, logger)
	if err != nil {
		logger.Fatal("init postgres pool", zap.Error(err))
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}
	}

	// Redis backs the customer access rate limit; without it the limit is off.
	var (
		limiter     caching.RateLimiter
		redisHealth handlers.Pinger
	)
	if cfg.RedisEnabled() {
		client, err := caching.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("init redis client", zap.Error(err))
		}
		defer client.Close()
		limiter = caching.NewRedisCacheService(client)
		redisHealth = limiter
	} else {
		logger.Warn("REDIS_ADDR not set, customer access rate limiting disabled")
	}

	// QR code images
	var (
		images        services.QRImageStore
		storageHealth handlers.Pinger
	)
	if cfg.StorageEnabled() {
		images, err = services.NewMinioService(services.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Region:    cfg.MinioRegion,
			Bucket:    cfg.QRBucket,
			URLTTL:    cfg.QRURLTTL,
		})
		if err != nil {
			logger.Fatal("init minio client", zap.Error(err))
		}
		if err := images.EnsureBucketExists(ctx); err != nil {
			logger.Warn("qr image bucket unavailable", zap.String("bucket", cfg.QRBucket), zap.Error(err))
		}
		storageHealth = images
	}

	// Create repositories
	txManager := repositories.NewTxManager(pool)
	userRepo := repositories.NewUserRepository(pool)
	distributorRepo := repositories.NewDistributorRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	sellerRepo := repositories.NewSellerRepository(pool)
	hierarchyRepo := repositories.NewHierarchyRepository(pool)
	accessTokenRepo := repositories.NewAccessTokenRepository(pool)
	qrCodeRepo := repositories.NewQRCodeRepository(pool)

	// Create services
	activationSvc := services.NewActivationService(hierarchyRepo, logger)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, logger)
	distributorSvc := services.NewDistributorService(txManager, userRepo, distributorRepo, locationRepo, sellerRepo, logger)
	locationSvc := services.NewLocationService(txManager, userRepo, locationRepo, sellerRepo, activationSvc, logger)
	sellerSvc := services.NewSellerService(txManager, userRepo, sellerRepo, activationSvc, logger)

	accessOpts := []services.CustomerAccessOption{}
	if images != nil {
		accessOpts = append(accessOpts, services.WithImageStore(images))
	}
	customerAccessSvc := services.NewCustomerAccessService(accessTokenRepo, qrCodeRepo, logger, accessOpts...)

	session, err := middleware.JWTMiddleware(middleware.JWTConfig{
		Secret:  cfg.JWTSecret,
		JWKSURL: cfg.JWKSURL,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("init session middleware", zap.Error(err))
	}

	e := newServer(logger)
	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:       handlers.NewHealthHandlers(version, pool, redisHealth, storageHealth),
		Auth:         handlers.NewAuthHandlers(authSvc),
		Distributors: handlers.NewDistributorHandlers(distributorSvc),
		Locations:    handlers.NewLocationHandlers(locationSvc),
		Sellers:      handlers.NewSellerHandlers(sellerSvc),
		Activation:   handlers.NewActivationHandlers(activationSvc),
		Customer:     handlers.NewCustomerHandlers(customerAccessSvc),
	}, handlers.RouteMiddleware{
		Session: session,
		CustomerRateLimit: middleware.RateLimit(limiter, "customer-access",
			cfg.CustomerAccessRateLimit, cfg.CustomerAccessRateWindow, logger),
		Audit: middleware.Audit(logger),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Background jobs
	scheduler, err := jobs.NewJobScheduler(logger)
	if err != nil {
		logger.Fatal("init job scheduler", zap.Error(err))
	}
	expirer := jobs.NewQRExpirer(qrCodeRepo, logger)
	if err := scheduler.Every("deactivate-expired-qr-codes", cfg.QRExpiryInterval, expirer.Run); err != nil {
		logger.Fatal("register qr expiry", zap.Error(err))
	}
	scheduler.Start()

	go func() {
		logger.Info("starting api server", zap.String("port", cfg.Port), zap.String("version", version))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		logger.Error("stop job scheduler", zap.Error(err))
	}
}

// newServer builds the echo instance with the global middleware stack.
func newServer(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	// Pre middleware runs before routing so /api/me/ resolves to /api/me.
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.VersionHeader(version))
	return e
}
