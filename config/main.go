package config

import (
	"context"
	"os"
	"time"

	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/internal/models"
	"gorm.io/gorm"
)

type ApplicationConfig struct {
	DB              *gorm.DB
	RouterService   *router.RouterService
	Logger          *log.Logger
	Cache           Cache
	Config          *AppConfig
	TracingShutdown func(context.Context) error
}

type AppConfig struct {
	AdminKey       string
	RequestTimeout time.Duration
}

func NewAppConfig() *AppConfig {
	config := &AppConfig{
		AdminKey:       os.Getenv("ADMIN_KEY"),
		RequestTimeout: router.DefaultTimeoutDuration,
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		if parsed, err := time.ParseDuration(timeoutStr); err == nil && parsed > 0 {
			config.RequestTimeout = parsed
		}
	}

	return config
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.DB != nil {
		CloseDatabase(ac.DB, ac.Logger)
	}

	if ac.Cache != nil {
		CloseCache(ac.Cache, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	db, err := NewDatabase(logger, nil)
	if err != nil {
		return nil, err
	}

	if autoMigrate && db != nil {
		if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
			return nil, err
		}
	}

	appConfig := NewAppConfig()

	if appConfig.AdminKey == "" {
		logger.Warn("ADMIN_KEY not set; administrative routes will reject every request")
	}

	cache := NewCacheConfig().NewCacheOrNil(logger)

	routerService := router.CreateRouterService(logger, &router.RouterConfig{
		RequestTimeout: appConfig.RequestTimeout,
	})

	logger.Info("Application configuration loaded successfully")

	return &ApplicationConfig{
		DB:              db,
		RouterService:   routerService,
		Logger:          logger,
		Cache:           cache,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
	}, nil
}
