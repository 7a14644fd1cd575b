package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/akeren/launchlist/pkg/retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SSLMode         string // Default: "require" for prod safety

	ConnectAttempts int
	ConnectDelay    time.Duration
}

func defaultDBConfig() *DBConfig {
	cfg := &DBConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Minute,
		SSLMode:         "require",
		ConnectAttempts: constants.DefaultStorageConnectAttempts,
		ConnectDelay:    constants.DefaultStorageConnectDelaySeconds * time.Second,
	}

	if raw := strings.TrimSpace(GetValueFromEnvironmentVariable("STORAGE_CONNECT_ATTEMPTS", "")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.ConnectAttempts = parsed
		}
	}

	if raw := strings.TrimSpace(GetValueFromEnvironmentVariable("STORAGE_CONNECT_DELAY", "")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.ConnectDelay = parsed
		}
	}

	return cfg
}

// NewDatabase connects with a bounded fixed-delay retry loop. A malformed
// configuration fails startup; an unreachable database does not. When every
// attempt fails the returned handle is nil and the process runs degraded:
// storage-dependent requests fail individually instead of the service
// refusing to start.
func NewDatabase(logger *log.Logger, cfg *DBConfig) (*gorm.DB, error) {
	if cfg == nil {
		cfg = defaultDBConfig()
	}

	appDatabaseURL := sanitizeEnv(GetValueFromEnvironmentVariable("APP_DATABASE_URL", ""))

	dsn, err := buildDSNFromEnv(appDatabaseURL, logger, cfg)
	if err != nil {
		return nil, err
	}

	var gdb *gorm.DB

	connect := func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			logger.Warn("Database connection attempt failed", "error", openErr)
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			logger.Warn("Failed to get database instance", "error", dbErr)
			return dbErr
		}

		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

		if pingErr := sqlDB.Ping(); pingErr != nil {
			logger.Warn("Database ping failed", "error", pingErr)
			return pingErr
		}

		gdb = db
		return nil
	}

	policy := retry.NewFixedDelay(&retry.Config{
		MaxAttempts: cfg.ConnectAttempts,
		Delay:       cfg.ConnectDelay,
	})

	if err := policy.Execute(connect); err != nil {
		logger.Error("Database unreachable after retries; continuing in degraded mode",
			"attempts", cfg.ConnectAttempts,
			"error", err,
		)
		return nil, nil
	}

	logger.Info("Database connection established successfully")
	return gdb, nil
}

func buildDSNFromEnv(appDatabaseURL string, logger *log.Logger, cfg *DBConfig) (string, error) {
	if strings.TrimSpace(appDatabaseURL) != "" {
		logger.Info("Using APP_DATABASE_URL for database connection")
		return appDatabaseURL, nil
	}

	host, portStr, user, pass, dbName, ssl := getDatabaseEnvParams()
	if ssl == "" {
		ssl = cfg.SSLMode
	}

	missing := []string{}

	if host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}

	if portStr == "" {
		missing = append(missing, "POSTGRES_PORT")
	}

	if user == "" {
		missing = append(missing, "POSTGRES_USER")
	}

	if dbName == "" {
		missing = append(missing, "POSTGRES_DB_NAME")
	}

	if len(missing) > 0 {
		logger.Error("Missing required database environment variables", "missing_vars", strings.Join(missing, ", "))

		return "", fmt.Errorf("missing required database env vars: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		logger.Error("Invalid POSTGRES_PORT", "error", err)
		return "", fmt.Errorf("invalid POSTGRES_PORT %q: %w", portStr, err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, dbName, ssl,
	)

	logger.Info("Connecting to database",
		"host", host,
		"port", port,
		"user", user,
		"dbname", dbName,
		"sslmode", ssl,
	)
	return dsn, nil
}

func getDatabaseEnvParams() (host, port, user, pass, dbName, ssl string) {
	host = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_HOST", ""))
	port = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_PORT", ""))
	user = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_USER", ""))
	pass = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_PASSWORD", ""))
	dbName = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_DB_NAME", ""))
	ssl = sanitizeEnv(GetValueFromEnvironmentVariable("POSTGRES_SSLMODE", ""))

	return host, port, user, pass, dbName, ssl
}

func sanitizeEnv(v string) string {
	s := strings.TrimSpace(v)

	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	return s
}

func AutoMigrate(logger *log.Logger, db *gorm.DB, models ...interface{}) error {
	if db == nil {
		logger.Error("Cannot migrate: db is empty")
		return fmt.Errorf("cannot migrate: db is empty")
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", "error", err)
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("Database migration completed successfully")

	return nil
}

func CloseDatabase(db *gorm.DB, logger *log.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	} else {
		logger.Info("Database closed successfully")
	}
}
