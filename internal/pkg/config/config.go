package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// (the default) the file at configPath is loaded into the environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "arcpay")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "arcpay")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_ENABLED", true)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "arcpay")
	v.SetDefault("NEW_RELIC_LOGS_ENABLED", false)
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_AGE", 7)
	v.SetDefault("LOG_MAX_BACKUPS", 3)

	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("SCHEDULER_INTERVAL", "60s")
	v.SetDefault("SCHEDULER_LEASE_TTL", "2m")
	v.SetDefault("SCHEDULER_HOT_RETRY", true)
	v.SetDefault("SCHEDULER_RETRY_BACKOFF", false)
	v.SetDefault("SCHEDULER_BACKOFF_BASE", "30s")
	v.SetDefault("SCHEDULER_BACKOFF_MAX", "1h")
	v.SetDefault("SCHEDULER_MAX_ATTEMPTS", 0)
	v.SetDefault("SCHEDULER_DISTRIBUTED_LOCK", true)

	v.SetDefault("GUARDIAN_DEFAULT_DELAY", "5m")
	v.SetDefault("GUARDIAN_DEFAULT_CURRENCY", "USDC")

	v.SetDefault("BALANCE_CACHE_TTL", "24h")
	v.SetDefault("BALANCE_DROP_THRESHOLD", 0.2)
	v.SetDefault("BALANCE_REDIS_CACHE", true)

	v.SetDefault("PAYMENT_API_MODE", "sandbox")
	v.SetDefault("PAYMENT_API_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_API_MAX_RETRIES", 2)

	v.SetDefault("MODEL_TIMEOUT", "5s")

	v.SetDefault("NOTIFICATION_ADMIN_EMAIL", "ops@example.com")
	v.SetDefault("NOTIFICATION_SINK", "nats")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.Enabled = v.GetBool("NATS_ENABLED")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.MaxSize = v.GetInt64("LOG_MAX_SIZE")
	configs.Logger.MaxAge = v.GetInt("LOG_MAX_AGE")
	configs.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	configs.Logger.Compress = v.GetBool("LOG_COMPRESS")

	configs.APIKey.Keys = splitList(v.GetString("API_KEYS"))

	configs.Scheduler.Enabled = v.GetBool("SCHEDULER_ENABLED")
	configs.Scheduler.Interval = v.GetDuration("SCHEDULER_INTERVAL")
	configs.Scheduler.LeaseTTL = v.GetDuration("SCHEDULER_LEASE_TTL")
	configs.Scheduler.HotRetry = v.GetBool("SCHEDULER_HOT_RETRY")
	configs.Scheduler.RetryBackoff = v.GetBool("SCHEDULER_RETRY_BACKOFF")
	configs.Scheduler.BackoffBase = v.GetDuration("SCHEDULER_BACKOFF_BASE")
	configs.Scheduler.BackoffMax = v.GetDuration("SCHEDULER_BACKOFF_MAX")
	configs.Scheduler.MaxAttempts = v.GetInt("SCHEDULER_MAX_ATTEMPTS")
	configs.Scheduler.DistributedLock = v.GetBool("SCHEDULER_DISTRIBUTED_LOCK")

	configs.Guardian.DefaultDelay = v.GetDuration("GUARDIAN_DEFAULT_DELAY")
	configs.Guardian.DefaultCurrency = v.GetString("GUARDIAN_DEFAULT_CURRENCY")

	configs.Balance.CacheTTL = v.GetDuration("BALANCE_CACHE_TTL")
	configs.Balance.DropThreshold = v.GetFloat64("BALANCE_DROP_THRESHOLD")
	configs.Balance.UseRedisCache = v.GetBool("BALANCE_REDIS_CACHE")

	configs.PaymentAPI.Mode = v.GetString("PAYMENT_API_MODE")
	configs.PaymentAPI.BaseURL = v.GetString("PAYMENT_API_URL")
	configs.PaymentAPI.APIKey = v.GetString("PAYMENT_API_KEY")
	configs.PaymentAPI.Timeout = v.GetDuration("PAYMENT_API_TIMEOUT")
	configs.PaymentAPI.MaxRetries = v.GetInt("PAYMENT_API_MAX_RETRIES")

	configs.Model.URL = v.GetString("MODEL_URL")
	configs.Model.APIKey = v.GetString("MODEL_API_KEY")
	configs.Model.Timeout = v.GetDuration("MODEL_TIMEOUT")

	configs.Notification.AdminEmail = v.GetString("NOTIFICATION_ADMIN_EMAIL")
	configs.Notification.Sink = v.GetString("NOTIFICATION_SINK")

	return configs
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Duration is a small helper for callers that need a fallback on zero values
func Duration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
