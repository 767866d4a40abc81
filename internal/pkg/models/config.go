package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
	APIKey       APIKeyConfig
	Scheduler    SchedulerConfig
	Guardian     GuardianConfig
	Balance      BalanceConfig
	PaymentAPI   PaymentAPIConfig
	Model        ModelConfig
	Notification NotificationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration.
// Driver is either "postgres" (lib/pq) or "pgx" (pgx stdlib).
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL     string
	Enabled bool
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// APIKeyConfig holds the keys accepted on the /v1 command surface
type APIKeyConfig struct {
	Keys []string
}

// SchedulerConfig controls the polling loop.
// RetryBackoff enables exponential delay for FAILED payments;
// MaxAttempts of 0 means hot-retry never gives up.
type SchedulerConfig struct {
	Enabled         bool
	Interval        time.Duration
	LeaseTTL        time.Duration
	HotRetry        bool
	RetryBackoff    bool
	BackoffBase     time.Duration
	BackoffMax      time.Duration
	MaxAttempts     int
	DistributedLock bool
}

// GuardianConfig controls approval defaults
type GuardianConfig struct {
	DefaultDelay    time.Duration
	DefaultCurrency string
}

// BalanceConfig controls the balance monitor
type BalanceConfig struct {
	CacheTTL      time.Duration
	DropThreshold float64
	UseRedisCache bool
}

// PaymentAPIConfig configures the external payment rail.
// Mode "sandbox" uses the in-process rail, "http" talks to BaseURL.
type PaymentAPIConfig struct {
	Mode       string
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// ModelConfig configures the learned-model adapter; an empty URL selects the heuristic model
type ModelConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// NotificationConfig configures the notification sink
type NotificationConfig struct {
	AdminEmail string
	Sink       string
}
