package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database     DatabaseConfig
	Auth         AuthConfig
	Services     ServicesConfig
	Kafka        KafkaConfig
	Redis        RedisConfig
	Fraud        FraudConfig
	Verification VerificationConfig
	Server       ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	ShopifyWebhookKey   string
	ResendAPIKey        string
	DefaultEmailSender  string
	WebAppURI           string
	PublicBaseURL       string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled bool
	Brokers string
	// ConsumerGroup must differ per API instance since each holds its own stats cache
	ConsumerGroup string
	// ReplicationFactor overrides topic replication when positive
	ReplicationFactor int
}

// RedisConfig holds Redis connection settings. Redis backs the asynq queues
// and the cross-instance click guard.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for asynq and go-redis
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FraudConfig holds identity hashing and blacklist settings
type FraudConfig struct {
	IPHashSalt        string
	BlacklistCacheTTL time.Duration
	ClickRatePerMin   int
	ClickBurst        int
}

// VerificationConfig holds verification queue processing settings
type VerificationConfig struct {
	BatchSize       int
	MaxRetries      int
	ItemTimeout     time.Duration
	ProcessInterval time.Duration
	AuditInterval   time.Duration
	StatsCacheTTL   time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.ShopifyWebhookKey, err = requireEnv("SHOPIFY_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	cfg.Services.PublicBaseURL = getEnvWithDefault("PUBLIC_BASE_URL", cfg.Services.WebAppURI)

	// Kafka is optional; domain events are dropped when it is disabled
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Enabled = cfg.Kafka.Brokers != ""
	cfg.Kafka.ConsumerGroup = os.Getenv("KAFKA_CONSUMER_GROUP")
	if cfg.Kafka.ConsumerGroup == "" {
		host, _ := os.Hostname()
		cfg.Kafka.ConsumerGroup = "refspring-stats-" + host
	}
	if cfg.Kafka.ReplicationFactor, err = intEnv("KAFKA_REPLICATION_FACTOR", "0"); err != nil {
		return nil, err
	}

	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"

	// Fraud configuration. The salt is a secret and must be stable across deploys,
	// otherwise existing blacklist entries stop matching.
	if cfg.Fraud.IPHashSalt, err = requireEnv("IP_HASH_SALT"); err != nil {
		return nil, err
	}
	if cfg.Fraud.BlacklistCacheTTL, err = durationEnv("BLACKLIST_CACHE_TTL", "5m"); err != nil {
		return nil, err
	}
	if cfg.Fraud.ClickRatePerMin, err = intEnv("CLICK_RATE_PER_MINUTE", "30"); err != nil {
		return nil, err
	}
	if cfg.Fraud.ClickBurst, err = intEnv("CLICK_BURST", "10"); err != nil {
		return nil, err
	}

	if cfg.Verification.BatchSize, err = intEnv("VERIFICATION_BATCH_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.Verification.MaxRetries, err = intEnv("VERIFICATION_MAX_RETRIES", "5"); err != nil {
		return nil, err
	}
	if cfg.Verification.ItemTimeout, err = durationEnv("VERIFICATION_ITEM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.Verification.ProcessInterval, err = durationEnv("VERIFICATION_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.Verification.AuditInterval, err = durationEnv("CONSISTENCY_AUDIT_INTERVAL", "24h"); err != nil {
		return nil, err
	}
	if cfg.Verification.StatsCacheTTL, err = durationEnv("STATS_CACHE_TTL", "30s"); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
