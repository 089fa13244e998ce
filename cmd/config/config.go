package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Form        FormConfig
	BotFut      BotFutConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

// FormConfig controls form drafts kept between keystrokes.
type FormConfig struct {
	DraftTTL time.Duration
}

// BotFutConfig points at the external Bot Fut REST API. Delivery retries are driven by the
// consumer's backoff, never by the HTTP client.
type BotFutConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxRetries    uint64
	RetryInterval time.Duration
}

// InternalConfig is used by the consumer to call back into this service.
type InternalConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryCount    int
	RetryWaitTime time.Duration
}

// Load reads configuration from the environment. A .env file in the working directory, when
// present, is loaded first and never overrides variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "botfut"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXPIRATION", 24*time.Hour),
		},
		Form: FormConfig{
			DraftTTL: getDuration("FORM_DRAFT_TTL", 72*time.Hour),
		},
		BotFut: BotFutConfig{
			BaseURL:       getEnv("BOTFUT_API_URL", "http://localhost:3000"),
			APIKey:        getEnv("BOTFUT_API_KEY", ""),
			Timeout:       getDuration("BOTFUT_API_TIMEOUT", 10*time.Second),
			MaxRetries:    uint64(getInt("BOTFUT_DELIVERY_MAX_RETRIES", 5)),
			RetryInterval: getDuration("BOTFUT_DELIVERY_RETRY_INTERVAL", 500*time.Millisecond),
		},
		Internal: InternalConfig{
			BaseURL:       getEnv("INTERNAL_API_URL", "http://localhost:8080"),
			APIKey:        getEnv("INTERNAL_API_KEY", ""),
			Timeout:       getDuration("INTERNAL_API_TIMEOUT", 5*time.Second),
			RetryCount:    getInt("INTERNAL_API_RETRY_COUNT", 2),
			RetryWaitTime: getDuration("INTERNAL_API_RETRY_WAIT", 200*time.Millisecond),
		},
	}
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
