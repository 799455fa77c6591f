package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Database DatabaseConfig
	Server   ServerConfig
	Session  SessionConfig
	Cache    CacheConfig
	Web      WebConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// MaxOpenConns ограничивает пул соединений API
	MaxOpenConns int
}

type ServerConfig struct {
	APIAddr string
	WebAddr string
}

type SessionConfig struct {
	Secret     string
	CookieName string
}

// CacheConfig задает хранилище кэша запросов веб-клиента.
// Пустой RedisURL означает кэш в памяти процесса.
type CacheConfig struct {
	RedisURL     string
	Size         int
	TTL          time.Duration
	FetchTimeout time.Duration
}

type WebConfig struct {
	APIBaseURL    string
	LoadTimeout   time.Duration
	SearchEnabled bool
	AdminEnabled  bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "roster"),
			Password:     getEnv("DB_PASSWORD", "roster"),
			DBName:       getEnv("DB_NAME", "project_roster"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		},
		Server: ServerConfig{
			APIAddr: getEnv("API_ADDR", ":8080"),
			WebAddr: getEnv("WEB_ADDR", ":3000"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev-secret"),
			CookieName: getEnv("SESSION_COOKIE", "session"),
		},
		Cache: CacheConfig{
			RedisURL:     getEnv("CACHE_REDIS_URL", ""),
			Size:         getEnvInt("CACHE_SIZE", 256),
			TTL:          getEnvDuration("CACHE_TTL", 5*time.Minute),
			FetchTimeout: getEnvDuration("CACHE_FETCH_TIMEOUT", 10*time.Second),
		},
		Web: WebConfig{
			APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
			LoadTimeout:   getEnvDuration("WEB_LOAD_TIMEOUT", 2*time.Second),
			SearchEnabled: getEnvBool("WEB_SEARCH_ENABLED", true),
			AdminEnabled:  getEnvBool("WEB_ADMIN_ENABLED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
