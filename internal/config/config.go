package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Affiliate   AffiliateConfig
	Eligibility EligibilityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// AffiliateConfig holds the external affiliate provisioning service settings
type AffiliateConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// EligibilityConfig holds the qualifying-balance gate settings.
// Disabled by default; when enabled the completion processor checks the
// referred wallet's balance through the configured RPC endpoint.
type EligibilityConfig struct {
	Enabled       bool
	RPCURL        string
	TokenAddress  string // empty → native balance
	MinBalanceWei string
	Timeout       time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "refgate"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Affiliate: AffiliateConfig{
			BaseURL: getEnv("AFFILIATE_SERVICE_URL", "http://localhost:9090"),
			APIKey:  getEnv("AFFILIATE_SERVICE_API_KEY", ""),
			Timeout: getEnvAsDuration("AFFILIATE_SERVICE_TIMEOUT", 10*time.Second),
		},
		Eligibility: EligibilityConfig{
			Enabled:       getEnvAsBool("ELIGIBILITY_ENABLED", false),
			RPCURL:        getEnv("ELIGIBILITY_RPC_URL", ""),
			TokenAddress:  getEnv("ELIGIBILITY_TOKEN_ADDRESS", ""),
			MinBalanceWei: getEnv("ELIGIBILITY_MIN_BALANCE_WEI", "0"),
			Timeout:       getEnvAsDuration("ELIGIBILITY_TIMEOUT", 5*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
