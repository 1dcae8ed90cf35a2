package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Match    MatchConfig
	Logging  LoggingConfig

	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret string
}

// MatchConfig holds the engine knobs that were placeholders in the
// mobile client: the "new profile" freshness window, the search
// debounce quiescence window, and the default page size.
type MatchConfig struct {
	NewProfileDays   int
	SearchDebounceMs int
	PageSize         int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or a .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist.
	_ = viper.ReadInConfig()

	viper.SetDefault("MATCH_NEW_PROFILE_DAYS", 7)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 500)
	viper.SetDefault("MATCH_PAGE_SIZE", 20)
	viper.SetDefault("DB_SSL_MODE", "disable")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret: viper.GetString("JWT_ACCESS_SECRET"),
		},
		Match: MatchConfig{
			NewProfileDays:   viper.GetInt("MATCH_NEW_PROFILE_DAYS"),
			SearchDebounceMs: viper.GetInt("SEARCH_DEBOUNCE_MS"),
			PageSize:         viper.GetInt("MATCH_PAGE_SIZE"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Match.NewProfileDays <= 0 {
		return fmt.Errorf("new-profile window must be positive")
	}
	if c.Match.SearchDebounceMs <= 0 {
		return fmt.Errorf("search debounce window must be positive")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns the Redis address.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewProfileWindow converts the configured day count to a duration.
func (c *MatchConfig) NewProfileWindow() time.Duration {
	return time.Duration(c.NewProfileDays) * 24 * time.Hour
}

// SearchDebounceWindow converts the configured debounce to a duration.
func (c *MatchConfig) SearchDebounceWindow() time.Duration {
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}
