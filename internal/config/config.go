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
	Admin    AdminConfig
	Identity IdentityConfig
	Logging  LoggingConfig
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

// AdminConfig gates the admin/debug surface. Secret is exchanged for a
// short-lived HS256 token; TokenSecret signs it.
type AdminConfig struct {
	Secret         string
	TokenSecret    string
	TokenExpiryMin int
}

// IdentityConfig declares which optional identity columns this deployment
// supports. The effective capability set is this config intersected with a
// one-shot schema probe at startup.
type IdentityConfig struct {
	EmailEnabled       bool
	ExternalUIDEnabled bool
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 5000)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("IDENTITY_EMAIL_ENABLED", true)
	viper.SetDefault("IDENTITY_EXTERNAL_UID_ENABLED", true)
	viper.SetDefault("ADMIN_TOKEN_EXPIRY_MIN", 60)

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

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
		Admin: AdminConfig{
			Secret:         viper.GetString("ADMIN_SECRET"),
			TokenSecret:    viper.GetString("ADMIN_TOKEN_SECRET"),
			TokenExpiryMin: viper.GetInt("ADMIN_TOKEN_EXPIRY_MIN"),
		},
		Identity: IdentityConfig{
			EmailEnabled:       viper.GetBool("IDENTITY_EMAIL_ENABLED"),
			ExternalUIDEnabled: viper.GetBool("IDENTITY_EXTERNAL_UID_ENABLED"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
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
	if c.Admin.Secret != "" && c.Admin.TokenSecret == "" {
		return fmt.Errorf("ADMIN_TOKEN_SECRET is required when ADMIN_SECRET is set")
	}
	if c.Admin.TokenSecret != "" && len(c.Admin.TokenSecret) < 32 {
		return fmt.Errorf("admin token secret must be at least 32 characters")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether a Redis endpoint is configured at all. The
// realtime notifier is optional; an empty host means run without it.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}
