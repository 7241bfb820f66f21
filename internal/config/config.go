package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the application needs. It is built once
// in main via Load and passed explicitly to the components that need it; there
// is no package-level instance.
type Config struct {
	AppPort string

	// Database. Driver is "postgres" or "sqlite"; DSN is driver-specific.
	DBDriver string
	DBDSN    string

	// JWT token lifecycle.
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Optional event broker. Publishing is skipped when the URL is empty.
	RabbitMQURL string

	// Bootstrap admin account, created on startup if absent.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load reads configuration from environment variables via Viper, applying
// defaults for everything except the JWT secret in production setups.
func Load() Config {
	v := viper.New()

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "gudang.db")
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("ADMIN_NAME", "Administrator")
	v.AutomaticEnv()

	return Config{
		AppPort:         v.GetString("APP_PORT"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DBDSN:           v.GetString("DB_DSN"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		AccessTokenTTL:  time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
		RefreshTokenTTL: time.Duration(v.GetInt("REFRESH_TOKEN_EXPIRE_DAYS")) * 24 * time.Hour,
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		AdminEmail:      v.GetString("ADMIN_EMAIL"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		AdminName:       v.GetString("ADMIN_NAME"),
	}
}
