package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Local durable storage (SQLite file)
	DataPath string `mapstructure:"DATA_PATH"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Change feed broker, used only while a remote mirror is configured
	RedisURL string `mapstructure:"REDIS_URL"`

	// Optional initial remote mirror; can also be set at runtime via the API
	RemoteDatabaseURL string `mapstructure:"REMOTE_DATABASE_URL"`
	RemoteAccessKey   string `mapstructure:"REMOTE_ACCESS_KEY"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_PATH", "salesmanager.db")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
