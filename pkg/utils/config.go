package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Limits   LimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

type LimitConfig struct {
	LoginPerMinute int
}

// DSN builds the pgx connection string for the configured database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// LoadConfig reads settings from the environment. A .env file in the working
// directory is honoured when present but is not required.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "laundry-service")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
		},
		Session: SessionConfig{
			Secret:   v.GetString("SECRET_KEY"),
			TTLHours: v.GetInt("SESSION_TTL_HOURS"),
		},
		Limits: LimitConfig{
			LoginPerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
		},
	}

	if config.Session.Secret == "" {
		if !config.App.Debug {
			return nil, errors.New("SECRET_KEY must be set")
		}
		config.Session.Secret = "change-this-in-production-very-secret"
	}

	return config, nil
}
