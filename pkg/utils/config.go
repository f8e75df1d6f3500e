package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI      string
	Name     string
	MaxConns int32
	Timeout  time.Duration
}

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Driver picks the store backend from the connection string scheme.
func (c DatabaseConfig) Driver() (string, error) {
	uri := strings.ToLower(c.URI)
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database connection string scheme")
	}
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), ".env")
}

func loadConfig(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "event-booking")
	v.SetDefault("PORT", "5001")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_NAME", "synergia")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_TIMEOUT_SECONDS", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", envFile, err)
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
			URI:      FirstNonEmpty(v.GetString("MONGO_URI"), v.GetString("DATABASE_URL")),
			Name:     v.GetString("DB_NAME"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Timeout:  time.Duration(v.GetInt("DB_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	if config.Database.Timeout <= 0 {
		config.Database.Timeout = 5 * time.Second
	}

	if config.Database.URI == "" {
		return nil, errors.New("MONGO_URI or DATABASE_URL must be set")
	}
	if _, err := config.Database.Driver(); err != nil {
		return nil, err
	}

	return config, nil
}
