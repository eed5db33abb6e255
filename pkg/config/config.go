package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Recommend RecommendConfig
	Database  DatabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type RecommendConfig struct {
	// fixture or postgres
	Source      string
	FixturePath string
	DefaultK    int

	// order statuses that count as a purchase when reading from postgres
	OrderStatuses []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaultK, err := strconv.Atoi(getEnv("RECO_DEFAULT_K", "5"))
	if err != nil {
		return nil, errors.New("invalid default k")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "MyGreenReco"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Recommend: RecommendConfig{
			Source:        strings.ToLower(getEnv("RECO_SOURCE", SourceFixture)),
			FixturePath:   getEnv("RECO_FIXTURE_PATH", ""),
			DefaultK:      defaultK,
			OrderStatuses: splitList(getEnv("RECO_ORDER_STATUSES", "paid,completed")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "my_green_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	if cfg.Recommend.DefaultK < 0 {
		return nil, errors.New("default k cannot be negative")
	}

	switch cfg.Recommend.Source {
	case SourceFixture:
	case SourcePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
		if len(cfg.Recommend.OrderStatuses) == 0 {
			return nil, errors.New("missing order statuses")
		}
	default:
		return nil, errors.New("unknown recommendation source")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
