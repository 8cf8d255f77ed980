package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Geofence GeofenceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SlogLevel maps the configured log level onto slog. Unknown values fall
// back to info.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GeofenceConfig describes the office circle used for attendance validation.
type GeofenceConfig struct {
	Name            string
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	Enabled         bool
	ReasonRequired  bool
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fieldhr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Geofence configuration
	centerLat, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LATITUDE", "25.6146835780726"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LATITUDE: %w", err)
	}
	centerLng, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LONGITUDE", "85.1126174983296"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LONGITUDE: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "50"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}

	config.Geofence = GeofenceConfig{
		Name:            getEnv("GEOFENCE_NAME", "Head Office"),
		CenterLatitude:  centerLat,
		CenterLongitude: centerLng,
		RadiusMeters:    radius,
		Enabled:         getEnvBool("GEOFENCE_ENABLED", true),
		ReasonRequired:  getEnvBool("GEOFENCE_REASON_REQUIRED", true),
	}

	return config, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
