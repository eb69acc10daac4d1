package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// TimeZone is the IANA location in which calendar days are counted.
	TimeZone string

	AgeRefreshSchedule  string
	ExpirySweepSchedule string

	LogLevel string
}

// LoadConfig reads the process environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBName:              getEnv("DB_NAME", "aidtracker"),
		DBSslMode:           getEnv("DB_SSLMODE", "disable"),
		TimeZone:            getEnv("TZ", "America/Tegucigalpa"),
		AgeRefreshSchedule:  getEnv("AGE_REFRESH_SCHEDULE", "0 1 * * *"),
		ExpirySweepSchedule: getEnv("EXPIRY_SWEEP_SCHEDULE", "0 * * * *"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
