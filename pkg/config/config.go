package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StorageBackendPostgres	= "postgres"
	StorageBackendSQLite	= "sqlite"
	StorageBackendMemory	= "memory"
)

const DefaultJWTSigningKey = "your-secret-signing-key"

type Config struct {
	StorageBackend		string
	PostgresHost		string
	PostgresPort		string
	PostgresUser		string
	PostgresPassword	string
	PostgresDB		string
	SQLitePath		string
	SeedFile		string
	SeedUserID		string
	TelegramToken		string
	ServerHost		string
	ServerPort		string
	JWTSigningKey		string
	RequireAuth		bool
	Timezone		string
	LowWellbeingThreshold	float64
	HighWellbeingThreshold	float64
	PersistPredictions	bool
	LogLevel		string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using process environment")
	}

	cfg := &Config{
		StorageBackend:		strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendPostgres)),
		PostgresHost:		getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:		getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:		getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:	getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:		getEnv("POSTGRES_DB", "moodjournal"),
		SQLitePath:		getEnv("SQLITE_PATH", "moodjournal.db"),
		SeedFile:		getEnv("JOURNAL_SEED_FILE", ""),
		SeedUserID:		getEnv("JOURNAL_SEED_USER", "demo"),
		TelegramToken:		getEnv("TELEGRAM_TOKEN", ""),
		ServerHost:		getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:		getEnv("SERVER_PORT", "8080"),
		JWTSigningKey:		getEnv("JWT_SIGNING_KEY", DefaultJWTSigningKey),
		RequireAuth:		getEnvBool("REQUIRE_AUTH", false),
		Timezone:		getEnv("TIMEZONE", "UTC"),
		LowWellbeingThreshold:	getEnvFloat("LOW_WELLBEING_THRESHOLD", 20),
		HighWellbeingThreshold:	getEnvFloat("HIGH_WELLBEING_THRESHOLD", 80),
		PersistPredictions:	getEnvBool("PERSIST_PREDICTIONS", false),
		LogLevel:		getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSigningKey == DefaultJWTSigningKey {
		logrus.Warn("JWT_SIGNING_KEY is not set, using the insecure default signing key")
	}

	return cfg
}

// Location resolves Timezone, falling back to UTC for unknown zone names.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logrus.Warnf("Unknown TIMEZONE %q, falling back to UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

func (c *Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", c.LogLevel)
		return logrus.InfoLevel
	}
	return level
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("Invalid boolean for %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.Warnf("Invalid number for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
