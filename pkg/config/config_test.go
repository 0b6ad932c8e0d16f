package config

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_BACKEND", "SERVER_PORT", "TIMEZONE", "LOW_WELLBEING_THRESHOLD", "REQUIRE_AUTH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.StorageBackend != StorageBackendPostgres {
		t.Errorf("expected postgres backend, got %q", cfg.StorageBackend)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.ServerPort)
	}
	if cfg.LowWellbeingThreshold != 20 {
		t.Errorf("expected low wellbeing threshold 20, got %v", cfg.LowWellbeingThreshold)
	}
	if cfg.HighWellbeingThreshold != 80 {
		t.Errorf("expected high wellbeing threshold 80, got %v", cfg.HighWellbeingThreshold)
	}
	if cfg.RequireAuth {
		t.Error("expected auth to be optional by default")
	}
	if cfg.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", cfg.Location())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("LOW_WELLBEING_THRESHOLD", "15")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()

	if cfg.StorageBackend != StorageBackendSQLite {
		t.Errorf("expected sqlite backend, got %q", cfg.StorageBackend)
	}
	if cfg.LowWellbeingThreshold != 15 {
		t.Errorf("expected threshold 15, got %v", cfg.LowWellbeingThreshold)
	}
	if !cfg.RequireAuth {
		t.Error("expected REQUIRE_AUTH=true to be honoured")
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Errorf("expected Europe/Berlin, got %v", cfg.Location())
	}
	if cfg.LogrusLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogrusLevel())
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOW_WELLBEING_THRESHOLD", "low")
	t.Setenv("PERSIST_PREDICTIONS", "maybe")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := LoadConfig()

	if cfg.LowWellbeingThreshold != 20 {
		t.Errorf("expected fallback threshold 20, got %v", cfg.LowWellbeingThreshold)
	}
	if cfg.PersistPredictions {
		t.Error("expected fallback false for PERSIST_PREDICTIONS")
	}
	if cfg.Location() != time.UTC {
		t.Errorf("expected UTC fallback, got %v", cfg.Location())
	}
	if cfg.LogrusLevel() != logrus.InfoLevel {
		t.Errorf("expected info fallback, got %v", cfg.LogrusLevel())
	}
}

func TestDefaultSigningKeyIsWarnedAbout(t *testing.T) {
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	warned := func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, "JWT_SIGNING_KEY") {
				return true
			}
		}
		return false
	}

	t.Setenv("JWT_SIGNING_KEY", "")
	if cfg := LoadConfig(); cfg.JWTSigningKey != DefaultJWTSigningKey {
		t.Fatalf("expected the default key, got %q", cfg.JWTSigningKey)
	}
	if !warned() {
		t.Error("expected a warning for the default signing key")
	}

	hook.Reset()
	t.Setenv("JWT_SIGNING_KEY", "a-real-key")
	LoadConfig()
	if warned() {
		t.Error("unexpected signing key warning for a configured key")
	}
}
