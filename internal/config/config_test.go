package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ADMIN_PORT", "WEATHER_CONDITION", "LOG_LEVEL", "LOG_PRETTY", "LOG_FILE",
		APIKeyEnv, "OPENAI_API_URL", "OPENAI_MODEL", "PROBE_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad_Defaults tests the defaults without any environment
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != "5001" {
		t.Errorf("expected port 5001, got %s", cfg.Port)
	}
	if cfg.AdminPort != "" {
		t.Errorf("expected admin port disabled, got %s", cfg.AdminPort)
	}
	if cfg.APIURL != "https://api.openai.com/v1/chat/completions" {
		t.Errorf("unexpected API URL: %s", cfg.APIURL)
	}
	if cfg.Model != "gpt-5-nano" {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
	if cfg.ProbeTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.ProbeTimeout())
	}
	if cfg.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.APIKey)
	}
	if cfg.EnvFileLoaded {
		t.Error("expected EnvFileLoaded false for a missing file")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

// TestLoad_FromEnvironment tests environment overrides
func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "6001")
	t.Setenv("ADMIN_PORT", "9191")
	t.Setenv(APIKeyEnv, "sk-test")
	t.Setenv("PROBE_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_PRETTY", "false")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != "6001" {
		t.Errorf("expected port 6001, got %s", cfg.Port)
	}
	if cfg.AdminPort != "9191" {
		t.Errorf("expected admin port 9191, got %s", cfg.AdminPort)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("expected API key from env, got %q", cfg.APIKey)
	}
	if cfg.ProbeTimeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.ProbeTimeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected lower-cased log level, got %s", cfg.LogLevel)
	}
	if cfg.LogPretty {
		t.Error("expected LogPretty false")
	}
}

// TestLoad_FromEnvFile tests reading a .env file
func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "OPENAI_API_KEY=sk-from-file\nPORT=7001\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(APIKeyEnv)
		os.Unsetenv("PORT")
	})

	cfg := LoadFrom(path)

	if !cfg.EnvFileLoaded {
		t.Error("expected EnvFileLoaded true")
	}
	if cfg.APIKey != "sk-from-file" {
		t.Errorf("expected API key from file, got %q", cfg.APIKey)
	}
	if cfg.Port != "7001" {
		t.Errorf("expected port from file, got %s", cfg.Port)
	}
}

// TestLoad_InvalidNumbersFallBack tests invalid numeric values
func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROBE_TIMEOUT_SECONDS", "soon")
	t.Setenv("LOG_PRETTY", "maybe")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.ProbeTimeoutSeconds != DefaultProbeTimeout {
		t.Errorf("expected default timeout, got %d", cfg.ProbeTimeoutSeconds)
	}
	if !cfg.LogPretty {
		t.Error("expected default LogPretty true")
	}
}

// TestValidate_Errors tests validation failures
func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"non numeric port", func(c *Config) { c.Port = "http" }, "Port"},
		{"empty port", func(c *Config) { c.Port = "" }, "Port"},
		{"non numeric admin port", func(c *Config) { c.AdminPort = "x" }, "AdminPort"},
		{"bad url", func(c *Config) { c.APIURL = "not a url" }, "APIURL"},
		{"empty model", func(c *Config) { c.Model = "" }, "Model"},
		{"zero timeout", func(c *Config) { c.ProbeTimeoutSeconds = 0 }, "ProbeTimeoutSeconds"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %s, got %v", tt.field, err)
			}
		})
	}
}

// TestValidateServer_IgnoresKeyCheckerFields tests that each command checks only its own fields
func TestValidateServer_IgnoresKeyCheckerFields(t *testing.T) {
	clearEnv(t)
	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	cfg.APIURL = "not a url"
	cfg.ProbeTimeoutSeconds = 0

	if err := cfg.ValidateServer(); err != nil {
		t.Errorf("expected server config to be valid, got %v", err)
	}

	cfg.Port = "http"
	err := cfg.ValidateServer()
	if err == nil || !strings.Contains(err.Error(), "Port") {
		t.Errorf("expected Port error, got %v", err)
	}
}

// TestValidateProbe_IgnoresServerFields tests that server settings never block the key checker
func TestValidateProbe_IgnoresServerFields(t *testing.T) {
	clearEnv(t)
	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	cfg.Port = "http"
	cfg.AdminPort = "x"
	cfg.WeatherCondition = ""

	if err := cfg.ValidateProbe(); err != nil {
		t.Errorf("expected key checker config to be valid, got %v", err)
	}

	cfg.Model = ""
	cfg.LogLevel = "loud"
	err := cfg.ValidateProbe()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, field := range []string{"Model", "LogLevel"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error to mention %s, got %v", field, err)
		}
	}
	if strings.Contains(err.Error(), "Port") {
		t.Errorf("expected no server fields in error, got %v", err)
	}
}
