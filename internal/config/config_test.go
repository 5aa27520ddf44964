package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var settingsEnv = []string{
	"HOST", "PORT", "DATETIME_FORMAT", "STATIC_DIR", "TEMPLATES_DIR",
	"API_BASE_URL", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnv unsets every settings variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range settingsEnv {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Host != defaultHost {
		t.Fatalf("expected default host %s, got %s", defaultHost, cfg.Host)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %d, got %d", defaultPort, cfg.Port)
	}
	if cfg.DatetimeFormat != defaultDatetimeFormat {
		t.Fatalf("unexpected datetime format: %s", cfg.DatetimeFormat)
	}
	if cfg.DatetimeLayout != "2006-01-02T15:04:05Z" {
		t.Fatalf("unexpected datetime layout: %s", cfg.DatetimeLayout)
	}
	if cfg.StaticDir != "app/static" || cfg.TemplatesDir != "app/templates" {
		t.Fatalf("unexpected directories: %s, %s", cfg.StaticDir, cfg.TemplatesDir)
	}
	if cfg.APIBaseURL != "" {
		t.Fatalf("expected empty API base URL, got %s", cfg.APIBaseURL)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if got := cfg.Addr(); got != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr: %s", got)
	}
	if len(cfg.Attributions()) != 7 {
		t.Fatalf("expected 7 attributions, got %d", len(cfg.Attributions()))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", " 9000 ")
	t.Setenv("DATETIME_FORMAT", "%Y/%m/%d")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("TEMPLATES_DIR", "/srv/templates")
	t.Setenv("API_BASE_URL", "https://api.example.com")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != 9000 {
		t.Fatalf("unexpected listener %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.DatetimeFormat != "%Y/%m/%d" || cfg.DatetimeLayout != "2006/01/02" {
		t.Fatalf("unexpected datetime settings: %s -> %s", cfg.DatetimeFormat, cfg.DatetimeLayout)
	}
	if cfg.StaticDir != "/srv/static" || cfg.TemplatesDir != "/srv/templates" {
		t.Fatalf("unexpected directories: %s, %s", cfg.StaticDir, cfg.TemplatesDir)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected API base URL: %s", cfg.APIBaseURL)
	}
}

func TestLoadRejectsMalformedPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for malformed PORT")
	}

	t.Setenv("PORT", "70000")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for out of range PORT")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := []byte(`host: 10.0.0.1
port: 7000
api_base_url: https://yaml.example.com
write_timeout: 3s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 0
`)
	if err := os.WriteFile(path, yamlContent, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7100")
	host := "192.168.1.1"

	cfg, err := Load(&CLIOverrides{ConfigFile: path, Host: &host})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Host != host {
		t.Fatalf("expected CLI host to win, got %s", cfg.Host)
	}
	if cfg.Port != 7100 {
		t.Fatalf("expected env port to beat YAML, got %d", cfg.Port)
	}
	if cfg.APIBaseURL != "https://yaml.example.com" {
		t.Fatalf("expected YAML API base URL, got %s", cfg.APIBaseURL)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("expected YAML write timeout, got %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging disabled by YAML")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 0 {
		t.Fatalf("expected rate limit disabled by YAML, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("read_header_timeout: soon\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "localhost")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("HOST=example.internal\nAPI_BASE_URL=http://runs.local\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{EnvFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Fatalf("expected process environment to win over .env, got %s", cfg.Host)
	}
	if cfg.APIBaseURL != "http://runs.local" {
		t.Fatalf("expected API base URL from .env, got %s", cfg.APIBaseURL)
	}
}

func TestAttributionsAreImmutable(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	first := cfg.Attributions()
	first[0] = "tampered"

	if cfg.Attributions()[0] == "tampered" {
		t.Fatalf("expected attributions to be copied on access")
	}
}

func TestLoadRateLimitCLIOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	rps := 0.0
	burst := 3
	cfg, err := Load(&CLIOverrides{RateLimitRPS: &rps, RateLimitBurst: &burst})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 3 {
		t.Fatalf("expected CLI rate limits to win, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	unset := -1.0
	cfg, err = Load(&CLIOverrides{RateLimitRPS: &unset})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("expected env rate limits when flags are unset, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}
