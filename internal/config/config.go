package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ncruces/go-strftime"
	"gopkg.in/yaml.v3"
)

const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 8000
	defaultDatetimeFormat = "%Y-%m-%dT%H:%M:%SZ"
	defaultStaticDir      = "app/static"
	defaultTemplatesDir   = "app/templates"
	defaultAPIBaseURL     = ""
	defaultLogLevel       = "info"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
	defaultEnvFile        = ".env"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables (.env included) > YAML config > Defaults
type Config struct {
	Host                 string
	Port                 int
	DatetimeFormat       string
	DatetimeLayout       string
	StaticDir            string
	TemplatesDir         string
	APIBaseURL           string
	LogLevel             string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int

	attributions []string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Host                 string        `yaml:"host"`
	Port                 int           `yaml:"port"`
	DatetimeFormat       string        `yaml:"datetime_format"`
	StaticDir            string        `yaml:"static_dir"`
	TemplatesDir         string        `yaml:"templates_dir"`
	APIBaseURL           string        `yaml:"api_base_url"`
	LogLevel             string        `yaml:"log_level"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	EnvFile        string
	Host           *string
	Port           *int
	APIBaseURL     *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Addr returns the host:port pair the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Attributions returns a copy of the asset credits rendered by the UI.
func (c *Config) Attributions() []string {
	out := make([]string, len(c.attributions))
	copy(out, c.attributions)
	return out
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (*Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(cfg, yamlCfg); err != nil {
			return nil, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	envFile := defaultEnvFile
	if overrides != nil && overrides.EnvFile != "" {
		envFile = overrides.EnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	if err := applyEnvConfig(cfg); err != nil {
		return nil, err
	}

	if overrides != nil {
		applyCLIOverrides(cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() *Config {
	return &Config{
		Host:                 defaultHost,
		Port:                 defaultPort,
		DatetimeFormat:       defaultDatetimeFormat,
		StaticDir:            defaultStaticDir,
		TemplatesDir:         defaultTemplatesDir,
		APIBaseURL:           defaultAPIBaseURL,
		LogLevel:             defaultLogLevel,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
		attributions:         defaultAttributions(),
	}
}

// loadEnvFile populates the process environment from a dotenv file.
// Variables that are already set win over the file; a missing file is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	setString(&cfg.Host, yamlCfg.Host)
	setString(&cfg.DatetimeFormat, yamlCfg.DatetimeFormat)
	setString(&cfg.StaticDir, yamlCfg.StaticDir)
	setString(&cfg.TemplatesDir, yamlCfg.TemplatesDir)
	setString(&cfg.APIBaseURL, yamlCfg.APIBaseURL)
	setString(&cfg.LogLevel, yamlCfg.LogLevel)

	if yamlCfg.Port != 0 {
		cfg.Port = yamlCfg.Port
	}

	durations := []struct {
		name  string
		raw   string
		value *time.Duration
	}{
		{"shutdown_grace_period", yamlCfg.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", yamlCfg.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", yamlCfg.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", yamlCfg.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.name, err)
		}
		*d.value = parsed
	}

	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}
	if yamlCfg.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}
	if yamlCfg.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if host, ok := lookupEnv("HOST"); ok {
		cfg.Host = host
	}

	if port, ok := lookupEnv("PORT"); ok {
		value, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", port, err)
		}
		cfg.Port = value
	}

	if format, ok := lookupEnv("DATETIME_FORMAT"); ok {
		cfg.DatetimeFormat = format
	}
	if dir, ok := lookupEnv("STATIC_DIR"); ok {
		cfg.StaticDir = dir
	}
	if dir, ok := lookupEnv("TEMPLATES_DIR"); ok {
		cfg.TemplatesDir = dir
	}
	if baseURL, ok := lookupEnv("API_BASE_URL"); ok {
		cfg.APIBaseURL = baseURL
	}
	if level, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = level
	}

	if rps, ok := lookupEnv("RATE_LIMIT_RPS"); ok {
		value, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return fmt.Errorf("parse RATE_LIMIT_RPS %q: %w", rps, err)
		}
		cfg.RateLimitRPS = value
	}

	if burst, ok := lookupEnv("RATE_LIMIT_BURST"); ok {
		value, err := strconv.Atoi(burst)
		if err != nil {
			return fmt.Errorf("parse RATE_LIMIT_BURST %q: %w", burst, err)
		}
		cfg.RateLimitBurst = value
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Host != nil && *overrides.Host != "" {
		cfg.Host = *overrides.Host
	}
	if overrides.Port != nil && *overrides.Port > 0 {
		cfg.Port = *overrides.Port
	}
	if overrides.APIBaseURL != nil {
		cfg.APIBaseURL = *overrides.APIBaseURL
	}
	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}
	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration and derives the Go time layout.
func validateConfig(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}

	layout, err := strftime.Layout(cfg.DatetimeFormat)
	if err != nil {
		return fmt.Errorf("DATETIME_FORMAT %q: %w", cfg.DatetimeFormat, err)
	}
	cfg.DatetimeLayout = layout

	return nil
}

// lookupEnv reports a variable as present only when it is set to a non-blank value.
func lookupEnv(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
