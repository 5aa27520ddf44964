// Package config loads runtime settings from multiple sources (YAML files,
// a .env file, environment variables, CLI flags) with precedence: CLI flags >
// Environment variables > YAML config > Defaults. Missing variables fall back
// to defaults; malformed values are reported as errors.
package config
