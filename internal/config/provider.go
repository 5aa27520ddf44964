package config

import "sync"

// Provider memoizes a single Load call. The first Get resolves the
// configuration and every later call returns the same *Config and error.
type Provider struct {
	overrides *CLIOverrides

	once sync.Once
	cfg  *Config
	err  error
}

// NewProvider creates a Provider that loads configuration with the given overrides.
func NewProvider(overrides *CLIOverrides) *Provider {
	return &Provider{overrides: overrides}
}

// Get returns the resolved configuration, loading it on first use.
func (p *Provider) Get() (*Config, error) {
	p.once.Do(func() {
		p.cfg, p.err = Load(p.overrides)
	})
	return p.cfg, p.err
}
