package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 2),
	}
}

// build merges all collected configs in order (first source wins for
// non-zero fields), applies fallback defaults, and validates the result.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyFallbacks()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

// applyFallbacks fills derived defaults that depend on other fields and
// therefore cannot be expressed as envDefault tags.
func (cfg *Config) applyFallbacks() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.GenAI.DefaultRegion == "" {
		cfg.GenAI.DefaultRegion = cfg.Spaces.Region
	}
	if cfg.Spaces.Endpoint == "" && cfg.Spaces.Region != "" {
		cfg.Spaces.Endpoint = "https://" + cfg.Spaces.Region + ".digitaloceanspaces.com"
	}
}
