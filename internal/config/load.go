package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override, e.g. BEREGNE_HTTP_ADDRESS.
const EnvPrefix = "BEREGNE_"

// Load reads the YAML file at path and applies environment overrides.
// A missing file yields env overrides and defaults alongside an error
// matching fs.ErrNotExist; any other open failure is fatal.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open config: %w", err)
		}
		var cfg Config
		if envErr := applyEnv(&cfg, nil); envErr != nil {
			return nil, envErr
		}
		cfg.Defaults()
		if vErr := cfg.Validate(); vErr != nil {
			return nil, vErr
		}
		return &cfg, err
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, nil); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// FromReader decodes a YAML config without consulting the environment.
func FromReader(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

func decode(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields whose BEREGNE_* variable is set. A nil
// environ reads the process environment.
func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
