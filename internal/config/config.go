package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	HTTP struct {
		Address    string        `yaml:"address"     env:"ADDRESS"`
		RateLimit  int           `yaml:"rate_limit"  env:"RATE_LIMIT"`  // requests per window per client, 0 disables
		RateWindow time.Duration `yaml:"rate_window" env:"RATE_WINDOW"`
		// TrustProxy keys clients by X-Forwarded-For / X-Real-IP. Enable only
		// behind a reverse proxy that sets those headers itself.
		TrustProxy bool `yaml:"trust_proxy" env:"TRUST_PROXY"`
	} `yaml:"http" envPrefix:"HTTP_"`

	Site SiteConfig `yaml:"site" envPrefix:"SITE_"`

	Logging struct {
		Level  string `yaml:"level"  env:"LEVEL"`  // "debug" | "info" | "warn" | "error"
		Format string `yaml:"format" env:"FORMAT"` // "auto" | "text" | "json"
	} `yaml:"logging" envPrefix:"LOG_"`
}

// SiteConfig describes where the page points and how it is announced.
type SiteConfig struct {
	// Origin of the calculator service hosting /dashboard and /widget.
	Origin       string `yaml:"origin"        env:"ORIGIN"`
	ContactEmail string `yaml:"contact_email" env:"CONTACT_EMAIL"`
	Language     string `yaml:"language"      env:"LANGUAGE"`
}

func (c *Config) Defaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RateWindow == 0 {
		c.HTTP.RateWindow = time.Minute
	}
	if c.Site.Origin == "" {
		c.Site.Origin = "http://127.0.0.1:8000"
	}
	if c.Site.ContactEmail == "" {
		c.Site.ContactEmail = "support@beregne.no"
	}
	if c.Site.Language == "" {
		c.Site.Language = "nb"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "auto"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.RateLimit < 0 {
		errs = append(errs, errors.New("http.rate_limit must not be negative"))
	}
	if c.HTTP.RateWindow < 0 {
		errs = append(errs, errors.New("http.rate_window must not be negative"))
	}
	if err := validateOrigin(c.Site.Origin); err != nil {
		errs = append(errs, err)
	}
	if _, err := mail.ParseAddress(c.Site.ContactEmail); err != nil {
		errs = append(errs, fmt.Errorf("site.contact_email: %w", err))
	}
	if _, err := language.Parse(c.Site.Language); err != nil {
		errs = append(errs, fmt.Errorf("site.language: %w", err))
	}
	switch c.Logging.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want auto, text or json", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("site.origin: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site.origin %q: scheme must be http or https", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("site.origin %q: missing host", origin)
	}
	return nil
}

// Tag returns the configured page language. Call after Validate.
func (s SiteConfig) Tag() language.Tag {
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.Make("nb")
	}
	return tag
}
