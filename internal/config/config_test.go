package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromReaderDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if cfg.HTTP.Address != ":8080" {
		t.Fatalf("HTTP.Address = %q, want :8080", cfg.HTTP.Address)
	}
	if cfg.HTTP.RateLimit != 0 || cfg.HTTP.RateWindow != time.Minute {
		t.Fatalf("rate limit = %d/%s, want 0/1m", cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
	}
	if cfg.HTTP.TrustProxy {
		t.Fatal("HTTP.TrustProxy = true, want false by default")
	}
	if cfg.Site.Origin != "http://127.0.0.1:8000" {
		t.Fatalf("Site.Origin = %q", cfg.Site.Origin)
	}
	if cfg.Site.ContactEmail != "support@beregne.no" {
		t.Fatalf("Site.ContactEmail = %q", cfg.Site.ContactEmail)
	}
	if got := cfg.Site.Tag().String(); got != "nb" {
		t.Fatalf("Site.Tag() = %q, want nb", got)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "auto" {
		t.Fatalf("logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestFromReaderYAML(t *testing.T) {
	t.Parallel()

	in := `
http:
  address: ":9090"
  rate_limit: 120
  rate_window: 30s
  trust_proxy: true
site:
  origin: https://app.beregne.no
  contact_email: hei@beregne.no
  language: nn
logging:
  level: debug
  format: text
`
	cfg, err := FromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if cfg.HTTP.Address != ":9090" || cfg.HTTP.RateLimit != 120 || cfg.HTTP.RateWindow != 30*time.Second || !cfg.HTTP.TrustProxy {
		t.Fatalf("HTTP = %+v", cfg.HTTP)
	}
	if cfg.Site.Origin != "https://app.beregne.no" || cfg.Site.ContactEmail != "hei@beregne.no" {
		t.Fatalf("Site = %+v", cfg.Site)
	}
	if got := cfg.Site.Tag().String(); got != "nn" {
		t.Fatalf("Site.Tag() = %q, want nn", got)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Fatalf("Logging = %+v", cfg.Logging)
	}
}

func TestFromReaderRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := FromReader(strings.NewReader("database:\n  host: db\n")); err == nil {
		t.Fatal("FromReader() error = nil, want unknown field error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"relative origin", func(c *Config) { c.Site.Origin = "/dashboard" }, "scheme"},
		{"ftp origin", func(c *Config) { c.Site.Origin = "ftp://example.com" }, "scheme"},
		{"no host", func(c *Config) { c.Site.Origin = "http://" }, "missing host"},
		{"bad email", func(c *Config) { c.Site.ContactEmail = "support" }, "site.contact_email"},
		{"bad language", func(c *Config) { c.Site.Language = "not a tag" }, "site.language"},
		{"negative rate", func(c *Config) { c.HTTP.RateLimit = -1 }, "rate_limit"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg Config
			cfg.Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := FromReader(strings.NewReader("http:\n  address: \":9090\"\n"))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	environ := map[string]string{
		"BEREGNE_HTTP_RATE_LIMIT":  "5",
		"BEREGNE_SITE_ORIGIN":      "https://calc.example.no",
		"BEREGNE_LOG_FORMAT":       "json",
		"BEREGNE_HTTP_RATE_WINDOW": "10s",
	}
	if err := applyEnv(cfg, environ); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if cfg.HTTP.Address != ":9090" {
		t.Fatalf("HTTP.Address = %q, want file value kept", cfg.HTTP.Address)
	}
	if cfg.HTTP.RateLimit != 5 || cfg.HTTP.RateWindow != 10*time.Second {
		t.Fatalf("rate = %d/%s", cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
	}
	if cfg.Site.Origin != "https://calc.example.no" {
		t.Fatalf("Site.Origin = %q", cfg.Site.Origin)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("Logging.Format = %q", cfg.Logging.Format)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Parallel()

	var cfg Config
	if err := applyEnv(&cfg, map[string]string{"BEREGNE_HTTP_RATE_LIMIT": "lots"}); err == nil {
		t.Fatal("applyEnv() error = nil, want parse error")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want not exist", err)
	}
	if cfg == nil || cfg.HTTP.Address == "" {
		t.Fatalf("Load() cfg = %+v, want defaults", cfg)
	}
}

func TestLoadUnreadablePathFails(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(notDir, []byte("http:\n  address: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	// A path below a regular file fails with ENOTDIR, not ErrNotExist.
	cfg, err := Load(filepath.Join(notDir, "config.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want open error")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, should not look like a missing file", err)
	}
	if cfg != nil {
		t.Fatalf("Load() cfg = %+v, want nil", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("site:\n  origin: https://app.beregne.no\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BEREGNE_HTTP_ADDRESS", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.Origin != "https://app.beregne.no" {
		t.Fatalf("Site.Origin = %q", cfg.Site.Origin)
	}
	if cfg.HTTP.Address != ":7070" {
		t.Fatalf("HTTP.Address = %q, want env override", cfg.HTTP.Address)
	}
}
