package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SITE_BASE_URL", "")
	t.Setenv("DATA_PATH", "")
	t.Setenv("VALKEY_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("env: got %q, want %q", cfg.Env, "development")
	}
	if cfg.DataPath != "sitesmith.db" {
		t.Errorf("data path: got %q, want %q", cfg.DataPath, "sitesmith.db")
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev true by default")
	}
	if cfg.CacheEnabled() {
		t.Error("expected cache disabled without VALKEY_HOST")
	}
}

func TestLoadProductionRequiresSiteBaseURL(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SITE_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when SITE_BASE_URL unset in production")
	}

	t.Setenv("SITE_BASE_URL", "https://sites.example.com/site/")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Trailing slash is trimmed so URL joining stays predictable.
	if cfg.SiteBaseURL != "https://sites.example.com/site" {
		t.Errorf("site base url: got %q", cfg.SiteBaseURL)
	}
}

func TestAddr(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("addr: got %q, want %q", cfg.Addr(), "127.0.0.1:9090")
	}
}
