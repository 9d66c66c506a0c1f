package config

import (
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/tmp/geosearch-test")
	t.Setenv("CACHE_SIZE", "250")
	t.Setenv("ANALYSIS_TIMEOUT", "45s")

	cfg := FromEnv()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataDir != "/tmp/geosearch-test" {
		t.Errorf("DataDir = %s, want /tmp/geosearch-test", cfg.DataDir)
	}
	if cfg.CacheSize != 250 {
		t.Errorf("CacheSize = %d, want 250", cfg.CacheSize)
	}
	if cfg.AnalysisTimeout != 45*time.Second {
		t.Errorf("AnalysisTimeout = %s, want 45s", cfg.AnalysisTimeout)
	}
}

func TestFromEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("CACHE_SIZE", "not-a-number")
	t.Setenv("ANALYSIS_TIMEOUT", "soon")

	cfg := FromEnv()
	defaults := Default()
	if cfg.CacheSize != defaults.CacheSize {
		t.Errorf("CacheSize = %d, want default %d", cfg.CacheSize, defaults.CacheSize)
	}
	if cfg.AnalysisTimeout != defaults.AnalysisTimeout {
		t.Errorf("AnalysisTimeout = %s, want default %s", cfg.AnalysisTimeout, defaults.AnalysisTimeout)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
		{"zero timeout", func(c *Config) { c.AnalysisTimeout = 0 }},
		{"zero rate limit", func(c *Config) { c.RateLimitRPS = 0 }},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
