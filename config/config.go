// Package config holds the server configuration, loaded from environment
// variables (optionally via a .env file loaded in main).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds server configuration.
type Config struct {
	Port            string
	DataDir         string
	CacheSize       int
	AnalysisTimeout time.Duration
	RateLimitRPS    float64
	RateLimitBurst  float64
}

// Default returns conservative defaults for local use.
func Default() *Config {
	return &Config{
		Port:            "8082",
		DataDir:         "data",
		CacheSize:       1000,
		AnalysisTimeout: 30 * time.Second,
		RateLimitRPS:    2,
		RateLimitBurst:  5,
	}
}

// FromEnv overlays environment variables onto the defaults.
func FromEnv() *Config {
	cfg := Default()
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheSize = n
		}
	}
	if v := os.Getenv("ANALYSIS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AnalysisTimeout = d
		}
	}
	return cfg
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive")
	}
	if c.AnalysisTimeout <= 0 {
		return fmt.Errorf("analysis timeout must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1")
	}
	return nil
}
