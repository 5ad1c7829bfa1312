package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Query    QueryConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// UpstreamConfig describes the provider order API being proxied.
type UpstreamConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // per-call timeout in seconds
}

// QueryConfig tunes the list pipeline. The flags consolidate the behavior
// differences between the old per-endpoint handler variants.
type QueryConfig struct {
	PublicBaseURL     string // origin used to build pagination links
	EnrichConcurrency int    // max concurrent detail fetches per batch
	EnrichDetails     bool   // fetch detail records to compute durations
	ForceCompleted    bool   // default order_status=completed when the caller sends none
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "https://bulkprovider.com/adminapi/v2"),
			APIKey:  os.Getenv("API_KEY"),
			Timeout: getEnvAsInt("UPSTREAM_TIMEOUT", 20),
		},
		Query: QueryConfig{
			PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
			EnrichConcurrency: getEnvAsInt("ENRICH_CONCURRENCY", 5),
			EnrichDetails:     getEnvAsBool("ENRICH_DETAILS", true),
			ForceCompleted:    getEnvAsBool("FORCE_COMPLETED", false),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Upstream.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	if c.Query.EnrichConcurrency < 1 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
