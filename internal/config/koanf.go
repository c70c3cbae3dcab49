// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/whatnowai/config.yaml",
	"/etc/whatnowai/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. These are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8000,
			Host:    "0.0.0.0",
			Timeout: 60 * time.Second,
		},
		Research: ResearchConfig{
			GlobalTimeout:    30 * time.Second,
			SourceTimeout:    5 * time.Second,
			MaxResults:       10,
			MinContentLength: 20,
			MinInterval:      1 * time.Second,
			MaxConcurrent:    3,
			GitHubToken:      "",
		},
		Events: EventsConfig{
			TicketmasterAPIKey: "",
			RadiusMiles:        50,
			PageSize:           20,
			WindowDays:         30,
			RequestTimeout:     10 * time.Second,
		},
		Geocoding: GeocodingConfig{
			BaseURL:        "https://nominatim.openstreetmap.org",
			UserAgent:      "WhatNowAI/1.0 (https://github.com/JawandS/WhatNowAI)",
			RequestTimeout: 10 * time.Second,
		},
		TTS: TTSConfig{
			AudioDir:        "/data/audio",
			Voice:           "en",
			CleanupInterval: 10 * time.Minute,
			MaxAge:          1 * time.Hour,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in defaults without consulting the config
// file or environment. Useful for tests and tooling.
func Default() *Config {
	return defaultConfig()
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config File: optional YAML config file (if present)
//  3. Environment Variables: override any setting
//
// A .env file in the working directory is loaded into the process
// environment first, so API keys can live next to the binary during
// development without being committed.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TICKETMASTER_API_KEY -> events.ticketmaster_api_key etc.
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths are parsed as
// comma-separated slices when they arrive as env var strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices
// for known slice fields. Env vars come in as strings but the config
// expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config
// paths. Unmapped variables are skipped so random process environment
// does not pollute the config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - TICKETMASTER_API_KEY -> events.ticketmaster_api_key
//   - RESEARCH_GLOBAL_TIMEOUT -> research.global_timeout
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",

		// Research mappings
		"research_global_timeout":     "research.global_timeout",
		"research_source_timeout":     "research.source_timeout",
		"research_max_results":        "research.max_results",
		"research_min_content_length": "research.min_content_length",
		"research_min_interval":       "research.min_interval",
		"research_max_concurrent":     "research.max_concurrent",
		"github_token":                "research.github_token",

		// Events mappings
		"ticketmaster_api_key":      "events.ticketmaster_api_key",
		"ticketmaster_radius_miles": "events.radius_miles",
		"ticketmaster_page_size":    "events.page_size",
		"ticketmaster_window_days":  "events.window_days",
		"ticketmaster_timeout":      "events.request_timeout",

		// Geocoding mappings
		"geocoding_base_url":   "geocoding.base_url",
		"geocoding_user_agent": "geocoding.user_agent",
		"geocoding_timeout":    "geocoding.request_timeout",

		// TTS mappings
		"tts_audio_dir":        "tts.audio_dir",
		"tts_voice":            "tts.voice",
		"tts_cleanup_interval": "tts.cleanup_interval",
		"tts_max_age":          "tts.max_age",

		// Security mappings
		"cors_origins":        "security.cors_origins",
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
