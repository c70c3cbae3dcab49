// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and an optional YAML config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. External Services:
//     - Research: Background research sources (search, GitHub)
//     - Events: Ticketmaster Discovery API event search
//     - Geocoding: Nominatim forward and reverse geocoding
//     - TTS: Audio synthesis and retention
//
//  2. Infrastructure:
//     - Server: HTTP server settings (port, host, timeouts)
//     - Security: CORS and request rate limiting
//
//  3. Observability:
//     - Logging: Log levels and output formats
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Research  ResearchConfig  `koanf:"research"`
	Events    EventsConfig    `koanf:"events"`
	Geocoding GeocodingConfig `koanf:"geocoding"`
	TTS       TTSConfig       `koanf:"tts"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8000)
//   - HTTP_HOST: Listen address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 60s)
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ResearchConfig holds background research pipeline settings.
//
// The pipeline fans out one query per enabled source and abandons any
// source that has not returned when GlobalTimeout elapses.
//
// Environment Variables:
//   - RESEARCH_GLOBAL_TIMEOUT: Whole-pipeline deadline (default: 30s)
//   - RESEARCH_SOURCE_TIMEOUT: Per-request HTTP timeout (default: 5s)
//   - RESEARCH_MAX_RESULTS: Results kept per category (default: 10)
//   - RESEARCH_MIN_CONTENT_LENGTH: Minimum snippet length in runes (default: 20)
//   - RESEARCH_MIN_INTERVAL: Minimum delay between outbound requests (default: 1s)
//   - RESEARCH_MAX_CONCURRENT: Concurrent outbound request permits (default: 3)
//   - GITHUB_TOKEN: Optional GitHub API token for higher rate limits
type ResearchConfig struct {
	GlobalTimeout    time.Duration `koanf:"global_timeout"`
	SourceTimeout    time.Duration `koanf:"source_timeout"`
	MaxResults       int           `koanf:"max_results"`
	MinContentLength int           `koanf:"min_content_length"`
	MinInterval      time.Duration `koanf:"min_interval"`
	MaxConcurrent    int           `koanf:"max_concurrent"`
	GitHubToken      string        `koanf:"github_token"`
}

// EventsConfig holds Ticketmaster Discovery API settings.
//
// Environment Variables:
//   - TICKETMASTER_API_KEY: Discovery API consumer key (required for events)
//   - TICKETMASTER_RADIUS_MILES: Search radius (default: 50)
//   - TICKETMASTER_PAGE_SIZE: Events per request (default: 20)
//   - TICKETMASTER_WINDOW_DAYS: How far ahead to search (default: 30)
type EventsConfig struct {
	TicketmasterAPIKey string        `koanf:"ticketmaster_api_key"`
	RadiusMiles        int           `koanf:"radius_miles"`
	PageSize           int           `koanf:"page_size"`
	WindowDays         int           `koanf:"window_days"`
	RequestTimeout     time.Duration `koanf:"request_timeout"`
}

// Enabled reports whether event discovery can run.
func (c EventsConfig) Enabled() bool {
	return c.TicketmasterAPIKey != ""
}

// GeocodingConfig holds Nominatim settings.
//
// Environment Variables:
//   - GEOCODING_BASE_URL: Nominatim endpoint (default: https://nominatim.openstreetmap.org)
//   - GEOCODING_USER_AGENT: User-Agent sent on every request
type GeocodingConfig struct {
	BaseURL        string        `koanf:"base_url"`
	UserAgent      string        `koanf:"user_agent"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// TTSConfig holds text-to-speech audio settings.
//
// Environment Variables:
//   - TTS_AUDIO_DIR: Directory for synthesized audio files (default: /data/audio)
//   - TTS_VOICE: Voice identifier passed to the synthesizer
//   - TTS_CLEANUP_INTERVAL: How often stale audio files are removed (default: 10m)
//   - TTS_MAX_AGE: Age after which an audio file is removed (default: 1h)
type TTSConfig struct {
	AudioDir        string        `koanf:"audio_dir"`
	Voice           string        `koanf:"voice"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	MaxAge          time.Duration `koanf:"max_age"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable the HTTP rate limiter entirely
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file and line
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks configuration invariants that cannot be expressed
// through defaults alone.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Research.GlobalTimeout <= 0 {
		return fmt.Errorf("research.global_timeout must be positive, got %s", c.Research.GlobalTimeout)
	}
	if c.Research.SourceTimeout <= 0 {
		return fmt.Errorf("research.source_timeout must be positive, got %s", c.Research.SourceTimeout)
	}
	if c.Research.MaxResults < 1 {
		return fmt.Errorf("research.max_results must be at least 1, got %d", c.Research.MaxResults)
	}
	if c.Research.MaxConcurrent < 1 {
		return fmt.Errorf("research.max_concurrent must be at least 1, got %d", c.Research.MaxConcurrent)
	}
	if c.Events.RadiusMiles < 1 {
		return fmt.Errorf("events.radius_miles must be at least 1, got %d", c.Events.RadiusMiles)
	}
	if c.Events.PageSize < 1 || c.Events.PageSize > 200 {
		return fmt.Errorf("events.page_size must be between 1 and 200, got %d", c.Events.PageSize)
	}
	if c.Events.WindowDays < 1 {
		return fmt.Errorf("events.window_days must be at least 1, got %d", c.Events.WindowDays)
	}
	if c.Geocoding.BaseURL == "" {
		return fmt.Errorf("geocoding.base_url must not be empty")
	}
	if c.TTS.CleanupInterval <= 0 {
		return fmt.Errorf("tts.cleanup_interval must be positive, got %s", c.TTS.CleanupInterval)
	}
	if c.TTS.MaxAge <= 0 {
		return fmt.Errorf("tts.max_age must be positive, got %s", c.TTS.MaxAge)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	return nil
}
