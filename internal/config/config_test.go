// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Research.GlobalTimeout != 30*time.Second {
		t.Errorf("expected 30s global timeout, got %s", cfg.Research.GlobalTimeout)
	}
	if cfg.Research.SourceTimeout != 5*time.Second {
		t.Errorf("expected 5s source timeout, got %s", cfg.Research.SourceTimeout)
	}
	if cfg.Research.MaxResults != 10 {
		t.Errorf("expected 10 max results, got %d", cfg.Research.MaxResults)
	}
	if cfg.Research.MinContentLength != 20 {
		t.Errorf("expected min content length 20, got %d", cfg.Research.MinContentLength)
	}
	if cfg.Research.MaxConcurrent != 3 {
		t.Errorf("expected 3 concurrent permits, got %d", cfg.Research.MaxConcurrent)
	}
	if cfg.Events.RadiusMiles != 50 {
		t.Errorf("expected 50 mile radius, got %d", cfg.Events.RadiusMiles)
	}
	if cfg.Events.PageSize != 20 {
		t.Errorf("expected page size 20, got %d", cfg.Events.PageSize)
	}
	if cfg.Events.WindowDays != 30 {
		t.Errorf("expected 30 day window, got %d", cfg.Events.WindowDays)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "negative global timeout",
			mutate:  func(c *Config) { c.Research.GlobalTimeout = -time.Second },
			wantErr: "research.global_timeout",
		},
		{
			name:    "zero max results",
			mutate:  func(c *Config) { c.Research.MaxResults = 0 },
			wantErr: "research.max_results",
		},
		{
			name:    "zero concurrent permits",
			mutate:  func(c *Config) { c.Research.MaxConcurrent = 0 },
			wantErr: "research.max_concurrent",
		},
		{
			name:    "page size over API limit",
			mutate:  func(c *Config) { c.Events.PageSize = 500 },
			wantErr: "events.page_size",
		},
		{
			name:    "empty geocoding base URL",
			mutate:  func(c *Config) { c.Geocoding.BaseURL = "" },
			wantErr: "geocoding.base_url",
		},
		{
			name:    "zero tts max age",
			mutate:  func(c *Config) { c.TTS.MaxAge = 0 },
			wantErr: "tts.max_age",
		},
		{
			name:    "zero rate limit requests",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "security.rate_limit_reqs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRateLimitValidationSkippedWhenDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limiter should not be validated, got: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HTTP_PORT", "server.port"},
		{"TICKETMASTER_API_KEY", "events.ticketmaster_api_key"},
		{"RESEARCH_GLOBAL_TIMEOUT", "research.global_timeout"},
		{"GITHUB_TOKEN", "research.github_token"},
		{"GEOCODING_BASE_URL", "geocoding.base_url"},
		{"TTS_MAX_AGE", "tts.max_age"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TICKETMASTER_API_KEY", "test-key")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Events.TicketmasterAPIKey != "test-key" {
		t.Errorf("expected env API key, got %q", cfg.Events.TicketmasterAPIKey)
	}
	if !cfg.Events.Enabled() {
		t.Error("expected events enabled with API key set")
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.Security.CORSOrigins)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}
