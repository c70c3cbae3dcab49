// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package main is the entry point for the WhatNowAI server.
//
// WhatNowAI researches a visitor's public presence, extracts their
// interests, and ranks nearby events against them. The server exposes
// a JSON API driving the onboarding flow: submit a profile, run the
// research pipeline, reverse geocode a position, and build a ranked
// event map.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered loading (defaults, YAML, env)
//  2. Research aggregator: search clients, rate limiter, sources
//  3. Event catalog: Ticketmaster Discovery (when an API key is set)
//  4. Geocoder: Nominatim reverse/forward geocoding
//  5. TTS: synthesis, audio store, cleanup service
//  6. HTTP server: chi routes under suture supervision
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (TICKETMASTER_API_KEY, GITHUB_TOKEN, ...)
//   - Config file (config.yml, or CONFIG_PATH)
//   - Built-in defaults
//
// A .env file next to the binary is folded into the environment for
// development.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections and waits up to 10s for in-flight requests.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/JawandS/WhatNowAI/internal/api"
	"github.com/JawandS/WhatNowAI/internal/config"
	"github.com/JawandS/WhatNowAI/internal/events"
	"github.com/JawandS/WhatNowAI/internal/geocoding"
	"github.com/JawandS/WhatNowAI/internal/logging"
	"github.com/JawandS/WhatNowAI/internal/metrics"
	"github.com/JawandS/WhatNowAI/internal/research"
	"github.com/JawandS/WhatNowAI/internal/supervisor"
	"github.com/JawandS/WhatNowAI/internal/tts"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Str("version", version).Msg("Starting WhatNowAI")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Research pipeline
	aggregator := research.NewDefaultAggregator(cfg.Research)

	// Event discovery is optional; without an API key the map endpoint
	// reports 503.
	var catalog events.Catalog
	if cfg.Events.Enabled() {
		catalog = events.NewTicketmasterClient(cfg.Events)
		logging.Info().Msg("Ticketmaster event discovery enabled")
	} else {
		logging.Warn().Msg("TICKETMASTER_API_KEY not set - event discovery disabled")
	}

	geocoder := geocoding.New(cfg.Geocoding)

	// Supervision tree
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	// TTS is optional; a failure to create the audio dir disables it
	// rather than aborting startup.
	var ttsService *tts.Service
	synth := tts.NewGoogleSynthesizer(10*time.Second, cfg.TTS.Voice)
	ttsService, err = tts.NewService(synth, cfg.TTS)
	if err != nil {
		logging.Warn().Err(err).Msg("TTS disabled - audio directory unavailable")
		ttsService = nil
	} else {
		tree.AddBackgroundService(tts.NewCleanupService(ttsService, cfg.TTS.CleanupInterval))
	}

	handler := api.NewHandler(aggregator, catalog, events.NewEngine(), geocoder, ttsService)
	router := api.NewRouter(handler, api.NewMiddleware(cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(supervisor.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	go trackUptime(ctx)

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// trackUptime updates the uptime gauge once a minute.
func trackUptime(ctx context.Context) {
	started := time.Now()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.AppUptime.Set(time.Since(started).Seconds())
		}
	}
}
