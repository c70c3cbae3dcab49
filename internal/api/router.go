// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the handler set and middleware into an http.Handler.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates the router.
func NewRouter(handler *Handler, middleware *Middleware) *Router {
	return &Router{
		handler:    handler,
		middleware: middleware,
	}
}

// Setup configures all routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())
	r.Use(SecurityHeaders())
	r.Use(RequestLogging())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(PrometheusMetrics())

		r.Route("/health", func(r chi.Router) {
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimit())

			r.Post("/submit", router.handler.Submit)
			r.Post("/geocode", router.handler.Geocode)
			r.Post("/map", router.handler.EventMap)
			r.Get("/map/search", router.handler.MapSearch)
			r.Post("/tts/introduction/{step}", router.handler.Introduction)
			r.Get("/audio/{id}", router.handler.Audio)
		})

		// The pipeline endpoint fans out to external services, so it
		// carries its own tighter limit.
		r.With(router.middleware.RateLimitProcess()).Post("/process", router.handler.Process)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
