// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/events"
	"github.com/JawandS/WhatNowAI/internal/geocoding"
	"github.com/JawandS/WhatNowAI/internal/logging"
	"github.com/JawandS/WhatNowAI/internal/models"
	"github.com/JawandS/WhatNowAI/internal/research"
	"github.com/JawandS/WhatNowAI/internal/tts"
)

// defaultMapZoom frames roughly a city-sized area around the center.
const defaultMapZoom = 12

// mapAttribution credits the tile provider rendered by the client.
const mapAttribution = "© OpenStreetMap contributors"

// Handler holds the collaborators behind the HTTP endpoints. Optional
// collaborators (events, tts) may be nil when unconfigured; their
// endpoints then return 503.
type Handler struct {
	aggregator *research.Aggregator
	catalog    events.Catalog
	engine     *events.Engine
	geocoder   geocoding.Geocoder
	tts        *tts.Service
	started    time.Time
}

// NewHandler creates the endpoint handler set.
func NewHandler(
	aggregator *research.Aggregator,
	catalog events.Catalog,
	engine *events.Engine,
	geocoder geocoding.Geocoder,
	ttsService *tts.Service,
) *Handler {
	return &Handler{
		aggregator: aggregator,
		catalog:    catalog,
		engine:     engine,
		geocoder:   geocoder,
		tts:        ttsService,
		started:    time.Now(),
	}
}

// Submit validates the onboarding form and echoes the accepted values.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SubmitRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	profile := models.UserProfile{
		Name:     req.Name,
		Activity: req.Activity,
	}
	for platform, handle := range req.Social {
		if profile.Social == nil {
			profile.Social = make(map[models.Platform]string, len(req.Social))
		}
		profile.Social[models.Platform(platform)] = handle
	}

	rw.Success(map[string]interface{}{
		"name":     profile.Name,
		"activity": profile.Activity,
		"social":   profile.NormalizedSocial(),
	})
}

// Process runs the research pipeline and returns the personalization
// report with a narrative reply.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ProcessRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	profile := req.Profile()

	// A coordinate-only location still feeds the location source once
	// reverse geocoding fills in the city. Failure degrades research,
	// it does not fail the request.
	if profile.Location.City == "" && (profile.Location.Latitude != 0 || profile.Location.Longitude != 0) {
		resolved, err := h.geocoder.Reverse(r.Context(), profile.Location.Latitude, profile.Location.Longitude)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("reverse geocoding failed")
		} else {
			profile.Location = *resolved
		}
	}

	report := h.aggregator.Research(r.Context(), profile)

	rw.Success(map[string]interface{}{
		"personalization": report,
		"narrative":       NarrativeText(profile, report, time.Now()),
	})
}

// Geocode reverse geocodes a coordinate pair.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req GeocodeRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	loc, err := h.geocoder.Reverse(r.Context(), req.Latitude, req.Longitude)
	if err != nil {
		rw.ExternalServiceError("geocoding", err)
		return
	}
	rw.Success(loc)
}

// EventMap discovers events near the location and ranks them against
// the caller's interests.
func (h *Handler) EventMap(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.catalog == nil {
		rw.ServiceUnavailable("event discovery is not configured")
		return
	}

	var req MapRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	loc := req.Location
	if loc.Latitude == 0 && loc.Longitude == 0 {
		query := locationQuery(loc)
		if query == "" {
			rw.BadRequest("location requires coordinates or a place name")
			return
		}
		resolved, err := h.geocoder.Forward(r.Context(), query)
		if err != nil {
			rw.ExternalServiceError("geocoding", err)
			return
		}
		loc = *resolved
	}

	interests := req.RankingInterests()
	found, err := events.SearchByCategories(r.Context(), h.catalog, loc, events.CategoriesForInterests(interests))
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("event search failed")
		found = nil
	}

	rw.Success(models.EventMap{
		Events:        h.engine.Rank(found, interests),
		CategoryStats: h.engine.CategoryStats(found),
		Center:        loc,
		Zoom:          defaultMapZoom,
		Attribution:   mapAttribution,
	})
}

// locationQuery renders a structured location as forward-geocoding
// text: "City, State", falling back to the raw address.
func locationQuery(loc models.Location) string {
	parts := make([]string, 0, 2)
	if loc.City != "" {
		parts = append(parts, loc.City)
	}
	if loc.State != "" {
		parts = append(parts, loc.State)
	}
	if len(parts) == 0 {
		return strings.TrimSpace(loc.Address)
	}
	return strings.Join(parts, ", ")
}

// MapSearch filters a ranked event set by substring, and optionally to
// one category, without re-ranking. The client resubmits the events it
// holds.
func (h *Handler) MapSearch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	// The ranked set arrives in the body; an absent body means there
	// is nothing to filter.
	var req MapSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		rw.BadRequest(fmt.Sprintf("invalid request body: %v", err))
		return
	}

	query := r.URL.Query().Get("q")
	filtered := h.engine.FilterByText(req.Events, query)

	if raw := r.URL.Query().Get("category"); raw != "" {
		category, ok := models.ParseEventCategory(raw)
		if !ok {
			rw.BadRequest("unknown event category: " + raw)
			return
		}
		filtered = h.engine.FilterByCategory(filtered, category)
	}

	rw.Success(map[string]interface{}{
		"events": filtered,
		"query":  query,
		"count":  len(filtered),
	})
}

// Introduction synthesizes the narration clip for an onboarding step.
func (h *Handler) Introduction(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.tts == nil {
		rw.ServiceUnavailable("text to speech is not configured")
		return
	}

	step := chi.URLParam(r, "step")

	var req IntroductionRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	text, ok := IntroductionText(step, req.Name, time.Now())
	if !ok {
		rw.NotFound("unknown introduction step: " + step)
		return
	}

	audioID, err := h.tts.Synthesize(r.Context(), text)
	if err != nil {
		rw.ExternalServiceError("tts", err)
		return
	}

	rw.Success(map[string]interface{}{
		"audio_id": audioID,
		"text":     text,
	})
}

// Audio serves a synthesized clip by ID.
func (h *Handler) Audio(w http.ResponseWriter, r *http.Request) {
	if h.tts == nil {
		NewResponseWriter(w, r).ServiceUnavailable("text to speech is not configured")
		return
	}

	audioID := chi.URLParam(r, "id")
	path, err := h.tts.Path(audioID)
	if err != nil {
		NewResponseWriter(w, r).NotFound("audio clip not found")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	http.ServeFile(w, r, path)
}

// Health reports overall status and which collaborators are enabled.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"components": map[string]bool{
			"events": h.catalog != nil,
			"tts":    h.tts != nil,
		},
	})
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe. The service is ready once the
// research aggregator exists; optional collaborators do not gate it.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.aggregator == nil {
		rw.ServiceUnavailable("research pipeline not ready")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
