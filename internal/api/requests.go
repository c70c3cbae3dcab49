// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/models"
	"github.com/JawandS/WhatNowAI/internal/validation"
)

// maxRequestBody caps request bodies at 1 MiB.
const maxRequestBody = 1 << 20

// SubmitRequest is the onboarding form submission.
type SubmitRequest struct {
	Name     string            `json:"name" validate:"required,max=100"`
	Activity string            `json:"activity" validate:"required,max=500"`
	Social   map[string]string `json:"social" validate:"omitempty,dive,max=100"`
}

// ProcessRequest carries the full profile for the research pipeline.
type ProcessRequest struct {
	Name     string            `json:"name" validate:"required,max=100"`
	Activity string            `json:"activity" validate:"max=500"`
	Location models.Location   `json:"location"`
	Social   map[string]string `json:"social" validate:"omitempty,dive,max=100"`
}

// Profile converts the request into a domain profile. Unknown social
// platforms are dropped by NormalizedSocial downstream.
func (r *ProcessRequest) Profile() *models.UserProfile {
	social := make(map[models.Platform]string, len(r.Social))
	for platform, handle := range r.Social {
		social[models.Platform(platform)] = handle
	}
	return &models.UserProfile{
		Name:     r.Name,
		Activity: r.Activity,
		Location: r.Location,
		Social:   social,
	}
}

// GeocodeRequest asks for a reverse geocode of a coordinate pair.
type GeocodeRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// MapRequest builds the event map. PersonalizationData is the report a
// prior /process call returned; interests inside it drive ranking.
type MapRequest struct {
	Location            models.Location               `json:"location"`
	Interests           []models.Interest             `json:"interests" validate:"omitempty,dive"`
	PersonalizationData *models.PersonalizationReport `json:"personalization_data"`
}

// RankingInterests returns the interests to rank with, preferring the
// explicit list over the prior personalization report.
func (r *MapRequest) RankingInterests() []models.Interest {
	if len(r.Interests) > 0 {
		return r.Interests
	}
	if r.PersonalizationData != nil {
		return r.PersonalizationData.Interests
	}
	return nil
}

// MapSearchRequest filters a previously ranked event set. The client
// resubmits the ranked events, keeping the server stateless.
type MapSearchRequest struct {
	Events []models.RankedEvent `json:"events"`
}

// IntroductionRequest personalizes a step introduction clip.
type IntroductionRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Activity string `json:"activity" validate:"max=500"`
}

// decodeJSON decodes and validates a request body into dst. On failure
// it writes the error response and returns false.
func decodeJSON(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(rw.w, r.Body, maxRequestBody)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest(fmt.Sprintf("invalid request body: %v", err))
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ValidationError("request validation failed", verr.Details())
		return false
	}
	return true
}
