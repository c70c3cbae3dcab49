// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package models defines the shared domain types exchanged between the
// research pipeline, interest extraction, event ranking, and the HTTP API.
package models

import "strings"

// Platform identifies a social media platform a user may link.
type Platform string

// Supported social platforms.
const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformGitHub    Platform = "github"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// KnownPlatforms lists every platform the research pipeline understands,
// in the order sources are launched.
var KnownPlatforms = []Platform{
	PlatformTwitter,
	PlatformInstagram,
	PlatformGitHub,
	PlatformLinkedIn,
	PlatformTikTok,
	PlatformYouTube,
}

// ParsePlatform normalizes a platform name. Returns false when the
// platform is not supported.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range KnownPlatforms {
		if p == known {
			return known, true
		}
	}
	return "", false
}

// Location is a geographic point with optional address metadata.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Zipcode   string  `json:"zipcode,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// UserProfile is the onboarding submission driving research and ranking.
//
// Social handles are keyed by platform. A leading "@" on a handle is
// stripped during normalization; an empty handle disables that platform's
// research source.
type UserProfile struct {
	Name     string              `json:"name" validate:"required,max=100"`
	Activity string              `json:"activity" validate:"max=500"`
	Location Location            `json:"location"`
	Social   map[Platform]string `json:"social,omitempty"`
}

// NormalizedSocial returns the social handle map with blank entries
// removed and leading "@" stripped from each handle.
func (p *UserProfile) NormalizedSocial() map[Platform]string {
	out := make(map[Platform]string, len(p.Social))
	for platform, handle := range p.Social {
		handle = strings.TrimSpace(handle)
		handle = strings.TrimPrefix(handle, "@")
		if handle == "" {
			continue
		}
		if normalized, ok := ParsePlatform(string(platform)); ok {
			out[normalized] = handle
		}
	}
	return out
}
