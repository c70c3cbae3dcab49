// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package models

import "strings"

// EventCategory buckets an event by its primary classification.
type EventCategory string

// Event categories. Anything that does not map to a known bucket
// falls into miscellaneous.
const (
	EventCategoryMusic         EventCategory = "music"
	EventCategorySports        EventCategory = "sports"
	EventCategoryArts          EventCategory = "arts"
	EventCategoryFamily        EventCategory = "family"
	EventCategoryMiscellaneous EventCategory = "miscellaneous"
)

// EventCategories lists every event bucket in presentation order.
var EventCategories = []EventCategory{
	EventCategoryMusic,
	EventCategorySports,
	EventCategoryArts,
	EventCategoryFamily,
	EventCategoryMiscellaneous,
}

// ParseEventCategory normalizes a bucket name. Returns false when the
// bucket is not known.
func ParseEventCategory(s string) (EventCategory, bool) {
	c := EventCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range EventCategories {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Event is a discovered local event. Pricing information is deliberately
// absent from the public shape.
type Event struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    EventCategory `json:"category"`
	Genre       string        `json:"genre,omitempty"`
	Date        string        `json:"date,omitempty"`
	Time        string        `json:"time,omitempty"`
	URL         string        `json:"url,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Venue       Venue         `json:"venue"`
}

// Venue is where an event takes place.
type Venue struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// RankedEvent is an event with its personalization score and the
// human-readable reasons behind it.
type RankedEvent struct {
	Event   Event    `json:"event"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// CategoryStats counts events per bucket over the full discovered set,
// before any relevance filtering.
type CategoryStats map[EventCategory]int

// EventMap is the payload rendered on the map view: ranked events plus
// category counts, the center point, and tile metadata.
type EventMap struct {
	Events        []RankedEvent `json:"events"`
	CategoryStats CategoryStats `json:"category_stats"`
	Center        Location      `json:"center"`
	Zoom          int           `json:"zoom"`
	Attribution   string        `json:"attribution"`
}
