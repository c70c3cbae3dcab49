// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package events

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/models"
)

const discoveryFixture = `{
  "_embedded": {
    "events": [
      {
        "id": "ev1",
        "name": "Jazz at the Paramount",
        "url": "https://tickets.example/ev1",
        "info": "An evening of live jazz.",
        "pleaseNote": "Doors open at 7pm.",
        "images": [
          {"url": "https://img.example/ev1-thumb.jpg", "width": 205},
          {"url": "https://img.example/ev1-large.jpg", "width": 1024},
          {"url": "https://img.example/ev1-retina.jpg", "width": 2048}
        ],
        "dates": {"start": {"localDate": "2026-09-12", "localTime": "20:00:00"}},
        "classifications": [
          {"segment": {"name": "Music"}, "genre": {"name": "Jazz"}}
        ],
        "priceRanges": [{"min": 25.0, "max": 90.0, "currency": "USD"}],
        "_embedded": {
          "venues": [
            {
              "name": "Paramount Theatre",
              "address": {"line1": "713 Congress Ave"},
              "city": {"name": "Austin"},
              "state": {"stateCode": "TX"},
              "location": {"latitude": "30.2692", "longitude": "-97.7417"}
            }
          ]
        }
      },
      {
        "id": "ev2",
        "name": "Mystery Expo",
        "dates": {"start": {}},
        "classifications": [
          {"segment": {"name": "Undefined"}, "genre": {}}
        ]
      }
    ]
  }
}`

func TestConvertDiscoveryResponse(t *testing.T) {
	var body discoveryResponse
	if err := json.Unmarshal([]byte(discoveryFixture), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(body.Embedded.Events) != 2 {
		t.Fatalf("expected 2 raw events, got %d", len(body.Embedded.Events))
	}

	event := convertEvent(body.Embedded.Events[0])
	if event.ID != "ev1" || event.Name != "Jazz at the Paramount" {
		t.Errorf("identity fields wrong: %+v", event)
	}
	if event.Category != models.EventCategoryMusic {
		t.Errorf("expected music bucket, got %s", event.Category)
	}
	if event.Genre != "Jazz" {
		t.Errorf("expected genre Jazz, got %q", event.Genre)
	}
	if event.Date != "2026-09-12" || event.Time != "20:00:00" {
		t.Errorf("date fields wrong: %q %q", event.Date, event.Time)
	}
	if event.Venue.Name != "Paramount Theatre" || event.Venue.City != "Austin" || event.Venue.State != "TX" {
		t.Errorf("venue wrong: %+v", event.Venue)
	}
	if event.Venue.Latitude != 30.2692 || event.Venue.Longitude != -97.7417 {
		t.Errorf("coordinates not parsed: %+v", event.Venue)
	}
	if event.ImageURL != "https://img.example/ev1-large.jpg" {
		t.Errorf("expected first image at least 640px wide, got %q", event.ImageURL)
	}
	if event.Description != "An evening of live jazz. Doors open at 7pm." {
		t.Errorf("description wrong: %q", event.Description)
	}

	// Price information must never reach the internal shape.
	serialized, err := json.Marshal(event)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(serialized), "price") || strings.Contains(string(serialized), "25") {
		t.Errorf("pricing leaked into the event payload: %s", serialized)
	}
}

func TestConvertEventSparseFields(t *testing.T) {
	var body discoveryResponse
	if err := json.Unmarshal([]byte(discoveryFixture), &body); err != nil {
		t.Fatal(err)
	}

	event := convertEvent(body.Embedded.Events[1])
	if event.Category != models.EventCategoryMiscellaneous {
		t.Errorf("unknown segment should bucket as miscellaneous, got %s", event.Category)
	}
	if event.Venue.Name != "" || event.Venue.Latitude != 0 {
		t.Errorf("missing venue should stay zero-valued, got %+v", event.Venue)
	}
}

func TestBestImageFallback(t *testing.T) {
	images := []discoveryImage{
		{URL: "https://img.example/small.jpg", Width: 100},
		{URL: "https://img.example/smaller.jpg", Width: 64},
	}
	if got := bestImage(images); got != "https://img.example/small.jpg" {
		t.Errorf("expected fallback to the first image, got %q", got)
	}
}

func TestCategoryToSegment(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"music", "Music"},
		{"sports", "Sports"},
		{"arts", "Arts & Theatre"},
		{"family", "Family"},
		{"miscellaneous", ""},
		{"jazz brunch", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := categoryToSegment(tt.keyword); got != tt.want {
			t.Errorf("categoryToSegment(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestSegmentToCategory(t *testing.T) {
	tests := []struct {
		segment string
		want    models.EventCategory
	}{
		{"Music", models.EventCategoryMusic},
		{"Sports", models.EventCategorySports},
		{"Arts & Theatre", models.EventCategoryArts},
		{"Family", models.EventCategoryFamily},
		{"Film", models.EventCategoryMiscellaneous},
		{"", models.EventCategoryMiscellaneous},
	}
	for _, tt := range tests {
		if got := segmentToCategory(tt.segment); got != tt.want {
			t.Errorf("segmentToCategory(%q) = %s, want %s", tt.segment, got, tt.want)
		}
	}
}
