// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package api

import (
	"strings"
	"testing"
	"time"

	"github.com/JawandS/WhatNowAI/internal/models"
)

func TestGreetingFor(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{9, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}

	for _, tt := range tests {
		now := time.Date(2026, 8, 28, tt.hour, 0, 0, 0, time.UTC)
		if got := greetingFor(now); got != tt.want {
			t.Errorf("greetingFor(hour=%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestNarrativeTextFullProfile(t *testing.T) {
	profile := &models.UserProfile{
		Name:     "Ada",
		Activity: "live jazz",
		Location: models.Location{Latitude: 30.27, Longitude: -97.74, City: "Austin"},
		Social:   map[models.Platform]string{models.PlatformGitHub: "@adal"},
	}
	report := &models.PersonalizationReport{
		Interests: []models.Interest{
			{Category: "music", Confidence: 2},
			{Category: "arts", Confidence: 1},
		},
	}

	morning := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	got := NarrativeText(profile, report, morning)

	for _, want := range []string{
		"Good morning, Ada!",
		"live jazz",
		"Austin",
		"github",
		"1. music events",
		"2. arts events",
		"near you",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing %q:\n%s", want, got)
		}
	}
}

func TestNarrativeTextMinimalProfile(t *testing.T) {
	profile := &models.UserProfile{Name: "Ada"}

	got := NarrativeText(profile, nil, time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC))

	if !strings.Contains(got, "Good evening, Ada!") {
		t.Errorf("narrative missing greeting:\n%s", got)
	}
	if !strings.Contains(got, "Share your location") {
		t.Errorf("narrative missing location prompt:\n%s", got)
	}
	if strings.Contains(got, "you might enjoy") {
		t.Errorf("narrative suggests interests without a report:\n%s", got)
	}
}

func TestNarrativeTextDeterministic(t *testing.T) {
	profile := &models.UserProfile{
		Name: "Ada",
		Social: map[models.Platform]string{
			models.PlatformGitHub:  "adal",
			models.PlatformTwitter: "ada",
			models.PlatformYouTube: "adavids",
		},
	}
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	first := NarrativeText(profile, nil, now)
	for i := 0; i < 10; i++ {
		if got := NarrativeText(profile, nil, now); got != first {
			t.Fatal("narrative text varies across identical inputs")
		}
	}
}

func TestIntroductionText(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	got, ok := IntroductionText("welcome", "Ada", now)
	if !ok {
		t.Fatal("welcome step not found")
	}
	if !strings.Contains(got, "Good morning, Ada") {
		t.Errorf("introduction missing personalized greeting: %q", got)
	}

	got, ok = IntroductionText("name", "", now)
	if !ok {
		t.Fatal("name step not found")
	}
	if strings.Contains(got, ", !") {
		t.Errorf("introduction mangles empty name: %q", got)
	}

	if _, ok := IntroductionText("bogus", "Ada", now); ok {
		t.Error("unknown step unexpectedly found")
	}
}
