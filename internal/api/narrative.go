// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package api

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// greetingFor picks a salutation from the hour of day.
func greetingFor(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// NarrativeText composes the personalized reply shown (and spoken)
// after the research pipeline finishes. Pure function of its inputs so
// it stays deterministic under test.
func NarrativeText(profile *models.UserProfile, report *models.PersonalizationReport, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s, %s!", greetingFor(now), profile.Name))

	if profile.Activity != "" {
		b.WriteString(fmt.Sprintf(" Sounds like you're interested in %s.", profile.Activity))
	}
	if city := profile.Location.City; city != "" {
		b.WriteString(fmt.Sprintf(" Let's see what's happening around %s.", city))
	}

	if social := profile.NormalizedSocial(); len(social) > 0 {
		platforms := make([]string, 0, len(social))
		for platform := range social {
			platforms = append(platforms, string(platform))
		}
		sort.Strings(platforms)
		b.WriteString(fmt.Sprintf(" I also looked at your %s presence to personalize things.",
			strings.Join(platforms, ", ")))
	}

	if report != nil && len(report.Interests) > 0 {
		b.WriteString(" Based on what I found, you might enjoy:")
		for i, interest := range report.Interests {
			b.WriteString(fmt.Sprintf("\n%d. %s events and activities", i+1, interest.Category))
		}
	}

	if profile.Location.Latitude != 0 || profile.Location.Longitude != 0 {
		b.WriteString("\nCheck the map for events happening near you.")
	} else {
		b.WriteString("\nShare your location to see events on the map.")
	}

	return b.String()
}

// introductionTexts are the narration templates per onboarding step.
// The %s slot takes the time-of-day greeting.
var introductionTexts = map[string]string{
	"welcome":  "%s! Welcome to WhatNowAI. Let's find something great for you to do.",
	"name":     "%s! First, tell me your name so I can personalize your suggestions.",
	"activity": "%s! What would you like to do? Describe an activity and I'll take it from there.",
	"social":   "%s! Optionally share a social handle or two so I can tailor results to you.",
	"location": "%s! Share your location so I can find events happening nearby.",
}

// IntroductionText renders the narration for an onboarding step,
// including the visitor's name once it is known. Returns false for an
// unknown step.
func IntroductionText(step, name string, now time.Time) (string, bool) {
	template, ok := introductionTexts[step]
	if !ok {
		return "", false
	}

	greeting := greetingFor(now)
	if name != "" {
		greeting = fmt.Sprintf("%s, %s", greeting, name)
	}
	return fmt.Sprintf(template, greeting), true
}
