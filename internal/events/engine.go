// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JawandS/WhatNowAI/internal/metrics"
	"github.com/JawandS/WhatNowAI/internal/models"
)

// baselineScore keeps unmatched events visible, ranked below anything
// that matched an interest.
const baselineScore = 0.1

// baselineReason is attached when no interest matched an event.
const baselineReason = "Happening near you"

// interestToEventCategory maps interest taxonomy categories onto event
// buckets. Interests without a natural bucket fall back to
// miscellaneous so a technology enthusiast still gets expos and
// conventions surfaced.
var interestToEventCategory = map[string]models.EventCategory{
	"music":      models.EventCategoryMusic,
	"sports":     models.EventCategorySports,
	"fitness":    models.EventCategorySports,
	"arts":       models.EventCategoryArts,
	"learning":   models.EventCategoryMiscellaneous,
	"technology": models.EventCategoryMiscellaneous,
	"food":       models.EventCategoryMiscellaneous,
	"travel":     models.EventCategoryMiscellaneous,
}

// Engine scores and orders candidate events against extracted
// interests. Ranking is pure: no network, no shared mutable state, and
// stable ordering for identical input.
type Engine struct{}

// NewEngine creates a relevance engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Rank computes a relevance score and recommendation reason per event
// and returns the set sorted by descending score. Ties keep input
// order, so identical input yields identical output. Location is not a
// ranking signal; an empty location changes nothing.
func (e *Engine) Rank(events []models.Event, interests []models.Interest) []models.RankedEvent {
	// Highest-confidence interest wins per bucket; interests arrive
	// sorted by descending confidence.
	confidenceByBucket := make(map[models.EventCategory]models.Interest, len(interests))
	for _, interest := range interests {
		bucket, ok := interestToEventCategory[interest.Category]
		if !ok {
			continue
		}
		if _, exists := confidenceByBucket[bucket]; !exists {
			confidenceByBucket[bucket] = interest
		}
	}

	ranked := make([]models.RankedEvent, len(events))
	for i, event := range events {
		score := baselineScore
		reasons := []string{baselineReason}
		if interest, ok := confidenceByBucket[event.Category]; ok {
			score = interest.Confidence
			reasons = []string{fmt.Sprintf("Matches your interest in %s", interest.Category)}
		}
		ranked[i] = models.RankedEvent{
			Event:   event,
			Score:   score,
			Reasons: reasons,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	metrics.EventsRanked.Observe(float64(len(ranked)))
	return ranked
}

// CategoryStats counts events per bucket over the unfiltered input set.
// Every bucket is present in the result, zero-valued when empty, so
// filter buttons always render a complete count row.
func (e *Engine) CategoryStats(events []models.Event) models.CategoryStats {
	stats := make(models.CategoryStats, len(models.EventCategories))
	for _, category := range models.EventCategories {
		stats[category] = 0
	}
	for _, event := range events {
		stats[event.Category]++
	}
	return stats
}

// FilterByText filters an already-ranked set by case-insensitive
// substring match across name, venue, and description. Order is
// preserved; no re-ranking happens here.
func (e *Engine) FilterByText(ranked []models.RankedEvent, query string) []models.RankedEvent {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return ranked
	}
	out := make([]models.RankedEvent, 0, len(ranked))
	for _, re := range ranked {
		haystack := strings.ToLower(re.Event.Name + " " + re.Event.Venue.Name + " " + re.Event.Description)
		if strings.Contains(haystack, query) {
			out = append(out, re)
		}
	}
	return out
}

// FilterByCategory filters an already-ranked set to one bucket,
// preserving order.
func (e *Engine) FilterByCategory(ranked []models.RankedEvent, category models.EventCategory) []models.RankedEvent {
	out := make([]models.RankedEvent, 0, len(ranked))
	for _, re := range ranked {
		if re.Event.Category == category {
			out = append(out, re)
		}
	}
	return out
}
