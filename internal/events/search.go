// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package events

import (
	"context"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// CategoriesForInterests maps ranked interests onto the distinct event
// buckets worth searching, preserving the interests' order. Interests
// without a bucket mapping are skipped.
func CategoriesForInterests(interests []models.Interest) []models.EventCategory {
	seen := make(map[models.EventCategory]bool, len(interests))
	out := make([]models.EventCategory, 0, len(interests))
	for _, interest := range interests {
		bucket, ok := interestToEventCategory[interest.Category]
		if !ok || seen[bucket] {
			continue
		}
		seen[bucket] = true
		out = append(out, bucket)
	}
	return out
}

// SearchByCategories runs one catalog query per bucket and merges the
// results, deduplicating by event ID. With no buckets a single
// uncategorized search runs instead. A bucket whose search fails is
// skipped; an error comes back only when every search failed.
func SearchByCategories(ctx context.Context, catalog Catalog, loc models.Location, categories []models.EventCategory) ([]models.Event, error) {
	if len(categories) == 0 {
		return catalog.Search(ctx, loc, "")
	}

	seen := make(map[string]bool)
	var merged []models.Event
	var lastErr error
	failed := 0
	for _, category := range categories {
		found, err := catalog.Search(ctx, loc, string(category))
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		for _, event := range found {
			if event.ID != "" {
				if seen[event.ID] {
					continue
				}
				seen[event.ID] = true
			}
			merged = append(merged, event)
		}
	}
	if failed == len(categories) {
		return nil, lastErr
	}
	return merged, nil
}
