// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package interests derives ranked interest tags from free-text
// activity descriptions and background research summaries using a
// fixed keyword taxonomy. Extraction is a pure function over its
// inputs, with no network access and no mutable shared state.
package interests

// taxonomyEntry pairs an interest category with its trigger keywords.
// Declared order doubles as the tie-break order for equal confidence.
type taxonomyEntry struct {
	category string
	keywords []string
}

// taxonomy is the fixed interest keyword taxonomy. Matching is simple
// case-insensitive substring containment; do not replace this with a
// statistical classifier, the downstream ranking depends on these
// exact trigger sets.
var taxonomy = []taxonomyEntry{
	{
		category: "music",
		keywords: []string{
			"music", "concert", "band", "festival", "jazz", "rock",
			"hip hop", "dj", "gig", "album", "vinyl", "orchestra",
			"singer", "karaoke", "live show",
		},
	},
	{
		category: "sports",
		keywords: []string{
			"sport", "game", "match", "basketball", "football",
			"soccer", "baseball", "hockey", "tennis", "golf",
			"running", "marathon", "race",
		},
	},
	{
		category: "technology",
		keywords: []string{
			"tech", "coding", "programming", "software", "startup",
			"hackathon", "developer", "engineering", "computer",
			"robotics", "gaming",
		},
	},
	{
		category: "arts",
		keywords: []string{
			"art", "museum", "gallery", "theater", "theatre",
			"painting", "exhibit", "dance", "poetry", "sculpture",
			"film", "comedy", "photography",
		},
	},
	{
		category: "food",
		keywords: []string{
			"food", "restaurant", "dining", "coffee", "brewery",
			"wine", "cooking", "cuisine", "brunch", "tasting",
			"bakery",
		},
	},
	{
		category: "travel",
		keywords: []string{
			"travel", "trip", "explore", "adventure", "tourism",
			"sightseeing", "vacation", "road trip",
		},
	},
	{
		category: "fitness",
		keywords: []string{
			"gym", "yoga", "fitness", "workout", "exercise",
			"hiking", "climbing", "cycling", "pilates", "swim",
		},
	},
	{
		category: "learning",
		keywords: []string{
			"learn", "workshop", "class", "lecture", "book",
			"reading", "course", "seminar", "study", "language",
		},
	},
}

// Categories returns the taxonomy's category names in declared order.
func Categories() []string {
	out := make([]string, len(taxonomy))
	for i, entry := range taxonomy {
		out[i] = entry.category
	}
	return out
}
