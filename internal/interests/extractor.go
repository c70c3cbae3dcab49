// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package interests

import (
	"sort"
	"strings"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// Extract derives ranked interests from activity text and research
// summaries. Per category, confidence accumulates +1 for each distinct
// keyword found in the activity text and +1 for each distinct keyword
// found anywhere across the summary texts, so research can surface
// interests the user never stated. Categories with zero matches are
// excluded; ties keep the taxonomy's declared order.
func Extract(activityText string, summaries map[models.Category]models.SearchSummary) []models.Interest {
	activity := strings.ToLower(activityText)

	// Assemble the research text in declared category order so the
	// concatenation is stable across runs.
	var research strings.Builder
	for _, category := range models.Categories {
		summary, ok := summaries[category]
		if !ok {
			continue
		}
		research.WriteString(strings.ToLower(summary.SummaryText))
		research.WriteByte(' ')
		for _, result := range summary.TopResults {
			research.WriteString(strings.ToLower(result.Title))
			research.WriteByte(' ')
			research.WriteString(strings.ToLower(result.Content))
			research.WriteByte(' ')
		}
	}
	researchText := research.String()

	out := make([]models.Interest, 0, len(taxonomy))
	for _, entry := range taxonomy {
		confidence := 0.0
		for _, keyword := range entry.keywords {
			if strings.Contains(activity, keyword) {
				confidence++
			}
			if strings.Contains(researchText, keyword) {
				confidence++
			}
		}
		if confidence > 0 {
			out = append(out, models.Interest{
				Category:   entry.category,
				Confidence: confidence,
			})
		}
	}

	// Stable sort keeps the taxonomy's declared order on ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}
