// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"fmt"
	"strings"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// maxSummaryInsights caps how many result titles feed a summary line.
const maxSummaryInsights = 3

// buildSummary condenses a category's ranked results into one
// SearchSummary. The condensation is a deterministic template, which
// keeps the pipeline reproducible for identical inputs.
func buildSummary(category models.Category, ranked []models.SearchResult) models.SearchSummary {
	summary := models.SearchSummary{
		Category:    category,
		ResultCount: len(ranked),
		TopResults:  ranked,
	}
	if len(ranked) == 0 {
		summary.SummaryText = fmt.Sprintf("No relevant %s information found.", category)
		return summary
	}

	insights := make([]string, 0, maxSummaryInsights)
	for _, r := range ranked {
		if len(insights) == maxSummaryInsights {
			break
		}
		insight := strings.TrimSpace(r.Title)
		if insight == "" {
			insight = snippetLead(r.Content)
		}
		if insight != "" {
			insights = append(insights, insight)
		}
	}

	summary.SummaryText = fmt.Sprintf("Found %d %s results. Key insights: %s.",
		len(ranked), category, strings.Join(insights, "; "))
	return summary
}

// snippetLead returns the first sentence-ish fragment of a snippet,
// capped at 80 runes.
func snippetLead(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.IndexAny(content, ".!?"); idx > 0 {
		content = content[:idx]
	}
	runes := []rune(content)
	if len(runes) > 80 {
		content = string(runes[:80])
	}
	return strings.TrimSpace(content)
}
