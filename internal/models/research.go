// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package models

import "time"

// Category partitions research results by what aspect of the user
// they describe.
type Category string

// Research categories, in presentation order.
const (
	CategoryGeneral  Category = "general"
	CategorySocial   Category = "social"
	CategoryLocation Category = "location"
	CategoryActivity Category = "activity"
)

// Categories lists every research category in presentation order.
var Categories = []Category{
	CategoryGeneral,
	CategorySocial,
	CategoryLocation,
	CategoryActivity,
}

// SearchResult is a single piece of background research content.
// Source is the specific origin ("general", "social:github", "location",
// "activity"); Category is the coarse grouping for summaries.
type SearchResult struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	Category  Category  `json:"category"`
	Relevance float64   `json:"relevance"`
	Timestamp time.Time `json:"timestamp"`
}

// SearchSummary condenses one category's research results.
// TopResults is sorted by descending relevance and truncated to the
// configured per-category maximum.
type SearchSummary struct {
	Category    Category       `json:"category"`
	SummaryText string         `json:"summary_text"`
	ResultCount int            `json:"result_count"`
	TopResults  []SearchResult `json:"top_results"`
}

// Interest is an inferred interest tag with its match strength.
type Interest struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// PersonalizationReport is the aggregate research output threaded into
// narrative generation and event ranking. Applied is true iff at least
// one source returned usable data.
type PersonalizationReport struct {
	Summaries    map[Category]SearchSummary `json:"summaries"`
	Interests    []Interest                 `json:"interests"`
	TotalResults int                        `json:"total_results"`
	Applied      bool                       `json:"applied"`
	Elapsed      float64                    `json:"elapsed_seconds"`
}

// Summary returns the summary for a category, or a zero SearchSummary
// when the category produced nothing.
func (r *PersonalizationReport) Summary(c Category) SearchSummary {
	if r.Summaries == nil {
		return SearchSummary{Category: c}
	}
	return r.Summaries[c]
}
