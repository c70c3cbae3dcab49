// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"testing"

	"github.com/JawandS/WhatNowAI/internal/models"
)

func TestScoreTokenOverlap(t *testing.T) {
	terms := termsFor(&models.UserProfile{
		Name:     "Ada Lovelace",
		Activity: "jazz concert",
	})

	full := models.SearchResult{Content: "ada lovelace jazz concert tonight"}
	none := models.SearchResult{Content: "completely unrelated gardening tips"}

	if got := terms.score(&full); got <= terms.score(&none) {
		t.Errorf("overlapping content must outscore unrelated content: %v vs %v",
			got, terms.score(&none))
	}
	if got := terms.score(&none); got != 0 {
		t.Errorf("no overlap should score 0, got %v", got)
	}
}

func TestScoreExactNameBoost(t *testing.T) {
	terms := termsFor(&models.UserProfile{Name: "Ada"})

	exact := models.SearchResult{Content: "an interview with ada about engineering"}
	partial := models.SearchResult{Content: "nothing relevant here at all"}

	if terms.score(&exact) <= terms.score(&partial) {
		t.Error("verbatim name match should boost the score")
	}
}

func TestScoreClampedToOne(t *testing.T) {
	terms := termsFor(&models.UserProfile{Name: "Ada"})
	r := models.SearchResult{Content: "ada ada ada ada ada"}
	if got := terms.score(&r); got > 1.0 {
		t.Errorf("score must be clamped to 1.0, got %v", got)
	}
}

func TestScoreNeverLowersTypedBaseline(t *testing.T) {
	terms := termsFor(&models.UserProfile{Name: "Ada"})
	r := models.SearchResult{
		Content:   "structured profile data with no overlapping tokens",
		Relevance: githubProfileRelevance,
	}
	if got := terms.score(&r); got < githubProfileRelevance {
		t.Errorf("typed baseline must be preserved, got %v", got)
	}
}

func TestRankResultsSortsDeduplicatesAndTruncates(t *testing.T) {
	terms := termsFor(&models.UserProfile{Name: "Ada", Activity: "jazz"})

	results := []models.SearchResult{
		{Title: "weak", URL: "https://a.example", Content: "nothing in common"},
		{Title: "strong", URL: "https://b.example", Content: "ada plays jazz"},
		{Title: "dup", URL: "https://b.example", Content: "ada plays jazz"},
		{Title: "medium", URL: "https://c.example", Content: "jazz tonight"},
	}

	ranked, duplicates := rankResults(results, terms, 2)

	if len(ranked) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(ranked))
	}
	if duplicates != 1 {
		t.Errorf("duplicates = %d, want 1 for the repeated URL", duplicates)
	}
	if ranked[0].Title != "strong" {
		t.Errorf("expected strongest result first, got %q", ranked[0].Title)
	}
	if ranked[0].Relevance < ranked[1].Relevance {
		t.Error("results not sorted by descending relevance")
	}
}

func TestRankResultsStableOnTies(t *testing.T) {
	terms := termsFor(&models.UserProfile{})
	results := []models.SearchResult{
		{Title: "first", URL: "https://1.example", Content: "aaa"},
		{Title: "second", URL: "https://2.example", Content: "bbb"},
		{Title: "third", URL: "https://3.example", Content: "ccc"},
	}

	ranked, _ := rankResults(results, terms, 10)
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Title != want {
			t.Errorf("tie order not preserved at %d: got %q, want %q", i, ranked[i].Title, want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Live Jazz, Concert! (Austin/TX)")
	want := []string{"live", "jazz", "concert", "austin", "tx"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
