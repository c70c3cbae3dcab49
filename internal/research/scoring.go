// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"sort"
	"strings"
	"unicode"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// exactMatchBoost is added when the user's name or a handle appears
// verbatim in a result's content.
const exactMatchBoost = 0.25

// profileTerms derives the scoring vocabulary from a profile: tokens
// from the name, activity, and location, plus the exact strings whose
// verbatim presence earns a boost.
type profileTerms struct {
	tokens map[string]struct{}
	exact  []string
}

// termsFor builds the scoring terms for a profile.
func termsFor(profile *models.UserProfile) profileTerms {
	tokens := make(map[string]struct{})
	for _, field := range []string{profile.Name, profile.Activity, locationText(profile.Location)} {
		for _, tok := range tokenize(field) {
			tokens[tok] = struct{}{}
		}
	}

	exact := make([]string, 0, 1+len(profile.Social))
	if name := strings.ToLower(strings.TrimSpace(profile.Name)); name != "" {
		exact = append(exact, name)
	}
	for _, handle := range profile.NormalizedSocial() {
		exact = append(exact, strings.ToLower(handle))
	}
	return profileTerms{tokens: tokens, exact: exact}
}

// score computes a result's relevance: the case-insensitive token
// intersection ratio between the profile vocabulary and the content,
// boosted for verbatim name or handle matches, clamped to 1.0.
//
// Typed sources pre-assign a base relevance; scoring never lowers it.
func (pt profileTerms) score(result *models.SearchResult) float64 {
	text := strings.ToLower(result.Title + " " + result.Content)

	overlap := 0.0
	if len(pt.tokens) > 0 {
		matched := 0
		contentTokens := tokenSet(text)
		for tok := range pt.tokens {
			if _, ok := contentTokens[tok]; ok {
				matched++
			}
		}
		overlap = float64(matched) / float64(len(pt.tokens))
	}

	for _, exact := range pt.exact {
		if strings.Contains(text, exact) {
			overlap += exactMatchBoost
			break
		}
	}

	if overlap > 1.0 {
		overlap = 1.0
	}
	if result.Relevance > overlap {
		return result.Relevance
	}
	return overlap
}

// rankResults scores, deduplicates by URL, sorts by descending
// relevance, and truncates to maxResults. Sorting is stable so ties
// preserve arrival order. The second return value counts duplicates
// dropped, letting the caller account for them separately from the
// truncation.
func rankResults(results []models.SearchResult, terms profileTerms, maxResults int) ([]models.SearchResult, int) {
	duplicates := 0
	seen := make(map[string]struct{}, len(results))
	ranked := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		if r.URL != "" {
			if _, dup := seen[r.URL]; dup {
				duplicates++
				continue
			}
			seen[r.URL] = struct{}{}
		}
		r.Relevance = terms.score(&r)
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked, duplicates
}

// tokenize lowercases and splits on any non-alphanumeric rune, dropping
// single-character fragments.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// tokenSet tokenizes into a membership set.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(s) {
		set[tok] = struct{}{}
	}
	return set
}
