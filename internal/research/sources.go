// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// Source is one independent research origin. Fetch returns zero or more
// results; a source whose required profile field is absent returns nil
// immediately without touching the network. Errors are soft: the
// aggregator absorbs them and degrades only that source's category.
type Source interface {
	Name() string
	Category() models.Category
	Fetch(ctx context.Context, profile *models.UserProfile) ([]models.SearchResult, error)
}

// searchSource is the shared shape of every source backed by the
// free-text search client. A source issues one or more queries per
// fetch; each query passes through the shared rate limiter.
type searchSource struct {
	name         string
	category     models.Category
	limiter      *RateLimiter
	client       SearchClient
	minContent   int
	buildQueries func(profile *models.UserProfile) []string
}

func (s *searchSource) Name() string              { return s.name }
func (s *searchSource) Category() models.Category { return s.category }

func (s *searchSource) Fetch(ctx context.Context, profile *models.UserProfile) ([]models.SearchResult, error) {
	queries := s.buildQueries(profile)
	if len(queries) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	seen := make(map[string]bool)
	var results []models.SearchResult
	for _, query := range queries {
		hits, err := s.searchOne(ctx, query)
		if err != nil {
			// Partial results from earlier queries still count.
			if len(results) > 0 {
				return results, nil
			}
			return nil, err
		}
		for _, hit := range hits {
			content := strings.TrimSpace(hit.Snippet)
			if len([]rune(content)) < s.minContent {
				continue
			}
			if seen[hit.URL] {
				continue
			}
			seen[hit.URL] = true
			results = append(results, models.SearchResult{
				Title:     hit.Title,
				URL:       hit.URL,
				Content:   content,
				Source:    s.name,
				Category:  s.category,
				Timestamp: now,
			})
		}
	}
	return results, nil
}

func (s *searchSource) searchOne(ctx context.Context, query string) ([]Hit, error) {
	release, err := s.limiter.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	defer release()

	return s.client.Search(ctx, query)
}

// NewGeneralSource searches for the user by quoted name. Active
// whenever the profile has a name.
func NewGeneralSource(client SearchClient, limiter *RateLimiter, minContent int) Source {
	return &searchSource{
		name:       "general",
		category:   models.CategoryGeneral,
		limiter:    limiter,
		client:     client,
		minContent: minContent,
		buildQueries: func(p *models.UserProfile) []string {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return nil
			}
			return []string{fmt.Sprintf("%q", name)}
		},
	}
}

// NewLocationSource searches for local context around the user's
// location, plus the activity anchored there when one is given. Active
// whenever the profile has a location.
func NewLocationSource(client SearchClient, limiter *RateLimiter, minContent int) Source {
	return &searchSource{
		name:       "location",
		category:   models.CategoryLocation,
		limiter:    limiter,
		client:     client,
		minContent: minContent,
		buildQueries: func(p *models.UserProfile) []string {
			city := locationText(p.Location)
			if city == "" {
				return nil
			}
			queries := []string{
				"events " + city + " today",
				"things to do " + city,
			}
			if activity := strings.TrimSpace(p.Activity); activity != "" {
				queries = append(queries, activity+" "+city)
			}
			return queries
		},
	}
}

// NewActivitySource searches for the user's stated activity, anchored
// to their location when present. Active whenever the profile has
// activity text.
func NewActivitySource(client SearchClient, limiter *RateLimiter, minContent int) Source {
	return &searchSource{
		name:       "activity",
		category:   models.CategoryActivity,
		limiter:    limiter,
		client:     client,
		minContent: minContent,
		buildQueries: func(p *models.UserProfile) []string {
			activity := strings.TrimSpace(p.Activity)
			if activity == "" {
				return nil
			}
			queries := []string{
				"how to " + activity,
				activity + " tips recommendations",
			}
			if city := locationText(p.Location); city != "" {
				queries = append(queries, activity+" in "+city)
			}
			return queries
		},
	}
}

// NewSocialSearchSource looks up a platform handle via a site-scoped
// search. Active only when the profile carries a handle for the
// platform. GitHub handles go through NewGitHubSource instead.
func NewSocialSearchSource(platform models.Platform, client SearchClient, limiter *RateLimiter, minContent int) Source {
	return &searchSource{
		name:       "social:" + string(platform),
		category:   models.CategorySocial,
		limiter:    limiter,
		client:     client,
		minContent: minContent,
		buildQueries: func(p *models.UserProfile) []string {
			handle := p.NormalizedSocial()[platform]
			if handle == "" {
				return nil
			}
			return []string{fmt.Sprintf("site:%s.com %s", platform, handle)}
		},
	}
}

// githubSource prefers the typed GitHub API over free-text search: it
// yields structured bio, repo, and location fields instead of noisy
// snippets.
type githubSource struct {
	limiter *RateLimiter
	client  *GitHubClient
}

// NewGitHubSource creates the typed GitHub research source.
func NewGitHubSource(client *GitHubClient, limiter *RateLimiter) Source {
	return &githubSource{limiter: limiter, client: client}
}

func (s *githubSource) Name() string              { return "social:github" }
func (s *githubSource) Category() models.Category { return models.CategorySocial }

func (s *githubSource) Fetch(ctx context.Context, profile *models.UserProfile) ([]models.SearchResult, error) {
	handle := profile.NormalizedSocial()[models.PlatformGitHub]
	if handle == "" {
		return nil, nil
	}

	release, err := s.limiter.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	defer release()

	return s.client.FetchProfile(ctx, handle)
}

// locationText renders a location as a short human query fragment.
func locationText(loc models.Location) string {
	parts := make([]string, 0, 2)
	if loc.City != "" {
		parts = append(parts, loc.City)
	}
	if loc.State != "" {
		parts = append(parts, loc.State)
	}
	if len(parts) == 0 && loc.Address != "" {
		return loc.Address
	}
	return strings.Join(parts, ", ")
}
