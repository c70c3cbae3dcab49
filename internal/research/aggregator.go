// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package research implements the background research pipeline: a
// rate-limited concurrent fan-out over independent, unreliable external
// sources, joined under a global deadline, with term-overlap scoring
// and template summarization of whatever came back in time.
package research

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JawandS/WhatNowAI/internal/config"
	"github.com/JawandS/WhatNowAI/internal/interests"
	"github.com/JawandS/WhatNowAI/internal/logging"
	"github.com/JawandS/WhatNowAI/internal/metrics"
	"github.com/JawandS/WhatNowAI/internal/models"
)

// Aggregator fans a user profile out to every applicable source,
// collects partial results under the global timeout, and produces one
// PersonalizationReport. A single source failing or timing out degrades
// only its own category; the aggregator itself never fails.
type Aggregator struct {
	sources []Source
	cfg     config.ResearchConfig
	logger  zerolog.Logger
}

// sourceOutcome carries one source's results back to the collector.
type sourceOutcome struct {
	source   string
	category models.Category
	results  []models.SearchResult
	err      error
}

// NewAggregator builds an aggregator over the given sources.
func NewAggregator(cfg config.ResearchConfig, sources []Source) *Aggregator {
	return &Aggregator{
		sources: sources,
		cfg:     cfg,
		logger:  logging.With().Str("component", "aggregator").Logger(),
	}
}

// NewDefaultAggregator wires the standard source set: general,
// location, and activity search, the typed GitHub client, and
// site-scoped search for the remaining platforms. All sources share one
// rate limiter against the search backend.
func NewDefaultAggregator(cfg config.ResearchConfig) *Aggregator {
	limiter := NewRateLimiter(cfg.MinInterval, cfg.MaxConcurrent)
	search := NewDuckDuckGoClient(cfg.SourceTimeout)
	github := NewGitHubClient(cfg.SourceTimeout, cfg.GitHubToken)

	sources := []Source{
		NewGeneralSource(search, limiter, cfg.MinContentLength),
		NewLocationSource(search, limiter, cfg.MinContentLength),
		NewActivitySource(search, limiter, cfg.MinContentLength),
		NewGitHubSource(github, limiter),
	}
	for _, platform := range models.KnownPlatforms {
		if platform == models.PlatformGitHub {
			continue
		}
		sources = append(sources, NewSocialSearchSource(platform, search, limiter, cfg.MinContentLength))
	}
	return NewAggregator(cfg, sources)
}

// Research runs the full pipeline for one profile. It always returns a
// report; when every source fails or the deadline is zero the report
// simply has Applied set to false and empty summaries.
func (a *Aggregator) Research(ctx context.Context, profile *models.UserProfile) *models.PersonalizationReport {
	start := time.Now()
	active := a.activeSources(profile)

	report := &models.PersonalizationReport{
		Summaries: make(map[models.Category]models.SearchSummary),
	}

	byCategory := a.collect(ctx, profile, active)

	terms := termsFor(profile)
	for category, results := range byCategory {
		ranked, duplicates := rankResults(results, terms, a.cfg.MaxResults)
		metrics.ResearchResultsKept.WithLabelValues(string(category)).Add(float64(len(ranked)))
		metrics.RecordResultsFiltered(string(category), "duplicate", duplicates)
		metrics.RecordResultsFiltered(string(category), "over_limit", len(results)-duplicates-len(ranked))
		report.Summaries[category] = buildSummary(category, ranked)
		report.TotalResults += len(ranked)
	}

	report.Interests = interests.Extract(profile.Activity, report.Summaries)
	report.Applied = report.TotalResults > 0
	report.Elapsed = time.Since(start).Seconds()

	metrics.ResearchDuration.Observe(report.Elapsed)
	a.logger.Info().
		Int("sources_active", len(active)).
		Int("total_results", report.TotalResults).
		Bool("applied", report.Applied).
		Float64("elapsed_seconds", report.Elapsed).
		Msg("research complete")
	return report
}

// activeSources filters the source set to those whose required profile
// field is present. A source skipped here is an InvalidProfile case for
// that category only, not an error.
func (a *Aggregator) activeSources(profile *models.UserProfile) []Source {
	active := make([]Source, 0, len(a.sources))
	for _, source := range a.sources {
		if sourceApplies(source, profile) {
			active = append(active, source)
		}
	}
	return active
}

// collect runs the concurrent fan-out. Every active source gets its own
// goroutine; outcomes funnel through a channel buffered to the fan-out
// width so a source finishing after the deadline parks its result in
// the buffer and exits instead of leaking. Late results are discarded,
// never merged.
func (a *Aggregator) collect(ctx context.Context, profile *models.UserProfile, active []Source) map[models.Category][]models.SearchResult {
	byCategory := make(map[models.Category][]models.SearchResult)
	if len(active) == 0 {
		return byCategory
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.GlobalTimeout)
	defer cancel()

	outcomes := make(chan sourceOutcome, len(active))
	for _, source := range active {
		go func(s Source) {
			started := time.Now()
			results, err := s.Fetch(ctx, profile)
			metrics.RecordSourceQuery(s.Name(), string(s.Category()), time.Since(started), err)
			outcomes <- sourceOutcome{
				source:   s.Name(),
				category: s.Category(),
				results:  results,
				err:      err,
			}
		}(source)
	}

	pending := make(map[string]struct{}, len(active))
	for _, source := range active {
		pending[source.Name()] = struct{}{}
	}

	for received := 0; received < len(active); received++ {
		select {
		case outcome := <-outcomes:
			delete(pending, outcome.source)
			if outcome.err != nil {
				// Soft failure: log, absorb, move on.
				a.logger.Warn().
					Err(outcome.err).
					Str("source", outcome.source).
					Msg("source unavailable")
				continue
			}
			byCategory[outcome.category] = append(byCategory[outcome.category], outcome.results...)
		case <-ctx.Done():
			for name := range pending {
				metrics.RecordSourceAbandoned(name)
				a.logger.Warn().
					Str("source", name).
					Dur("deadline", a.cfg.GlobalTimeout).
					Msg("source abandoned at research deadline")
			}
			return byCategory
		}
	}
	return byCategory
}

// sourceApplies mirrors each source's own required-field check so the
// aggregator can report accurate active-source counts without invoking
// anything.
func sourceApplies(source Source, profile *models.UserProfile) bool {
	social := profile.NormalizedSocial()
	switch source.Name() {
	case "general":
		return profile.Name != ""
	case "location":
		return locationText(profile.Location) != ""
	case "activity":
		return profile.Activity != ""
	default:
		for _, platform := range models.KnownPlatforms {
			if source.Name() == "social:"+string(platform) {
				return social[platform] != ""
			}
		}
		return true
	}
}
