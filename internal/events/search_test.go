// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package events

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/JawandS/WhatNowAI/internal/models"
)

// recordingCatalog replies from a canned map keyed by search keyword
// and remembers every keyword it was asked for.
type recordingCatalog struct {
	keywords []string
	byKey    map[string][]models.Event
	failOn   map[string]error
}

func (c *recordingCatalog) Search(_ context.Context, _ models.Location, keyword string) ([]models.Event, error) {
	c.keywords = append(c.keywords, keyword)
	if err := c.failOn[keyword]; err != nil {
		return nil, err
	}
	return c.byKey[keyword], nil
}

func TestCategoriesForInterests(t *testing.T) {
	tests := []struct {
		name      string
		interests []models.Interest
		want      []models.EventCategory
	}{
		{
			name: "distinct buckets in interest order",
			interests: []models.Interest{
				{Category: "music", Confidence: 3},
				{Category: "sports", Confidence: 2},
			},
			want: []models.EventCategory{models.EventCategoryMusic, models.EventCategorySports},
		},
		{
			name: "shared bucket collapses",
			interests: []models.Interest{
				{Category: "sports", Confidence: 3},
				{Category: "fitness", Confidence: 1},
			},
			want: []models.EventCategory{models.EventCategorySports},
		},
		{
			name: "unmapped interest skipped",
			interests: []models.Interest{
				{Category: "astrology", Confidence: 5},
				{Category: "technology", Confidence: 1},
			},
			want: []models.EventCategory{models.EventCategoryMiscellaneous},
		},
		{name: "no interests", interests: nil, want: []models.EventCategory{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoriesForInterests(tt.interests); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchByCategoriesQueriesPerBucket(t *testing.T) {
	catalog := &recordingCatalog{byKey: map[string][]models.Event{
		"music":  {{ID: "1", Name: "Jazz Night", Category: models.EventCategoryMusic}},
		"sports": {{ID: "2", Name: "Marathon Expo", Category: models.EventCategorySports}},
	}}

	found, err := SearchByCategories(context.Background(), catalog, models.Location{}, []models.EventCategory{
		models.EventCategoryMusic,
		models.EventCategorySports,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if want := []string{"music", "sports"}; !reflect.DeepEqual(catalog.keywords, want) {
		t.Errorf("keywords = %v, want %v", catalog.keywords, want)
	}
	if len(found) != 2 || found[0].ID != "1" || found[1].ID != "2" {
		t.Errorf("merged events wrong: %+v", found)
	}
}

func TestSearchByCategoriesDedupesAcrossBuckets(t *testing.T) {
	shared := models.Event{ID: "1", Name: "Family Fun Run", Category: models.EventCategorySports}
	catalog := &recordingCatalog{byKey: map[string][]models.Event{
		"sports": {shared},
		"family": {shared, {ID: "2", Name: "Puppet Show", Category: models.EventCategoryFamily}},
	}}

	found, err := SearchByCategories(context.Background(), catalog, models.Location{}, []models.EventCategory{
		models.EventCategorySports,
		models.EventCategoryFamily,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected the shared event once, got %+v", found)
	}
}

func TestSearchByCategoriesWithoutBuckets(t *testing.T) {
	catalog := &recordingCatalog{byKey: map[string][]models.Event{
		"": {{ID: "1", Name: "Jazz Night"}},
	}}

	found, err := SearchByCategories(context.Background(), catalog, models.Location{}, nil)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if want := []string{""}; !reflect.DeepEqual(catalog.keywords, want) {
		t.Errorf("keywords = %v, want a single uncategorized search", catalog.keywords)
	}
	if len(found) != 1 {
		t.Errorf("events = %+v", found)
	}
}

func TestSearchByCategoriesAbsorbsPartialFailure(t *testing.T) {
	catalog := &recordingCatalog{
		byKey:  map[string][]models.Event{"music": {{ID: "1", Name: "Jazz Night"}}},
		failOn: map[string]error{"sports": errors.New("upstream down")},
	}

	found, err := SearchByCategories(context.Background(), catalog, models.Location{}, []models.EventCategory{
		models.EventCategoryMusic,
		models.EventCategorySports,
	})
	if err != nil {
		t.Fatalf("one failing bucket must not sink the search, got %v", err)
	}
	if len(found) != 1 || found[0].ID != "1" {
		t.Errorf("expected the surviving bucket's events, got %+v", found)
	}
}

func TestSearchByCategoriesAllFailed(t *testing.T) {
	boom := errors.New("upstream down")
	catalog := &recordingCatalog{failOn: map[string]error{"music": boom, "sports": boom}}

	found, err := SearchByCategories(context.Background(), catalog, models.Location{}, []models.EventCategory{
		models.EventCategoryMusic,
		models.EventCategorySports,
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected the failure to surface when every bucket failed, got %v", err)
	}
	if found != nil {
		t.Errorf("expected no events, got %+v", found)
	}
}
