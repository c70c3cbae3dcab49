// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package geocoding

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestPlaceToLocationCityFallback(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "city",
			payload: `{"address":{"city":"Austin","town":"ignored"}}`,
			want:    "Austin",
		},
		{
			name:    "town",
			payload: `{"address":{"town":"Fredericksburg"}}`,
			want:    "Fredericksburg",
		},
		{
			name:    "village",
			payload: `{"address":{"village":"Luckenbach"}}`,
			want:    "Luckenbach",
		},
		{
			name:    "none",
			payload: `{"address":{}}`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var place nominatimPlace
			if err := json.Unmarshal([]byte(tt.payload), &place); err != nil {
				t.Fatal(err)
			}
			if got := placeToLocation(&place).City; got != tt.want {
				t.Errorf("city = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceToLocationFullAddress(t *testing.T) {
	var place nominatimPlace
	payload := `{
		"display_name": "713 Congress Ave, Austin, TX",
		"address": {
			"city": "Austin",
			"state": "Texas",
			"country": "United States",
			"postcode": "78701"
		}
	}`
	if err := json.Unmarshal([]byte(payload), &place); err != nil {
		t.Fatal(err)
	}

	loc := placeToLocation(&place)
	if loc.State != "Texas" || loc.Country != "United States" || loc.Zipcode != "78701" {
		t.Errorf("address fields wrong: %+v", loc)
	}
	if loc.Address != "713 Congress Ave, Austin, TX" {
		t.Errorf("display name not mapped: %q", loc.Address)
	}
}
