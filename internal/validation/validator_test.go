// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package validation

import (
	"strings"
	"testing"
)

type submitFixture struct {
	Name      string  `validate:"required,max=100"`
	Activity  string  `validate:"max=500"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

func TestValidateStructPasses(t *testing.T) {
	req := submitFixture{
		Name:      "Alex",
		Activity:  "looking for live music",
		Latitude:  37.77,
		Longitude: -122.42,
	}
	if verr := ValidateStruct(&req); verr != nil {
		t.Fatalf("expected valid struct, got: %v", verr)
	}
}

func TestValidateStructFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       submitFixture
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			req:       submitFixture{Latitude: 0, Longitude: 0},
			wantField: "Name",
			wantMsg:   "Name is required",
		},
		{
			name: "name too long",
			req: submitFixture{
				Name: strings.Repeat("x", 101),
			},
			wantField: "Name",
			wantMsg:   "at most 100 characters",
		},
		{
			name: "latitude out of range",
			req: submitFixture{
				Name:     "Alex",
				Latitude: 95,
			},
			wantField: "Latitude",
			wantMsg:   "less than or equal to 90",
		},
		{
			name: "longitude out of range",
			req: submitFixture{
				Name:      "Alex",
				Longitude: -200,
			},
			wantField: "Longitude",
			wantMsg:   "greater than or equal to -180",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			details := verr.Details()
			msg, ok := details[tt.wantField]
			if !ok {
				t.Fatalf("expected error for field %s, got %v", tt.wantField, details)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	req := submitFixture{Latitude: 100, Longitude: 200}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error, got nil")
	}
	if len(verr.Fields()) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Fields()), verr)
	}
}
