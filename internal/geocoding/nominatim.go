// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package geocoding resolves between coordinates and addresses through
// the Nominatim API.
package geocoding

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/breaker"
	"github.com/JawandS/WhatNowAI/internal/config"
	"github.com/JawandS/WhatNowAI/internal/metrics"
	"github.com/JawandS/WhatNowAI/internal/models"
)

// Geocoder resolves locations in both directions.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*models.Location, error)
	Forward(ctx context.Context, query string) (*models.Location, error)
}

// NominatimClient talks to a Nominatim instance. The public
// OpenStreetMap endpoint requires a descriptive User-Agent and at most
// one request per second; callers should front this client with the
// research rate limiter when batching.
type NominatimClient struct {
	client  *resty.Client
	breaker *breaker.Breaker
}

// nominatimPlace is the subset of a Nominatim response we consume.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Country  string `json:"country"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// New creates a Nominatim client.
func New(cfg config.GeocodingConfig) *NominatimClient {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent)
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &NominatimClient{
		client:  client,
		breaker: breaker.New("nominatim"),
	}
}

// Reverse resolves coordinates to an address.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*models.Location, error) {
	start := time.Now()
	place, err := breaker.Cast[nominatimPlace](c.breaker.Execute(func() (interface{}, error) {
		var body nominatimPlace
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
				"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
				"format": "jsonv2",
			}).
			SetResult(&body).
			Get("/reverse")
		if err != nil {
			return nil, fmt.Errorf("reverse geocoding failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode())
		}
		return &body, nil
	}))
	metrics.RecordGeocoding("reverse", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	loc := placeToLocation(place)
	loc.Latitude = lat
	loc.Longitude = lon
	return loc, nil
}

// Forward resolves a free-text address or place name to coordinates.
func (c *NominatimClient) Forward(ctx context.Context, query string) (*models.Location, error) {
	start := time.Now()
	places, err := breaker.Cast[[]nominatimPlace](c.breaker.Execute(func() (interface{}, error) {
		var body []nominatimPlace
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":              query,
				"format":         "jsonv2",
				"limit":          "1",
				"addressdetails": "1",
			}).
			SetResult(&body).
			Get("/search")
		if err != nil {
			return nil, fmt.Errorf("forward geocoding failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode())
		}
		return &body, nil
	}))
	metrics.RecordGeocoding("forward", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if len(*places) == 0 {
		return nil, fmt.Errorf("no match for %q", query)
	}

	place := (*places)[0]
	loc := placeToLocation(&place)
	if lat, err := strconv.ParseFloat(place.Lat, 64); err == nil {
		loc.Latitude = lat
	}
	if lon, err := strconv.ParseFloat(place.Lon, 64); err == nil {
		loc.Longitude = lon
	}
	return loc, nil
}

// placeToLocation maps Nominatim address fields onto the internal
// shape. Nominatim reports the locality under city, town, or village
// depending on place size; the first non-empty one wins.
func placeToLocation(place *nominatimPlace) *models.Location {
	city := place.Address.City
	if city == "" {
		city = place.Address.Town
	}
	if city == "" {
		city = place.Address.Village
	}
	return &models.Location{
		City:    city,
		State:   place.Address.State,
		Country: place.Address.Country,
		Zipcode: place.Address.Postcode,
		Address: place.DisplayName,
	}
}
