// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package events discovers local events through the Ticketmaster
// Discovery API and ranks them against the user's extracted interests.
package events

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/breaker"
	"github.com/JawandS/WhatNowAI/internal/config"
	"github.com/JawandS/WhatNowAI/internal/metrics"
	"github.com/JawandS/WhatNowAI/internal/models"
)

// Catalog searches an external event catalog around a location.
type Catalog interface {
	Search(ctx context.Context, loc models.Location, keyword string) ([]models.Event, error)
}

// TicketmasterClient queries the Ticketmaster Discovery v2 API.
type TicketmasterClient struct {
	client  *resty.Client
	breaker *breaker.Breaker
	cfg     config.EventsConfig
}

// discoveryResponse mirrors the slice of the Discovery API response we
// consume. Pricing fields are intentionally not mapped.
type discoveryResponse struct {
	Embedded struct {
		Events []discoveryEvent `json:"events"`
	} `json:"_embedded"`
}

type discoveryImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type discoveryEvent struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	URL        string           `json:"url"`
	Info       string           `json:"info"`
	Images     []discoveryImage `json:"images"`
	PleaseNote string           `json:"pleaseNote"`
	Dates      struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`
	Embedded struct {
		Venues []struct {
			Name    string `json:"name"`
			Address struct {
				Line1 string `json:"line1"`
			} `json:"address"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			State struct {
				StateCode string `json:"stateCode"`
			} `json:"state"`
			Location struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"location"`
		} `json:"venues"`
	} `json:"_embedded"`
}

// NewTicketmasterClient creates a Discovery API client.
func NewTicketmasterClient(cfg config.EventsConfig) *TicketmasterClient {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetBaseURL("https://app.ticketmaster.com/discovery/v2").
		SetHeader("User-Agent", "WhatNowAI")
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &TicketmasterClient{
		client:  client,
		breaker: breaker.New("ticketmaster"),
		cfg:     cfg,
	}
}

// Search finds events near a location within the configured radius and
// date window. The keyword is optional.
func (c *TicketmasterClient) Search(ctx context.Context, loc models.Location, keyword string) ([]models.Event, error) {
	start := time.Now()
	events, err := c.search(ctx, loc, keyword)
	metrics.RecordEventSearch(time.Since(start), err)
	return events, err
}

func (c *TicketmasterClient) search(ctx context.Context, loc models.Location, keyword string) ([]models.Event, error) {
	now := time.Now().UTC()
	params := map[string]string{
		"apikey":        c.cfg.TicketmasterAPIKey,
		"latlong":       fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude),
		"radius":        strconv.Itoa(c.cfg.RadiusMiles),
		"unit":          "miles",
		"size":          strconv.Itoa(c.cfg.PageSize),
		"sort":          "relevance,desc",
		"startDateTime": now.Format("2006-01-02T15:04:05Z"),
		"endDateTime":   now.AddDate(0, 0, c.cfg.WindowDays).Format("2006-01-02T15:04:05Z"),
	}
	if segment := categoryToSegment(keyword); segment != "" {
		params["classificationName"] = segment
	} else if keyword != "" {
		params["keyword"] = keyword
	}

	result, err := breaker.Cast[discoveryResponse](c.breaker.Execute(func() (interface{}, error) {
		var body discoveryResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(&body).
			Get("/events.json")
		if err != nil {
			return nil, fmt.Errorf("ticketmaster request failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("ticketmaster returned status %d", resp.StatusCode())
		}
		return &body, nil
	}))
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(result.Embedded.Events))
	for _, raw := range result.Embedded.Events {
		events = append(events, convertEvent(raw))
	}
	return events, nil
}

// convertEvent maps a raw Discovery API event onto the internal shape.
func convertEvent(raw discoveryEvent) models.Event {
	event := models.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: eventDescription(raw),
		Category:    models.EventCategoryMiscellaneous,
		URL:         raw.URL,
		Date:        raw.Dates.Start.LocalDate,
		Time:        raw.Dates.Start.LocalTime,
	}
	if len(raw.Images) > 0 {
		event.ImageURL = bestImage(raw.Images)
	}
	if len(raw.Classifications) > 0 {
		event.Category = segmentToCategory(raw.Classifications[0].Segment.Name)
		event.Genre = raw.Classifications[0].Genre.Name
	}
	if len(raw.Embedded.Venues) > 0 {
		venue := raw.Embedded.Venues[0]
		event.Venue = models.Venue{
			Name:    venue.Name,
			Address: venue.Address.Line1,
			City:    venue.City.Name,
			State:   venue.State.StateCode,
		}
		if lat, err := strconv.ParseFloat(venue.Location.Latitude, 64); err == nil {
			event.Venue.Latitude = lat
		}
		if lon, err := strconv.ParseFloat(venue.Location.Longitude, 64); err == nil {
			event.Venue.Longitude = lon
		}
	}
	return event
}

// eventDescription joins the info and pleaseNote fields, either of
// which may be empty.
func eventDescription(raw discoveryEvent) string {
	parts := make([]string, 0, 2)
	if text := strings.TrimSpace(raw.Info); text != "" {
		parts = append(parts, text)
	}
	if text := strings.TrimSpace(raw.PleaseNote); text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// bestImage prefers the first image at least 640px wide so maps and
// cards get a usable resolution.
func bestImage(images []discoveryImage) string {
	for _, img := range images {
		if img.Width >= 640 {
			return img.URL
		}
	}
	return images[0].URL
}

// categoryToSegment maps an internal event category onto the Discovery
// API classification it corresponds to. Free-text keywords map to "".
func categoryToSegment(keyword string) string {
	switch models.EventCategory(keyword) {
	case models.EventCategoryMusic:
		return "Music"
	case models.EventCategorySports:
		return "Sports"
	case models.EventCategoryArts:
		return "Arts & Theatre"
	case models.EventCategoryFamily:
		return "Family"
	default:
		return ""
	}
}

// segmentToCategory buckets a Discovery API segment name. Unknown
// segments land in miscellaneous.
func segmentToCategory(segment string) models.EventCategory {
	switch segment {
	case "Music":
		return models.EventCategoryMusic
	case "Sports":
		return models.EventCategorySports
	case "Arts & Theatre":
		return models.EventCategoryArts
	case "Family":
		return models.EventCategoryFamily
	default:
		return models.EventCategoryMiscellaneous
	}
}
