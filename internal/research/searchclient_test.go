// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"strings"
	"testing"
)

const searchPageFixture = `
<html><body>
<div class="results">
  <div class="result">
    <h2><a class="result__a" href="https://duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fjazz">Austin Jazz Calendar</a></h2>
    <a class="result__snippet">Live <b>jazz</b> listings for Austin, updated weekly.</a>
  </div>
  <div class="result">
    <h2><a class="result__a" href="https://venues.example/shows">Top venues</a></h2>
    <div class="result__snippet">The best live music venues downtown.</div>
  </div>
  <div class="result">
    <h2><a class="result__a" href=""></a></h2>
  </div>
</div>
</body></html>`

func TestParseSearchHTML(t *testing.T) {
	hits, err := parseSearchHTML(strings.NewReader(searchPageFixture))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits (titleless result dropped), got %d: %+v", len(hits), hits)
	}

	if hits[0].Title != "Austin Jazz Calendar" {
		t.Errorf("title = %q", hits[0].Title)
	}
	if hits[0].URL != "https://example.com/jazz" {
		t.Errorf("redirect URL not unwrapped: %q", hits[0].URL)
	}
	if hits[0].Snippet != "Live jazz listings for Austin, updated weekly." {
		t.Errorf("markup not stripped from snippet: %q", hits[0].Snippet)
	}

	if hits[1].URL != "https://venues.example/shows" {
		t.Errorf("plain URL should pass through, got %q", hits[1].URL)
	}
}

func TestParseSearchHTMLDefensive(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not html", "just some text"},
		{"truncated", "<html><body><div class=\"result__a"},
		{"no results", "<html><body><p>No results.</p></body></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := parseSearchHTML(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("parser must absorb malformed input, got: %v", err)
			}
			if len(hits) != 0 {
				t.Errorf("expected no hits, got %+v", hits)
			}
		})
	}
}

func TestCleanResultURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com/page", "https://example.com/page"},
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa%20b", "https://example.com/a b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanResultURL(tt.input); got != tt.want {
			t.Errorf("cleanResultURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
