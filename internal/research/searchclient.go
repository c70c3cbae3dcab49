// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"github.com/JawandS/WhatNowAI/internal/breaker"
)

// Hit is one raw search backend result before scoring.
type Hit struct {
	Title   string
	URL     string
	Snippet string
}

// SearchClient queries an external free-text search backend. The
// response is untrusted; implementations parse defensively and never
// assume a schema beyond "may contain titles, snippets, and links".
type SearchClient interface {
	Search(ctx context.Context, query string) ([]Hit, error)
}

// DuckDuckGoClient queries the DuckDuckGo HTML endpoint. It needs no
// API key, which keeps the general research sources usable out of the
// box.
type DuckDuckGoClient struct {
	client  *resty.Client
	breaker *breaker.Breaker
	baseURL string
}

// NewDuckDuckGoClient creates a search client with the given per-request
// timeout.
func NewDuckDuckGoClient(timeout time.Duration) *DuckDuckGoClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; WhatNowAI/1.0)").
		SetRetryCount(0)

	return &DuckDuckGoClient{
		client:  client,
		breaker: breaker.New("duckduckgo"),
		baseURL: "https://html.duckduckgo.com/html/",
	}
}

// Search issues a query and parses result titles, links, and snippets
// out of the HTML response.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string) ([]Hit, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("q", query).
			Get(c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("search request failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("search backend returned status %d", resp.StatusCode())
		}
		hits, err := parseSearchHTML(strings.NewReader(resp.String()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse search response: %w", err)
		}
		return &hits, nil
	})

	hits, err := breaker.Cast[[]Hit](result, err)
	if err != nil {
		return nil, err
	}
	return *hits, nil
}

// parseSearchHTML walks the result page and extracts hits. DuckDuckGo
// marks result links with class "result__a" and snippets with
// "result__snippet"; anything that does not match is ignored.
func parseSearchHTML(r *strings.Reader) ([]Hit, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	var current *Hit

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			if current != nil && current.Title != "" {
				hits = append(hits, *current)
			}
			current = &Hit{
				Title: strings.TrimSpace(textContent(n)),
				URL:   cleanResultURL(attr(n, "href")),
			}
		}
		if n.Type == html.ElementNode && hasClass(n, "result__snippet") && current != nil {
			current.Snippet = strings.TrimSpace(textContent(n))
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if current != nil && current.Title != "" {
		hits = append(hits, *current)
	}
	return hits, nil
}

// cleanResultURL unwraps DuckDuckGo's redirect links, which carry the
// destination in a "uddg" query parameter.
func cleanResultURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		if decoded, err := url.QueryUnescape(target); err == nil {
			return decoded
		}
		return target
	}
	return raw
}

// hasClass reports whether a node's class attribute contains the given
// class name.
func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// attr returns the value of the named attribute, or empty string.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes under n, stripping markup.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
