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

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"github.com/JawandS/WhatNowAI/internal/breaker"
	"github.com/JawandS/WhatNowAI/internal/models"
)

// githubProfileRelevance is the base score for a typed profile hit.
// Typed API data is structurally trusted, so it outranks scraped
// snippets before any term-overlap scoring runs.
const githubProfileRelevance = 0.8

// githubRepoRelevance is the base score for a repository hit. Repos are
// typed data too, but say less about the person than the profile does.
const githubRepoRelevance = 0.5

// githubUser is the subset of the GitHub users API response we consume.
type githubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// githubRepo is the subset of the GitHub repos API response we consume.
type githubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stargazers_count"`
}

// GitHubClient fetches typed profile data from the GitHub REST API.
// The typed API yields structured fields (bio, repos, location) with
// far higher precision than free-text search for the same handle.
type GitHubClient struct {
	client  *resty.Client
	breaker *breaker.Breaker
	baseURL string
}

// NewGitHubClient creates a GitHub API client. The token is optional;
// unauthenticated requests work with lower rate limits.
func NewGitHubClient(timeout time.Duration, token string) *GitHubClient {
	client := resty.New().
		SetTimeout(timeout).
		SetBaseURL("https://api.github.com").
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", "WhatNowAI")
	if token != "" {
		client.SetAuthToken(token)
	}
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &GitHubClient{
		client:  client,
		breaker: breaker.New("github"),
		baseURL: "https://api.github.com",
	}
}

// FetchProfile retrieves a user's profile and recent repositories and
// converts them to research results.
func (c *GitHubClient) FetchProfile(ctx context.Context, handle string) ([]models.SearchResult, error) {
	user, err := c.getUser(ctx, handle)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	results := []models.SearchResult{{
		Title:     profileTitle(user),
		URL:       user.HTMLURL,
		Content:   profileContent(user),
		Source:    "social:github",
		Category:  models.CategorySocial,
		Relevance: githubProfileRelevance,
		Timestamp: now,
	}}

	// Repos enrich the profile but their absence is not a failure.
	repos, err := c.getRepos(ctx, handle)
	if err != nil {
		return results, nil //nolint:nilerr // partial data beats none
	}
	for _, repo := range repos {
		content := repo.Description
		if repo.Language != "" {
			content = strings.TrimSpace(content + " Written in " + repo.Language + ".")
		}
		if content == "" {
			continue
		}
		results = append(results, models.SearchResult{
			Title:     fmt.Sprintf("%s/%s", user.Login, repo.Name),
			URL:       repo.HTMLURL,
			Content:   content,
			Source:    "social:github",
			Category:  models.CategorySocial,
			Relevance: githubRepoRelevance,
			Timestamp: now,
		})
	}
	return results, nil
}

func (c *GitHubClient) getUser(ctx context.Context, handle string) (*githubUser, error) {
	return breaker.Cast[githubUser](c.breaker.Execute(func() (interface{}, error) {
		var user githubUser
		resp, err := c.client.R().
			SetContext(ctx).
			SetResult(&user).
			Get("/users/" + handle)
		if err != nil {
			return nil, fmt.Errorf("github user request failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("github returned status %d for user %s", resp.StatusCode(), handle)
		}
		return &user, nil
	}))
}

func (c *GitHubClient) getRepos(ctx context.Context, handle string) ([]githubRepo, error) {
	result, err := breaker.Cast[[]githubRepo](c.breaker.Execute(func() (interface{}, error) {
		var repos []githubRepo
		resp, err := c.client.R().
			SetContext(ctx).
			SetResult(&repos).
			SetQueryParams(map[string]string{
				"sort":     "updated",
				"per_page": "10",
			}).
			Get("/users/" + handle + "/repos")
		if err != nil {
			return nil, fmt.Errorf("github repos request failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("github returned status %d for repos of %s", resp.StatusCode(), handle)
		}
		return &repos, nil
	}))
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// profileTitle renders "Name (@login) on GitHub" or falls back to the
// login alone.
func profileTitle(u *githubUser) string {
	if u.Name != "" {
		return fmt.Sprintf("%s (@%s) on GitHub", u.Name, u.Login)
	}
	return fmt.Sprintf("@%s on GitHub", u.Login)
}

// profileContent flattens the structured profile fields into snippet
// text so downstream scoring and summarization treat all sources alike.
func profileContent(u *githubUser) string {
	parts := make([]string, 0, 5)
	if u.Bio != "" {
		parts = append(parts, u.Bio)
	}
	if u.Company != "" {
		parts = append(parts, "Works at "+u.Company+".")
	}
	if u.Location != "" {
		parts = append(parts, "Based in "+u.Location+".")
	}
	if u.PublicRepos > 0 {
		parts = append(parts, fmt.Sprintf("%d public repositories.", u.PublicRepos))
	}
	if u.Followers > 0 {
		parts = append(parts, fmt.Sprintf("%d followers.", u.Followers))
	}
	return strings.Join(parts, " ")
}
