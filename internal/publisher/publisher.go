// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publisher pushes finished blog items to the external storefront
// blog platform. Only the article-creation capability the core needs is
// modelled; other platforms are distributed manually via the export page.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"greenpress/internal/models"
)

// Config holds the blog platform connection settings.
type Config struct {
	BaseURL string
	Token   string
	Author  string
}

// Result reports a successful publish.
type Result struct {
	RemoteID string `json:"remote_id"`
	URL      string `json:"url,omitempty"`
}

// BlogPublisher is the capability interface for pushing an article.
type BlogPublisher interface {
	PublishArticle(ctx context.Context, item *models.ContentItem) (*Result, error)
}

// Client implements BlogPublisher against the platform's JSON article
// endpoint (POST /articles).
type Client struct {
	config Config
	client *http.Client
}

// New creates a blog publisher client. Returns nil when the platform is
// not configured; callers treat a nil publisher as "publishing disabled".
func New(cfg Config) *Client {
	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// articleRequest is the platform's article-creation payload.
type articleRequest struct {
	Article articleBody `json:"article"`
}

type articleBody struct {
	Title   string   `json:"title"`
	Body    string   `json:"body_html"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary_html,omitempty"`
	Author  string   `json:"author,omitempty"`
}

type articleResponse struct {
	Article struct {
		ID  json.Number `json:"id"`
		URL string      `json:"url"`
	} `json:"article"`
}

// PublishArticle creates an article on the blog platform from the item's
// title, body, keywords, and summary. Errors are returned verbatim for
// the caller to surface; the item is not mutated here.
func (c *Client) PublishArticle(ctx context.Context, item *models.ContentItem) (*Result, error) {
	summary := ""
	if item.Summary != nil {
		summary = *item.Summary
	}

	payload, err := json.Marshal(articleRequest{Article: articleBody{
		Title:   item.Title,
		Body:    item.Body,
		Tags:    item.Keywords,
		Summary: summary,
		Author:  c.config.Author,
	}})
	if err != nil {
		return nil, fmt.Errorf("publish marshal: %w", err)
	}

	url := c.config.BaseURL + "/articles"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("publish http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("publish read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("publish API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed articleResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("publish unmarshal: %w", err)
	}

	return &Result{
		RemoteID: parsed.Article.ID.String(),
		URL:      parsed.Article.URL,
	}, nil
}
