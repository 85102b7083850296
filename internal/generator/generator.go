// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator produces structured marketing copy for content items.
// Two strategies implement the Generator interface: a remote LLM backend
// and a fully local seasonal template. The Adapter selects between them
// per call, falling back to the local template on any remote failure so
// that generation never aborts a content plan.
package generator

import (
	"context"
	"log/slog"
	"sync"

	"greenpress/internal/calendar"
	"greenpress/internal/models"
)

// Request carries everything a strategy needs to write one item.
type Request struct {
	Title          string
	Platform       models.Platform
	Subtype        models.Subtype
	Keywords       []string
	Season         calendar.Season
	Day            string // weekday name, e.g. "Monday"
	Theme          string
	HolidayContext string
	MinWords       int
	MaxWords       int
	BrandVoice     string
	Products       []string
}

// Result is the structured output every strategy must produce. Regardless
// of strategy, Body is non-empty, Summary is at most 160 characters, and
// MediaSuggestions has between 1 and 5 entries.
type Result struct {
	Body             string
	Summary          string
	MediaSuggestions []string
	QualityScore     int
	Source           models.GenerationSource
}

// Generator is the capability interface for a text-generation strategy.
type Generator interface {
	// Generate produces structured content for the request.
	Generate(ctx context.Context, req Request) (*Result, error)

	// Name returns the strategy identifier ("remote", "fallback").
	Name() string
}

// Adapter fronts the remote strategy with the local fallback. The remote
// path is used only when credentials were configured and the connectivity
// self-test passed at initialization; any runtime failure downgrades that
// single request to the fallback and is logged, never surfaced.
type Adapter struct {
	mu       sync.RWMutex
	remote   *Remote // nil when unconfigured or self-test failed
	fallback *Fallback
}

// NewAdapter builds the adapter. When cfg has an API key, the remote
// backend is probed once; a failed probe disables the remote path for the
// process lifetime rather than failing startup.
func NewAdapter(ctx context.Context, cfg RemoteConfig) *Adapter {
	a := &Adapter{fallback: NewFallback()}

	if cfg.APIKey == "" {
		slog.Info("text generation: no remote credentials, using local templates")
		return a
	}

	remote := NewRemote(cfg)
	if err := remote.SelfTest(ctx); err != nil {
		slog.Warn("text generation: remote self-test failed, using local templates", "error", err)
		return a
	}

	a.remote = remote
	slog.Info("text generation: remote backend ready", "model", cfg.Model)
	return a
}

// Generate runs the active strategy. It never returns an error: the
// fallback path is deterministic and cannot fail.
func (a *Adapter) Generate(ctx context.Context, req Request) *Result {
	a.mu.RLock()
	remote := a.remote
	a.mu.RUnlock()

	if remote != nil {
		res, err := remote.Generate(ctx, req)
		if err == nil {
			return res
		}
		slog.Warn("remote generation failed, falling back to template",
			"title", req.Title,
			"platform", req.Platform,
			"error", err,
		)
	}

	res, _ := a.fallback.Generate(ctx, req)
	return res
}

// RemoteAvailable reports whether the remote backend passed its self-test.
func (a *Adapter) RemoteAvailable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.remote != nil
}

// Source is the batch-level label callers report: "remote" when the remote
// backend is active, "fallback" otherwise.
func (a *Adapter) Source() models.GenerationSource {
	if a.RemoteAvailable() {
		return models.SourceRemote
	}
	return models.SourceFallback
}
