// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API: content generation, lookup,
// status updates, publishing, exports, and the health probe.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"greenpress/internal/cache"
	"greenpress/internal/models"
	"greenpress/internal/planner"
	"greenpress/internal/publisher"
	"greenpress/internal/storage"
)

// ContentStore is the content persistence surface the handlers need.
type ContentStore interface {
	SaveContent(ctx context.Context, item *models.ContentItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ContentItem, error)
	ListByWeek(ctx context.Context, weekID string) ([]models.ContentItem, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]models.ContentItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (bool, error)
	Ping(ctx context.Context) error
}

// WeekStore is the weekly package lookup surface.
type WeekStore interface {
	FindWeek(ctx context.Context, weekID string) (*models.WeeklyPackage, error)
	ListWeeks(ctx context.Context, limit int) ([]models.WeeklyPackage, error)
}

// PlanRunner executes a content plan for a date.
type PlanRunner interface {
	GenerateForDate(ctx context.Context, date time.Time) (*planner.BatchResult, error)
}

// GenerationStatus exposes the adapter state for the health probe.
type GenerationStatus interface {
	RemoteAvailable() bool
	Source() models.GenerationSource
}

// Handlers groups the API endpoints with their dependencies. Publisher,
// cache, and archive are optional; nil disables the related behaviour.
type Handlers struct {
	planner   PlanRunner
	content   ContentStore
	weeks     WeekStore
	weekCache *cache.WeekCache
	publisher publisher.BlogPublisher
	archive   *storage.Client
	genStatus GenerationStatus
	author    string
}

// New creates the handler group.
func New(
	plan PlanRunner,
	content ContentStore,
	weeks WeekStore,
	weekCache *cache.WeekCache,
	pub publisher.BlogPublisher,
	archive *storage.Client,
	genStatus GenerationStatus,
	author string,
) *Handlers {
	return &Handlers{
		planner:   plan,
		content:   content,
		weeks:     weeks,
		weekCache: weekCache,
		publisher: pub,
		archive:   archive,
		genStatus: genStatus,
		author:    author,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the standard failure envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
