// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify route registration and the middleware chain
// using stub dependencies; handler behaviour is covered in the handlers
// package.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"greenpress/internal/handlers"
	"greenpress/internal/models"
	"greenpress/internal/planner"
)

type stubContent struct{}

func (stubContent) SaveContent(context.Context, *models.ContentItem) error { return nil }
func (stubContent) FindByID(context.Context, uuid.UUID) (*models.ContentItem, error) {
	return nil, nil
}
func (stubContent) ListByWeek(context.Context, string) ([]models.ContentItem, error) {
	return nil, nil
}
func (stubContent) ListByRange(context.Context, time.Time, time.Time) ([]models.ContentItem, error) {
	return nil, nil
}
func (stubContent) UpdateStatus(context.Context, uuid.UUID, models.Status) (bool, error) {
	return false, nil
}
func (stubContent) Ping(context.Context) error { return nil }

type stubWeeks struct{}

func (stubWeeks) FindWeek(context.Context, string) (*models.WeeklyPackage, error) { return nil, nil }
func (stubWeeks) ListWeeks(context.Context, int) ([]models.WeeklyPackage, error)  { return nil, nil }

type stubPlanner struct{}

func (stubPlanner) GenerateForDate(context.Context, time.Time) (*planner.BatchResult, error) {
	return &planner.BatchResult{
		Mode:      "day",
		WeekID:    "week-2025-07-07",
		Breakdown: map[models.Platform]int{},
	}, nil
}

type stubGenStatus struct{}

func (stubGenStatus) RemoteAvailable() bool           { return false }
func (stubGenStatus) Source() models.GenerationSource { return models.SourceFallback }

func testRouter() http.Handler {
	h := handlers.New(stubPlanner{}, stubContent{}, stubWeeks{}, nil, nil, nil, stubGenStatus{}, "Team")
	return New(h)
}

func TestHealthRoute(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	testRouter().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: %v", body["status"])
	}
}

func TestRoutesRegistered(t *testing.T) {
	router := testRouter()

	// Every route should resolve to a handler, not the 404 fallback.
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/content/generate"},
		{http.MethodGet, "/api/content/range"},
		{http.MethodGet, "/api/content/week/week-2025-07-07"},
		{http.MethodGet, "/api/content/" + uuid.NewString()},
		{http.MethodPut, "/api/content/" + uuid.NewString() + "/status"},
		{http.MethodPost, "/api/content/" + uuid.NewString() + "/publish"},
		{http.MethodGet, "/api/weeks"},
		{http.MethodPost, "/api/export/csv"},
		{http.MethodPost, "/api/export/html"},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(rt.method, rt.path, nil)
		router.ServeHTTP(w, r)

		if w.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s: method not allowed", rt.method, rt.path)
		}
		// Handler 404s carry the JSON error envelope; chi's fallback 404
		// is plain text. Only the latter means the route is missing.
		if w.Code == http.StatusNotFound &&
			w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("%s %s: unrouted", rt.method, rt.path)
		}
	}
}

func TestUnknownRoute404(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)

	testRouter().ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
