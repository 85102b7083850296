// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go provides shared fakes for the API handler tests. The
// handlers are exercised through a chi router so URL parameters resolve
// exactly as they do in production.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"greenpress/internal/models"
	"greenpress/internal/planner"
	"greenpress/internal/publisher"
)

// fakeContent is an in-memory ContentStore.
type fakeContent struct {
	items     map[uuid.UUID]*models.ContentItem
	byWeek    map[string][]models.ContentItem
	byRange   []models.ContentItem
	rangeFrom time.Time
	rangeTo   time.Time
	statuses  map[uuid.UUID]models.Status
	pingErr   error
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		items:    map[uuid.UUID]*models.ContentItem{},
		byWeek:   map[string][]models.ContentItem{},
		statuses: map[uuid.UUID]models.Status{},
	}
}

func (f *fakeContent) SaveContent(_ context.Context, item *models.ContentItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeContent) FindByID(_ context.Context, id uuid.UUID) (*models.ContentItem, error) {
	return f.items[id], nil
}

func (f *fakeContent) ListByWeek(_ context.Context, weekID string) ([]models.ContentItem, error) {
	return f.byWeek[weekID], nil
}

func (f *fakeContent) ListByRange(_ context.Context, start, end time.Time) ([]models.ContentItem, error) {
	f.rangeFrom, f.rangeTo = start, end
	return f.byRange, nil
}

func (f *fakeContent) UpdateStatus(_ context.Context, id uuid.UUID, status models.Status) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	f.statuses[id] = status
	return true, nil
}

func (f *fakeContent) Ping(_ context.Context) error { return f.pingErr }

// fakeWeeks is an in-memory WeekStore.
type fakeWeeks struct {
	weeks map[string]*models.WeeklyPackage
	list  []models.WeeklyPackage
}

func (f *fakeWeeks) FindWeek(_ context.Context, weekID string) (*models.WeeklyPackage, error) {
	return f.weeks[weekID], nil
}

func (f *fakeWeeks) ListWeeks(_ context.Context, _ int) ([]models.WeeklyPackage, error) {
	return f.list, nil
}

// fakePlanner returns a canned batch result.
type fakePlanner struct {
	result  *planner.BatchResult
	err     error
	gotDate time.Time
}

func (f *fakePlanner) GenerateForDate(_ context.Context, date time.Time) (*planner.BatchResult, error) {
	f.gotDate = date
	return f.result, f.err
}

// fakePublisher records publish calls.
type fakePublisher struct {
	result *publisher.Result
	err    error
	calls  int
}

func (f *fakePublisher) PublishArticle(_ context.Context, _ *models.ContentItem) (*publisher.Result, error) {
	f.calls++
	return f.result, f.err
}

// fakeGenStatus reports a fixed adapter state.
type fakeGenStatus struct {
	remote bool
}

func (f *fakeGenStatus) RemoteAvailable() bool { return f.remote }
func (f *fakeGenStatus) Source() models.GenerationSource {
	if f.remote {
		return models.SourceRemote
	}
	return models.SourceFallback
}

// testEnv bundles the fakes with a routed handler set.
type testEnv struct {
	content   *fakeContent
	weeks     *fakeWeeks
	planner   *fakePlanner
	publisher *fakePublisher
	router    chi.Router
}

// newTestEnv wires handlers with fakes and production route patterns.
// The week cache and S3 archive are nil, matching an unconfigured deploy.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		content:   newFakeContent(),
		weeks:     &fakeWeeks{weeks: map[string]*models.WeeklyPackage{}},
		planner:   &fakePlanner{},
		publisher: &fakePublisher{result: &publisher.Result{RemoteID: "123", URL: "https://blog.example.test/post"}},
	}

	h := New(env.planner, env.content, env.weeks, nil, env.publisher, nil, &fakeGenStatus{remote: false}, "Garden Center Team")

	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Post("/api/content/generate", h.GenerateContent)
	r.Get("/api/content/range", h.GetRange)
	r.Get("/api/content/week/{weekID}", h.GetWeek)
	r.Get("/api/content/{id}", h.GetContent)
	r.Put("/api/content/{id}/status", h.UpdateStatus)
	r.Post("/api/content/{id}/publish", h.Publish)
	r.Get("/api/weeks", h.ListWeeks)
	r.Post("/api/export/csv", h.ExportCSV)
	r.Post("/api/export/html", h.ExportHTML)
	env.router = r

	return env
}

// seedItem stores one item in the fake content store.
func (env *testEnv) seedItem(platform models.Platform) *models.ContentItem {
	now := time.Date(2025, time.July, 8, 9, 0, 0, 0, time.UTC)
	scheduled := now
	summary := "Summary."
	item := &models.ContentItem{
		ID:          uuid.New(),
		Title:       "Seeded Item",
		Body:        "<p>Seeded body.</p>",
		Platform:    platform,
		Subtype:     models.SubtypeBlogPost,
		Status:      models.StatusDraft,
		ScheduledAt: &scheduled,
		Keywords:    []string{"gardening"},
		Source:      models.SourceFallback,
		WeekID:      "week-2025-07-07",
		Summary:     &summary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	env.content.items[item.ID] = item
	return item
}

// do runs a request through the routed handlers.
func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}
