// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists content items and weekly packages in PostgreSQL.
// Ordered list fields (keywords, hashtags, media suggestions) are stored
// as JSONB arrays so they round-trip exactly as produced.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"greenpress/internal/models"
)

// ContentStore handles all content-item database operations.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a ContentStore with the given connection pool.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `id, title, body, platform, subtype, status,
	scheduled_at, keywords, hashtags, media_suggestions, source,
	week_id, holiday_context, summary, quality_score,
	created_at, updated_at`

// SaveContent upserts an item by id with full-replace semantics: saving
// the same id again overwrites every field, created_at included. Callers
// that mutate an existing row are expected to carry its created_at over.
func (s *ContentStore) SaveContent(ctx context.Context, c *models.ContentItem) error {
	keywords, hashtags, media, err := marshalLists(c)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO content_items (`+contentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			platform = EXCLUDED.platform,
			subtype = EXCLUDED.subtype,
			status = EXCLUDED.status,
			scheduled_at = EXCLUDED.scheduled_at,
			keywords = EXCLUDED.keywords,
			hashtags = EXCLUDED.hashtags,
			media_suggestions = EXCLUDED.media_suggestions,
			source = EXCLUDED.source,
			week_id = EXCLUDED.week_id,
			holiday_context = EXCLUDED.holiday_context,
			summary = EXCLUDED.summary,
			quality_score = EXCLUDED.quality_score,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`, c.ID, c.Title, c.Body, c.Platform, c.Subtype, c.Status,
		c.ScheduledAt, keywords, hashtags, media, c.Source,
		c.WeekID, c.HolidayContext, c.Summary, c.QualityScore,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save content item: %w", err)
	}
	return nil
}

// FindByID retrieves an item by its UUID. Returns nil if not found.
func (s *ContentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.ContentItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+contentColumns+` FROM content_items WHERE id = $1
	`, id)

	item, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return item, nil
}

// ListByWeek returns all items for a week id, ordered by scheduled time
// ascending.
func (s *ContentStore) ListByWeek(ctx context.Context, weekID string) ([]models.ContentItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+contentColumns+` FROM content_items
		WHERE week_id = $1
		ORDER BY scheduled_at ASC NULLS LAST
	`, weekID)
	if err != nil {
		return nil, fmt.Errorf("list content by week: %w", err)
	}
	defer rows.Close()

	return collectContent(rows)
}

// ListByRange returns items scheduled within [start, end] inclusive,
// ordered by scheduled time ascending.
func (s *ContentStore) ListByRange(ctx context.Context, start, end time.Time) ([]models.ContentItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+contentColumns+` FROM content_items
		WHERE scheduled_at >= $1 AND scheduled_at <= $2
		ORDER BY scheduled_at ASC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list content by range: %w", err)
	}
	defer rows.Close()

	return collectContent(rows)
}

// UpdateStatus moves an item to the given status and bumps updated_at.
// Returns (false, nil) when the id does not exist.
func (s *ContentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE content_items SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return false, fmt.Errorf("update content status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update content status: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored content items.
func (s *ContentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return count, nil
}

// Ping verifies database reachability for the health probe.
func (s *ContentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// scanner abstracts *sql.Row and *sql.Rows for scanContent.
type scanner interface {
	Scan(dest ...any) error
}

// scanContent reads one content row, decoding JSONB list fields.
func scanContent(row scanner) (*models.ContentItem, error) {
	c := &models.ContentItem{}
	var keywords, hashtags, media []byte
	if err := row.Scan(
		&c.ID, &c.Title, &c.Body, &c.Platform, &c.Subtype, &c.Status,
		&c.ScheduledAt, &keywords, &hashtags, &media, &c.Source,
		&c.WeekID, &c.HolidayContext, &c.Summary, &c.QualityScore,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := unmarshalLists(c, keywords, hashtags, media); err != nil {
		return nil, err
	}
	return c, nil
}

// collectContent drains a result set into a slice.
func collectContent(rows *sql.Rows) ([]models.ContentItem, error) {
	var items []models.ContentItem
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// marshalLists encodes the ordered list fields for storage.
func marshalLists(c *models.ContentItem) (keywords, hashtags, media []byte, err error) {
	if keywords, err = json.Marshal(emptyIfNil(c.Keywords)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal keywords: %w", err)
	}
	if hashtags, err = json.Marshal(emptyIfNil(c.Hashtags)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal hashtags: %w", err)
	}
	if media, err = json.Marshal(emptyIfNil(c.MediaSuggestions)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal media suggestions: %w", err)
	}
	return keywords, hashtags, media, nil
}

// unmarshalLists decodes the ordered list fields after a scan.
func unmarshalLists(c *models.ContentItem, keywords, hashtags, media []byte) error {
	if err := json.Unmarshal(keywords, &c.Keywords); err != nil {
		return fmt.Errorf("unmarshal keywords: %w", err)
	}
	if err := json.Unmarshal(hashtags, &c.Hashtags); err != nil {
		return fmt.Errorf("unmarshal hashtags: %w", err)
	}
	if err := json.Unmarshal(media, &c.MediaSuggestions); err != nil {
		return fmt.Errorf("unmarshal media suggestions: %w", err)
	}
	return nil
}

// emptyIfNil keeps JSONB columns as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
