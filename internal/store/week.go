// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"greenpress/internal/models"
)

// WeekStore handles weekly package rows. Because a week id is a pure
// function of its start date, SaveWeek overwrites the existing row when a
// week is regenerated.
type WeekStore struct {
	db *sql.DB
}

// NewWeekStore creates a WeekStore with the given connection pool.
func NewWeekStore(db *sql.DB) *WeekStore {
	return &WeekStore{db: db}
}

// SaveWeek upserts a weekly package by week id.
func (s *WeekStore) SaveWeek(ctx context.Context, w *models.WeeklyPackage) error {
	holidays, err := json.Marshal(w.Holidays)
	if err != nil {
		return fmt.Errorf("marshal week holidays: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO weekly_packages (week_id, start_date, end_date, season,
		                             holidays, theme, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (week_id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			season = EXCLUDED.season,
			holidays = EXCLUDED.holidays,
			theme = EXCLUDED.theme,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`, w.WeekID, w.StartDate, w.EndDate, w.Season,
		holidays, w.Theme, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save weekly package: %w", err)
	}
	return nil
}

// FindWeek retrieves a weekly package by id. Returns nil if not found.
func (s *WeekStore) FindWeek(ctx context.Context, weekID string) (*models.WeeklyPackage, error) {
	w := &models.WeeklyPackage{}
	var holidays []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT week_id, start_date, end_date, season, holidays, theme,
		       status, created_at, updated_at
		FROM weekly_packages WHERE week_id = $1
	`, weekID).Scan(
		&w.WeekID, &w.StartDate, &w.EndDate, &w.Season, &holidays,
		&w.Theme, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find weekly package: %w", err)
	}
	if err := json.Unmarshal(holidays, &w.Holidays); err != nil {
		return nil, fmt.Errorf("unmarshal week holidays: %w", err)
	}
	return w, nil
}

// ListWeeks returns weekly packages most recent first.
func (s *WeekStore) ListWeeks(ctx context.Context, limit int) ([]models.WeeklyPackage, error) {
	if limit <= 0 {
		limit = 52
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT week_id, start_date, end_date, season, holidays, theme,
		       status, created_at, updated_at
		FROM weekly_packages
		ORDER BY start_date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list weekly packages: %w", err)
	}
	defer rows.Close()

	var weeks []models.WeeklyPackage
	for rows.Next() {
		var w models.WeeklyPackage
		var holidays []byte
		if err := rows.Scan(
			&w.WeekID, &w.StartDate, &w.EndDate, &w.Season, &holidays,
			&w.Theme, &w.Status, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan weekly package: %w", err)
		}
		if err := json.Unmarshal(holidays, &w.Holidays); err != nil {
			return nil, fmt.Errorf("unmarshal week holidays: %w", err)
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}
