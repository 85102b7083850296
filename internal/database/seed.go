package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Seed populates the database with one sample content item so the API has
// something to serve in a fresh development environment. No-op when any
// content already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM content_items").Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	id := uuid.New()
	now := time.Now()
	monday := now.AddDate(0, 0, -((int(now.Weekday())+6)%7))
	weekID := "week-" + monday.Format("2006-01-02")
	scheduled := time.Date(monday.Year(), monday.Month(), monday.Day(), 9, 0, 0, 0, monday.Location())

	_, err := db.Exec(`
		INSERT INTO content_items (id, title, body, platform, subtype, status,
		                           scheduled_at, keywords, hashtags, media_suggestions,
		                           source, week_id, holiday_context, summary, quality_score,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, id, "Welcome to the Garden Blog",
		"<h2>Welcome to the Garden Blog</h2>\n<p>Sample post created by the development seed.</p>",
		"blog", "blog_post", "draft",
		scheduled,
		`["gardening", "welcome"]`, `["#gardening"]`,
		`["A sunlit garden center entrance"]`,
		"fallback", weekID, "development seed",
		"Sample post created by the development seed.", 82,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("seed insert content: %w", err)
	}

	slog.Info("database seeded with sample content", "id", id, "week_id", weekID)
	return nil
}
