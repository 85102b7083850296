// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Platform identifies the distribution channel a content item targets.
type Platform string

const (
	PlatformBlog      Platform = "blog"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
)

// Subtype classifies what kind of artifact an item is within its platform.
type Subtype string

const (
	SubtypeBlogPost     Subtype = "blog_post"
	SubtypeVideoScript  Subtype = "video_script"
	SubtypeVideoOutline Subtype = "video_outline"
	SubtypeEducational  Subtype = "educational_tip"
	SubtypeProduct      Subtype = "product_spotlight"
	SubtypeCommunity    Subtype = "community_question"
	SubtypeSeasonal     Subtype = "seasonal_advice"
	SubtypeBehindScenes Subtype = "behind_scenes"
)

// SocialRotation is the fixed subtype cycle for social posts, indexed by
// post order within a day modulo its length.
var SocialRotation = []Subtype{
	SubtypeEducational,
	SubtypeProduct,
	SubtypeCommunity,
	SubtypeSeasonal,
	SubtypeBehindScenes,
}

// Status represents a content item's position in the editorial lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPreview   Status = "preview"
	StatusApproved  Status = "approved"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// ParseStatus validates a status name from external input. Any defined
// state is accepted as a transition target; unknown names are rejected.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPreview, StatusApproved, StatusScheduled, StatusPublished, StatusFailed:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// GenerationSource records which strategy produced an item's text.
type GenerationSource string

const (
	SourceRemote   GenerationSource = "remote"
	SourceFallback GenerationSource = "fallback"
)

// ContentItem is one generated artifact (post, script, article) for one
// platform. List fields are ordered and round-trip through persistence
// exactly as produced.
type ContentItem struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	Platform         Platform         `json:"platform"`
	Subtype          Subtype          `json:"subtype"`
	Status           Status           `json:"status"`
	ScheduledAt      *time.Time       `json:"scheduled_at,omitempty"`
	Keywords         []string         `json:"keywords"`
	Hashtags         []string         `json:"hashtags"`
	MediaSuggestions []string         `json:"media_suggestions"`
	Source           GenerationSource `json:"source"`
	WeekID           string           `json:"week_id"`
	HolidayContext   string           `json:"holiday_context"`
	Summary          *string          `json:"summary,omitempty"`
	QualityScore     *int             `json:"quality_score,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsPublished returns true if the item reached published status.
func (c *ContentItem) IsPublished() bool {
	return c.Status == StatusPublished
}

// BodyPreview returns the first n runes of the body for list responses.
func (c *ContentItem) BodyPreview(n int) string {
	runes := []rune(c.Body)
	if len(runes) <= n {
		return c.Body
	}
	return string(runes[:n]) + "..."
}
