// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package planner decides which content items to produce for a day or a
// week and drives the text-generation adapter to fill them in. Plans are
// fixed-shape: the same date always yields the same slots, platforms, and
// scheduled times; only the generated text varies by strategy.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenpress/internal/calendar"
	"greenpress/internal/generator"
	"greenpress/internal/models"
)

// Config carries the immutable site-wide generation settings, loaded once
// at process start and passed in explicitly.
type Config struct {
	TargetKeywords []string
	TargetProducts []string
	BrandVoice     string
}

// Store is the persistence surface the planner needs.
type Store interface {
	SaveContent(ctx context.Context, item *models.ContentItem) error
	SaveWeek(ctx context.Context, week *models.WeeklyPackage) error
}

// TextGenerator is the generation capability the planner consumes.
// Generate never fails; the adapter absorbs remote errors via fallback.
type TextGenerator interface {
	Generate(ctx context.Context, req generator.Request) *generator.Result
	Source() models.GenerationSource
}

// Planner builds and executes content plans.
type Planner struct {
	store Store
	gen   TextGenerator
	cfg   Config
}

// New creates a Planner.
func New(store Store, gen TextGenerator, cfg Config) *Planner {
	return &Planner{store: store, gen: gen, cfg: cfg}
}

// BatchResult summarises one generation run.
type BatchResult struct {
	Mode      string                   `json:"mode"` // "week" or "day"
	WeekID    string                   `json:"week_id"`
	Season    calendar.Season          `json:"season"`
	Theme     string                   `json:"theme"`
	Holidays  []models.Holiday         `json:"holidays"`
	ItemCount int                      `json:"item_count"`
	Breakdown map[models.Platform]int  `json:"content_breakdown"`
	Source    models.GenerationSource  `json:"generation_source"`
	Items     []models.ContentItem     `json:"items"`
}

// slot is one fixed position in the daily content package.
type slot struct {
	platform models.Platform
	hour     int
}

// dailySlots is the fixed daily package, in production order: one blog
// post, three Instagram posts, three Facebook posts, one TikTok script,
// one LinkedIn post. Sunday is excluded from weekly plans by design.
var dailySlots = []slot{
	{models.PlatformBlog, 9},
	{models.PlatformInstagram, 9},
	{models.PlatformInstagram, 13},
	{models.PlatformInstagram, 17},
	{models.PlatformFacebook, 10},
	{models.PlatformFacebook, 14},
	{models.PlatformFacebook, 18},
	{models.PlatformTikTok, 15},
	{models.PlatformLinkedIn, 11},
}

// GenerateForDate is the single entry point: a Monday produces a full
// weekly plan, any other day produces that day's package only.
func (p *Planner) GenerateForDate(ctx context.Context, date time.Time) (*BatchResult, error) {
	if date.Weekday() == time.Monday {
		return p.generateWeek(ctx, date)
	}
	return p.generateDay(ctx, date)
}

// generateWeek produces the YouTube weekly outline plus six daily
// packages (Monday through Saturday) and writes the WeeklyPackage row.
func (p *Planner) generateWeek(ctx context.Context, monday time.Time) (*BatchResult, error) {
	weekID := calendar.WeekID(monday)
	season := calendar.SeasonOf(monday)
	holidays := calendar.HolidaysInWeek(monday)
	theme := calendar.WeekTheme(monday)

	res := &BatchResult{
		Mode:      "week",
		WeekID:    weekID,
		Season:    season,
		Theme:     theme,
		Holidays:  holidays,
		Breakdown: make(map[models.Platform]int),
		Source:    p.gen.Source(),
	}

	now := time.Now()
	week := &models.WeeklyPackage{
		WeekID:    weekID,
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, 6),
		Season:    string(season),
		Holidays:  holidays,
		Theme:     theme,
		Status:    models.WeekStatusGenerated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.store.SaveWeek(ctx, week); err != nil {
		// Item generation still proceeds; the summary row can be rebuilt
		// by rerunning the week.
		slog.Error("save weekly package failed", "week_id", weekID, "error", err)
	}

	// The weekly YouTube outline leads the batch, scheduled Monday 10:00.
	outline := p.produceItem(ctx, itemSpec{
		title:          fmt.Sprintf("This Week in the Garden: %s", theme),
		platform:       models.PlatformYouTube,
		subtype:        models.SubtypeVideoOutline,
		scheduledAt:    at(monday, 10),
		day:            monday,
		weekID:         weekID,
		season:         season,
		theme:          theme,
		holidayContext: p.holidayContext(monday, season),
		keywords:       p.keywordsFor(monday, season),
		minWords:       300,
		maxWords:       600,
	})
	res.appendItem(outline)

	for i := 0; i < 6; i++ {
		day := monday.AddDate(0, 0, i)
		for _, item := range p.produceDailyPackage(ctx, day, weekID, season, theme) {
			res.appendItem(item)
		}
	}

	return res, nil
}

// generateDay produces exactly one daily package. No WeeklyPackage row is
// written: single-day runs reference the implicit week id only.
func (p *Planner) generateDay(ctx context.Context, date time.Time) (*BatchResult, error) {
	monday := calendar.MondayOf(date)
	season := calendar.SeasonOf(date)

	res := &BatchResult{
		Mode:      "day",
		WeekID:    calendar.WeekID(date),
		Season:    season,
		Theme:     calendar.WeekTheme(monday),
		Holidays:  calendar.HolidaysInWeek(monday),
		Breakdown: make(map[models.Platform]int),
		Source:    p.gen.Source(),
	}

	for _, item := range p.produceDailyPackage(ctx, date, res.WeekID, season, res.Theme) {
		res.appendItem(item)
	}
	return res, nil
}

// produceDailyPackage walks the fixed slot table for one day. Social post
// subtypes cycle through the 5-entry rotation indexed by social post
// order within the day.
func (p *Planner) produceDailyPackage(ctx context.Context, day time.Time, weekID string, season calendar.Season, weekTheme string) []*models.ContentItem {
	holidayContext := p.holidayContext(day, season)
	keywords := p.keywordsFor(day, season)

	var items []*models.ContentItem
	socialOrder := 0
	for _, s := range dailySlots {
		spec := itemSpec{
			platform:       s.platform,
			scheduledAt:    at(day, s.hour),
			day:            day,
			weekID:         weekID,
			season:         season,
			theme:          weekTheme,
			holidayContext: holidayContext,
			keywords:       keywords,
		}

		switch s.platform {
		case models.PlatformBlog:
			spec.subtype = models.SubtypeBlogPost
			spec.title = blogTitle(day, holidayContext, season)
			spec.minWords, spec.maxWords = 800, 1200
		case models.PlatformTikTok:
			spec.subtype = models.SubtypeVideoScript
			spec.title = fmt.Sprintf("60-Second Garden: %s", holidayContext)
			spec.minWords, spec.maxWords = 150, 300
		default:
			spec.subtype = models.SocialRotation[socialOrder%len(models.SocialRotation)]
			spec.title = socialTitle(spec.subtype, day, season)
			spec.minWords, spec.maxWords = 50, 150
			if s.platform == models.PlatformLinkedIn {
				spec.minWords, spec.maxWords = 100, 250
			}
			socialOrder++
		}

		if item := p.produceItem(ctx, spec); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// itemSpec fully determines one planned item before generation.
type itemSpec struct {
	title          string
	platform       models.Platform
	subtype        models.Subtype
	scheduledAt    time.Time
	day            time.Time
	weekID         string
	season         calendar.Season
	theme          string
	holidayContext string
	keywords       []string
	minWords       int
	maxWords       int
}

// produceItem generates and persists one item. Failures are contained:
// a persistence error drops this item from the batch and the plan
// continues.
func (p *Planner) produceItem(ctx context.Context, spec itemSpec) *models.ContentItem {
	gen := p.gen.Generate(ctx, generator.Request{
		Title:          spec.title,
		Platform:       spec.platform,
		Subtype:        spec.subtype,
		Keywords:       spec.keywords,
		Season:         spec.season,
		Day:            spec.day.Weekday().String(),
		Theme:          spec.theme,
		HolidayContext: spec.holidayContext,
		MinWords:       spec.minWords,
		MaxWords:       spec.maxWords,
		BrandVoice:     p.cfg.BrandVoice,
		Products:       p.cfg.TargetProducts,
	})

	now := time.Now()
	scheduled := spec.scheduledAt
	summary := gen.Summary
	score := gen.QualityScore
	item := &models.ContentItem{
		ID:               uuid.New(),
		Title:            spec.title,
		Body:             gen.Body,
		Platform:         spec.platform,
		Subtype:          spec.subtype,
		Status:           models.StatusDraft,
		ScheduledAt:      &scheduled,
		Keywords:         spec.keywords,
		Hashtags:         hashtagsFor(spec.platform, spec.season, spec.keywords),
		MediaSuggestions: gen.MediaSuggestions,
		Source:           gen.Source,
		WeekID:           spec.weekID,
		HolidayContext:   spec.holidayContext,
		Summary:          &summary,
		QualityScore:     &score,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := p.store.SaveContent(ctx, item); err != nil {
		slog.Error("save content item failed",
			"title", spec.title,
			"platform", spec.platform,
			"error", err,
		)
		return nil
	}
	return item
}

// holidayContext labels why a day's content is themed the way it is:
// the exact holiday when the date matches one, the seasonal daily theme
// otherwise.
func (p *Planner) holidayContext(day time.Time, season calendar.Season) string {
	if h, ok := calendar.HolidayOn(day); ok {
		return fmt.Sprintf("%s - %s", h.Name, h.Focus)
	}
	return fmt.Sprintf("%s gardening - %s", season, p.dayFocus(day))
}

// dayFocus is the bare focus text for a day: the holiday's gardening focus
// when one lands on the date, the day-of-week theme otherwise, and the week
// theme for days outside the daily table.
func (p *Planner) dayFocus(day time.Time) string {
	if h, ok := calendar.HolidayOn(day); ok {
		return h.Focus
	}
	theme, ok := calendar.DailyTheme(day.Weekday())
	if !ok {
		theme = calendar.WeekTheme(calendar.MondayOf(day))
	}
	return theme
}

// keywordsFor combines the day-of-week keyword table with the first two
// global target keywords. Days outside the table fall back to the season
// plus the lowercased focus text for that day.
func (p *Planner) keywordsFor(day time.Time, season calendar.Season) []string {
	kw, ok := calendar.DayKeywords(day.Weekday())
	if !ok {
		kw = []string{string(season) + " gardening", strings.ToLower(p.dayFocus(day))}
	}
	global := p.cfg.TargetKeywords
	if len(global) > 2 {
		global = global[:2]
	}
	return append(kw, global...)
}

// hashtagsFor derives platform-appropriate hashtags from the keyword set.
func hashtagsFor(platform models.Platform, season calendar.Season, keywords []string) []string {
	tags := []string{"#gardening", "#" + string(season) + "garden"}
	for _, kw := range keywords {
		tag := "#" + strings.ReplaceAll(strings.ToLower(kw), " ", "")
		tags = append(tags, tag)
	}
	switch platform {
	case models.PlatformInstagram:
		tags = append(tags, "#gardenlife", "#plantsofinstagram")
	case models.PlatformTikTok:
		tags = append(tags, "#gardentok", "#planttok")
	}
	return tags
}

// blogTitle builds the daily blog post title.
func blogTitle(day time.Time, holidayContext string, season calendar.Season) string {
	if h, ok := calendar.HolidayOn(day); ok {
		return fmt.Sprintf("%s at the Garden Center: %s Ideas", h.Name, h.Focus)
	}
	theme, _ := calendar.DailyTheme(day.Weekday())
	if theme == "" {
		theme = "Seasonal Notes"
	}
	return fmt.Sprintf("%s: Your %s Garden Guide", theme, strings.ToUpper(string(season[0]))+string(season[1:]))
}

// socialTitle builds a short title for a rotated social subtype.
func socialTitle(subtype models.Subtype, day time.Time, season calendar.Season) string {
	labels := map[models.Subtype]string{
		models.SubtypeEducational:  "Garden Tip",
		models.SubtypeProduct:      "Product Spotlight",
		models.SubtypeCommunity:    "Community Question",
		models.SubtypeSeasonal:     "Seasonal Advice",
		models.SubtypeBehindScenes: "Behind the Scenes",
	}
	return fmt.Sprintf("%s %s: %s", day.Weekday(), labels[subtype], weekdayHook(season))
}

// weekdayHook gives social titles a seasonal angle.
func weekdayHook(season calendar.Season) string {
	switch season {
	case calendar.SeasonSpring:
		return "Get Growing"
	case calendar.SeasonSummer:
		return "Keep It Thriving"
	case calendar.SeasonFall:
		return "Plant for Spring"
	default:
		return "Green All Winter"
	}
}

// at returns the given day at the given hour, minute zero, preserving the
// day's location.
func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// appendItem folds a produced item into the batch summary.
func (r *BatchResult) appendItem(item *models.ContentItem) {
	if item == nil {
		return
	}
	r.Items = append(r.Items, *item)
	r.ItemCount++
	r.Breakdown[item.Platform]++
}
