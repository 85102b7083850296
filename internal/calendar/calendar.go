// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calendar resolves dates into seasonal and holiday context for
// content planning. All functions are pure: the same date always yields the
// same season, holidays, and theme, which is what makes week regeneration
// idempotent.
package calendar

import (
	"fmt"
	"time"

	"greenpress/internal/models"
)

// Season is one of four fixed calendar buckets derived from the month.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonOf maps a date to its season by fixed month ranges:
// Mar-May spring, Jun-Aug summer, Sep-Nov fall, Dec-Feb winter.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// holidayEntry is one row of the fixed (month, day) holiday table.
type holidayEntry struct {
	month time.Month
	day   int
	name  string
	focus string
	theme string
}

// holidayTable lists every date-keyed holiday the planner themes around.
// Floating holidays (Memorial Day, Thanksgiving) use their traditional
// fixed dates; the table is matched on (month, day) only.
var holidayTable = []holidayEntry{
	{time.January, 1, "New Year's Day", "Garden Planning", "Fresh Starts: Planning Your Best Garden Year"},
	{time.February, 2, "Groundhog Day", "Season Forecasting", "Reading the Signs: Preparing for an Early Spring"},
	{time.February, 14, "Valentine's Day", "Gift Plants", "Say It With Living Blooms"},
	{time.March, 17, "St. Patrick's Day", "Green Foliage", "Celebrating Everything Green in the Garden"},
	{time.March, 20, "First Day of Spring", "Seed Starting", "Spring Awakening: Sow the Season"},
	{time.April, 22, "Earth Day", "Sustainable Gardening", "Grow Green: Gardening for the Planet"},
	{time.April, 25, "Arbor Day", "Tree Planting", "Plant a Tree, Grow a Legacy"},
	{time.May, 1, "May Day", "Flower Baskets", "Baskets of Blooms for May Day"},
	{time.May, 30, "Memorial Day", "Remembrance Gardens", "Gardens of Remembrance and Reflection"},
	{time.June, 5, "World Environment Day", "Eco-Friendly Practices", "Small Gardens, Big Environmental Wins"},
	{time.June, 21, "First Day of Summer", "Heat & Watering Care", "Summer Kickoff: Keep the Garden Thriving"},
	{time.July, 4, "Independence Day", "Patriotic Planters", "Red, White & Bloom"},
	{time.September, 1, "Labor Day", "Garden Projects", "Labor of Love: Weekend Garden Projects"},
	{time.September, 22, "First Day of Fall", "Fall Planting", "Autumn Begins: Plant Now for Spring Payoff"},
	{time.October, 31, "Halloween", "Pumpkins & Gourds", "Spooky Season in the Garden"},
	{time.November, 27, "Thanksgiving", "Harvest Gratitude", "A Harvest Worth Giving Thanks For"},
	{time.December, 25, "Christmas", "Holiday Evergreens", "Evergreens, Poinsettias & Holiday Cheer"},
}

// HolidaysInWeek scans the 7 days starting at weekStart (inclusive) and
// returns every holiday table match in date order. A week may match zero,
// one, or several entries.
func HolidaysInWeek(weekStart time.Time) []models.Holiday {
	var out []models.Holiday
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		for _, h := range holidayTable {
			if day.Month() == h.month && day.Day() == h.day {
				out = append(out, models.Holiday{
					Date:  day,
					Name:  h.name,
					Focus: h.focus,
					Theme: h.theme,
				})
			}
		}
	}
	return out
}

// HolidayOn returns the holiday falling exactly on the given date, if any.
func HolidayOn(date time.Time) (models.Holiday, bool) {
	for _, h := range holidayTable {
		if date.Month() == h.month && date.Day() == h.day {
			return models.Holiday{Date: date, Name: h.name, Focus: h.focus, Theme: h.theme}, true
		}
	}
	return models.Holiday{}, false
}

// seasonThemes is the 4-entry rotation used for weeks without a holiday.
// The rotation index is the ISO week number mod 4, making non-holiday
// themes deterministic and periodic with a 4-week cycle per season.
var seasonThemes = map[Season][4]string{
	SeasonSpring: {
		"Waking Up the Garden",
		"Seeds, Starts & Soil Prep",
		"Spring Color Everywhere",
		"Grow Your Own Groceries",
	},
	SeasonSummer: {
		"Beat the Heat Gardening",
		"Harvest Season Highlights",
		"Pollinator Paradise",
		"Outdoor Living & Entertaining",
	},
	SeasonFall: {
		"Fall Planting Payoff",
		"Cozy Garden Projects",
		"Preserve the Harvest",
		"Preparing for the First Frost",
	},
	SeasonWinter: {
		"Houseplant Haven",
		"Planning Next Year's Garden",
		"Winter Protection & Care",
		"Indoor Growing Projects",
	},
}

// WeekTheme returns the theme for a week: the first matching holiday's
// theme when the week contains one, otherwise the seasonal rotation entry
// for that ISO week.
func WeekTheme(weekStart time.Time) string {
	if holidays := HolidaysInWeek(weekStart); len(holidays) > 0 {
		return holidays[0].Theme
	}
	_, week := weekStart.ISOWeek()
	themes := seasonThemes[SeasonOf(weekStart)]
	return themes[week%4]
}

// dailyThemes covers the six generated weekdays. Sunday is deliberately
// absent: the weekly plan never produces Sunday content, and single-day
// Sunday requests fall back to the seasonal theme.
var dailyThemes = map[time.Weekday]string{
	time.Monday:    "Week Kickoff & Planning",
	time.Tuesday:   "Transformation Tuesday",
	time.Wednesday: "Wisdom Wednesday",
	time.Thursday:  "Thriving Thursday",
	time.Friday:    "Feature Friday",
	time.Saturday:  "Weekend Projects",
}

// DailyTheme returns the fixed day-of-week theme. The second return is
// false for days outside the table (Sunday).
func DailyTheme(day time.Weekday) (string, bool) {
	theme, ok := dailyThemes[day]
	return theme, ok
}

// dayKeywords is the fixed day-of-week keyword table for the six
// generated weekdays.
var dayKeywords = map[time.Weekday][]string{
	time.Monday:    {"garden planning", "weekly garden tasks"},
	time.Tuesday:   {"garden transformation", "before and after garden"},
	time.Wednesday: {"gardening tips", "expert garden advice"},
	time.Thursday:  {"thriving plants", "plant care guide"},
	time.Friday:    {"featured plants", "plant of the week"},
	time.Saturday:  {"weekend gardening", "diy garden projects"},
}

// DayKeywords returns the keyword table entry for a weekday. The second
// return is false for days outside the table.
func DayKeywords(day time.Weekday) ([]string, bool) {
	kw, ok := dayKeywords[day]
	if !ok {
		return nil, false
	}
	// Copy so callers can append without mutating the table.
	out := make([]string, len(kw))
	copy(out, kw)
	return out, true
}

// MondayOf returns the Monday of the week containing t, at t's clock time
// and location. Monday is day 0 of the planning week.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekID derives the deterministic identifier for the week containing t.
// Repeated requests for any day of the same week always resolve to the
// same id, which is what lets regeneration update rather than duplicate.
func WeekID(t time.Time) string {
	return fmt.Sprintf("week-%s", MondayOf(t).Format("2006-01-02"))
}
