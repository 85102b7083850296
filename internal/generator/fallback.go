// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"fmt"
	"strings"

	"greenpress/internal/calendar"
	"greenpress/internal/models"
)

// fallbackQualityScore is the advisory score for the rich local template.
const fallbackQualityScore = 82

// seasonTemplate is one pre-written narrative per season.
type seasonTemplate struct {
	opening  string
	tasks    []string
	products string
	closing  string
	media    []string
}

var seasonTemplates = map[calendar.Season]seasonTemplate{
	calendar.SeasonSpring: {
		opening: "Spring is the garden's opening act. The soil is warming, the days are stretching, and every bed is an invitation to start fresh.",
		tasks: []string{
			"Start seeds indoors for tomatoes, peppers, and annual flowers",
			"Work compost into beds as soon as the soil can be crumbled by hand",
			"Prune summer-flowering shrubs before new growth takes off",
			"Divide crowded perennials and share the extras",
		},
		products: "Our spring benches are stocked with cold-hardy starts, seed potatoes, and fresh bagged compost ready for pickup.",
		closing:  "Whatever you plant this week will pay you back all season. Come see us and we'll help you get it in the ground right.",
		media: []string{
			"Seed trays sprouting on a sunny windowsill",
			"Gloved hands turning dark compost into a garden bed",
			"Flats of colorful annuals on a nursery bench",
			"A freshly edged spring garden bed",
		},
	},
	calendar.SeasonSummer: {
		opening: "Summer gardens reward attention. A little water discipline and timely harvesting keep everything producing through the heat.",
		tasks: []string{
			"Water deeply in the early morning, two to three times a week",
			"Harvest squash and beans every other day to keep plants producing",
			"Deadhead annuals and feed containers every two weeks",
			"Mulch exposed soil to hold moisture through hot spells",
		},
		products: "Soaker hoses, shade cloth, and our summer-blend fertilizer are all in stock to carry your garden through the hottest weeks.",
		closing:  "Beat the heat, keep the harvest coming, and stop by for a cold drink and a walk through the display gardens.",
		media: []string{
			"Morning sun over a vegetable garden with drip irrigation",
			"A harvest basket overflowing with summer produce",
			"Bright containers of annuals on a patio",
			"Close-up of a bee on a sunflower",
			"A shaded seating area surrounded by lush plantings",
		},
	},
	calendar.SeasonFall: {
		opening: "Fall is the quiet power move of the gardening year. Everything planted now roots in cool soil and comes back stronger in spring.",
		tasks: []string{
			"Plant spring-flowering bulbs before the ground firms up",
			"Overseed thin lawn patches while nights are cool",
			"Cut back spent perennials and compost the trimmings",
			"Plant trees and shrubs so roots establish before winter",
		},
		products: "Bulb bins are full, fall mums are at their peak, and tree stock is the best it will be all year.",
		closing:  "A weekend of fall planting buys you months of spring payoff. We'll load the truck for you.",
		media: []string{
			"Hands planting tulip bulbs in rich soil",
			"Rows of chrysanthemums in autumn colors",
			"A wheelbarrow of fallen leaves beside a compost bin",
			"Young trees staked in a freshly planted row",
		},
	},
	calendar.SeasonWinter: {
		opening: "Winter gardening moves indoors and onto paper. Houseplants keep the green alive while next year's garden takes shape in notebooks.",
		tasks: []string{
			"Check houseplants weekly and cut watering back by half",
			"Order seed catalogs and sketch next season's beds",
			"Prune dormant fruit trees on mild days",
			"Refill feeders and keep a water source open for birds",
		},
		products: "Our greenhouse is warm, the houseplant tables are full, and seed racks for next season arrive weekly.",
		closing:  "The best spring gardens are planned in winter. Come in out of the cold and start dreaming with us.",
		media: []string{
			"A bright greenhouse bench of tropical houseplants",
			"Seed catalogs and a hand-drawn garden plan on a table",
			"Frost patterns on evergreen branches",
			"A chickadee at a snow-capped bird feeder",
		},
	},
}

// Fallback is the fully local, deterministic strategy. It never touches
// the network and never fails.
type Fallback struct{}

// NewFallback creates the local template strategy.
func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Name() string { return "fallback" }

// Generate renders the seasonal narrative template for the request. The
// error return exists only to satisfy the Generator interface; it is
// always nil.
func (f *Fallback) Generate(_ context.Context, req Request) (*Result, error) {
	tpl, ok := seasonTemplates[req.Season]
	if !ok {
		// Unknown season labels still have to yield usable copy.
		tpl = seasonTemplates[calendar.SeasonSpring]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", req.Title)
	fmt.Fprintf(&b, "<p>%s</p>\n", tpl.opening)
	if req.HolidayContext != "" {
		fmt.Fprintf(&b, "<p>This week we're celebrating %s.</p>\n", req.HolidayContext)
	}
	b.WriteString("<h3>This Week's Garden Tasks</h3>\n<ul>\n")
	for _, task := range tpl.tasks {
		fmt.Fprintf(&b, "<li>%s</li>\n", task)
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", tpl.products)
	if len(req.Products) > 0 {
		fmt.Fprintf(&b, "<p>Ask about %s while supplies last.</p>\n", strings.Join(req.Products, ", "))
	}
	fmt.Fprintf(&b, "<p>%s</p>\n", tpl.closing)

	summary := fmt.Sprintf("%s: %s gardening tasks, tips, and what's in stock this week.", req.Title, req.Season)

	media := make([]string, len(tpl.media))
	copy(media, tpl.media)

	return &Result{
		Body:             b.String(),
		Summary:          Truncate(summary, maxSummaryLen),
		MediaSuggestions: media,
		QualityScore:     fallbackQualityScore,
		Source:           models.SourceFallback,
	}, nil
}
