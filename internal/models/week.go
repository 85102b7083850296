// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// WeekStatus represents the state of a weekly generation run.
type WeekStatus string

const (
	WeekStatusGenerated WeekStatus = "generated"
	WeekStatusArchived  WeekStatus = "archived"
)

// Holiday is one matched calendar entry active within a week.
type Holiday struct {
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Focus string    `json:"focus"`
	Theme string    `json:"theme"`
}

// WeeklyPackage is the metadata record for one generated week. Its ID is a
// pure function of the week's start date, so regenerating a week overwrites
// the existing row instead of duplicating it.
type WeeklyPackage struct {
	WeekID    string     `json:"week_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Season    string     `json:"season"`
	Holidays  []Holiday  `json:"holidays"`
	Theme     string     `json:"theme"`
	Status    WeekStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
