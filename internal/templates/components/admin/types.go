package admin

import (
	"github.com/codr1/qlick/internal/models"
)

type PageData struct {
	ThemeNames []string
	// ActiveTheme is the catalog theme in effect today. ScheduledName is the
	// raw name of the winning schedule and differs only when that name is not
	// in the catalog.
	ActiveTheme   string
	ScheduledName string
	Schedules     []Schedule
}

type Schedule struct {
	models.ThemeSchedule
	IsActive bool
}

// NewSchedules flags the one row that decides today's theme.
func NewSchedules(rows []models.ThemeSchedule, today string) []Schedule {
	winner, found := models.ResolveActiveSchedule(today, rows)
	schedules := make([]Schedule, len(rows))
	for i, row := range rows {
		schedules[i] = Schedule{
			ThemeSchedule: row,
			IsActive:      found && row.ID == winner.ID,
		}
	}
	return schedules
}
