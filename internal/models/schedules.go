// internal/models/schedules.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire and storage format.
const DateLayout = "2006-01-02"

// ThemeSchedule is an admin-scheduled date range for a theme. Ranges are
// inclusive on both ends; overlapping schedules are allowed.
type ThemeSchedule struct {
	ID        int64     `json:"id"`
	ThemeName string    `json:"themeName"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC so
// dates compare independently of any location.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}
	return parsed, nil
}

// FormatDate returns the calendar date of t as seen in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc. A nil loc means the server's
// local zone.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return FormatDate(now.In(loc))
}

// Contains reports whether the schedule's inclusive range covers day
// (YYYY-MM-DD). Schedules with unparseable bounds never match.
func (s ThemeSchedule) Contains(day string) bool {
	start, err := ParseDate(s.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(s.EndDate)
	if err != nil {
		return false
	}
	d, err := ParseDate(day)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// newerThan orders schedules for conflict resolution: the most recently
// created schedule wins, and ID breaks ties between identical timestamps.
func (s ThemeSchedule) newerThan(other ThemeSchedule) bool {
	if !s.CreatedAt.Equal(other.CreatedAt) {
		return s.CreatedAt.After(other.CreatedAt)
	}
	return s.ID > other.ID
}

// ResolveActiveSchedule returns the schedule that decides the theme for day.
// When several ranges contain day the last-scheduled one wins, regardless of
// input order. ok is false when no schedule contains day.
func ResolveActiveSchedule(day string, schedules []ThemeSchedule) (winner ThemeSchedule, ok bool) {
	for _, candidate := range schedules {
		if !candidate.Contains(day) {
			continue
		}
		if !ok || candidate.newerThan(winner) {
			winner, ok = candidate, true
		}
	}
	return winner, ok
}

// ResolveActiveTheme picks the theme name for day among schedules. It returns
// DefaultThemeName when nothing matches or the winning row has no usable name.
func ResolveActiveTheme(day string, schedules []ThemeSchedule) string {
	winner, ok := ResolveActiveSchedule(day, schedules)
	if !ok {
		return DefaultThemeName
	}
	name := strings.TrimSpace(winner.ThemeName)
	if name == "" {
		return DefaultThemeName
	}
	return name
}

// ResolveActiveThemeAt is ResolveActiveTheme for the calendar date of now in
// loc.
func ResolveActiveThemeAt(now time.Time, loc *time.Location, schedules []ThemeSchedule) string {
	return ResolveActiveTheme(Today(now, loc), schedules)
}
