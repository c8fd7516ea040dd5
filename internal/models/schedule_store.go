// internal/models/schedule_store.go
package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dbgen "github.com/codr1/qlick/internal/db/generated"
)

// ErrPersistence marks failures of the underlying storage: unreachable
// database, rejected writes, or failed reads.
var ErrPersistence = errors.New("persistence failure")

type ThemeScheduleQueries interface {
	CreateThemeSchedule(ctx context.Context, arg dbgen.CreateThemeScheduleParams) (dbgen.ThemeSchedule, error)
	ListThemeSchedules(ctx context.Context) ([]dbgen.ThemeSchedule, error)
	ListThemeSchedulesActiveOn(ctx context.Context, day string) ([]dbgen.ThemeSchedule, error)
}

type CreateThemeScheduleParams struct {
	ThemeName string
	StartDate string
	EndDate   string
	CreatedAt time.Time
}

// CreateThemeSchedule persists a schedule. Dates must be YYYY-MM-DD; the theme
// name is not checked against the catalog and start/end order is not
// enforced. A zero CreatedAt is replaced with the current time.
func CreateThemeSchedule(ctx context.Context, q ThemeScheduleQueries, params CreateThemeScheduleParams) (ThemeSchedule, error) {
	start, err := ParseDate(params.StartDate)
	if err != nil {
		return ThemeSchedule{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := ParseDate(params.EndDate)
	if err != nil {
		return ThemeSchedule{}, fmt.Errorf("endDate: %w", err)
	}
	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row, err := q.CreateThemeSchedule(ctx, dbgen.CreateThemeScheduleParams{
		ThemeName: strings.TrimSpace(params.ThemeName),
		StartDate: FormatDate(start),
		EndDate:   FormatDate(end),
		CreatedAt: createdAt.UTC(),
	})
	if err != nil {
		return ThemeSchedule{}, fmt.Errorf("create theme schedule: %w: %w", ErrPersistence, err)
	}
	return ThemeScheduleFromDB(row), nil
}

func ListThemeSchedules(ctx context.Context, q ThemeScheduleQueries) ([]ThemeSchedule, error) {
	rows, err := q.ListThemeSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list theme schedules: %w: %w", ErrPersistence, err)
	}
	return themeSchedulesFromDB(rows), nil
}

// ActiveThemeName returns the theme scheduled for day, or DefaultThemeName
// when no schedule covers it.
func ActiveThemeName(ctx context.Context, q ThemeScheduleQueries, day string) (string, error) {
	rows, err := q.ListThemeSchedulesActiveOn(ctx, day)
	if err != nil {
		return "", fmt.Errorf("list active theme schedules: %w: %w", ErrPersistence, err)
	}
	return ResolveActiveTheme(day, themeSchedulesFromDB(rows)), nil
}

func themeSchedulesFromDB(rows []dbgen.ThemeSchedule) []ThemeSchedule {
	results := make([]ThemeSchedule, 0, len(rows))
	for _, row := range rows {
		results = append(results, ThemeScheduleFromDB(row))
	}
	return results
}

func ThemeScheduleFromDB(row dbgen.ThemeSchedule) ThemeSchedule {
	return ThemeSchedule{
		ID:        row.ID,
		ThemeName: row.ThemeName,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
	}
}
