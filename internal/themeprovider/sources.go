// internal/themeprovider/sources.go
package themeprovider

import (
	"context"
	"time"

	"github.com/codr1/qlick/internal/models"
)

const storeQueryTimeout = 5 * time.Second

// StoreSource resolves the active theme straight from the schedule store
// using the calendar day in Location.
type StoreSource struct {
	Queries  models.ThemeScheduleQueries
	Now      func() time.Time
	Location *time.Location
}

func NewStoreSource(queries models.ThemeScheduleQueries, loc *time.Location) *StoreSource {
	return &StoreSource{Queries: queries, Now: time.Now, Location: loc}
}

func (s *StoreSource) ActiveThemeName(ctx context.Context) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	ctx, cancel := context.WithTimeout(ctx, storeQueryTimeout)
	defer cancel()

	return models.ActiveThemeName(ctx, s.Queries, models.Today(now(), s.Location))
}
