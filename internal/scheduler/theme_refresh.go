package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/metrics"
	"github.com/codr1/qlick/internal/models"
)

const (
	ThemeRefreshJobName = "theme_refresh"
	themeRefreshTimeout = 10 * time.Second
)

// ThemeRefresher is satisfied by *themeprovider.Provider.
type ThemeRefresher interface {
	Refresh(ctx context.Context) *models.ThemeConfig
}

// RefreshTheme re-resolves the active theme and records it in metrics.
func RefreshTheme(ctx context.Context, refresher ThemeRefresher) *models.ThemeConfig {
	ctx, cancel := context.WithTimeout(ctx, themeRefreshTimeout)
	defer cancel()

	theme := refresher.Refresh(ctx)
	metrics.RecordActiveTheme(theme.Name)
	log.Ctx(ctx).Info().Str("theme", theme.Name).Msg("Active theme refreshed")
	return theme
}

// RegisterThemeRefresh schedules RefreshTheme so a theme whose date range
// begins overnight becomes active without a request triggering it.
func (s *Service) RegisterThemeRefresh(cronExpr string, refresher ThemeRefresher) (gocron.Job, error) {
	return s.AddJob(ThemeRefreshJobName, cronExpr, func() {
		ctx := log.Logger.With().Str("job_name", ThemeRefreshJobName).Logger().WithContext(context.Background())
		RefreshTheme(ctx, refresher)
	})
}
