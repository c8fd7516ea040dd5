// internal/api/themes/handlers.go
package themes

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/api/apiutil"
	"github.com/codr1/qlick/internal/api/htmx"
	"github.com/codr1/qlick/internal/metrics"
	"github.com/codr1/qlick/internal/models"
	admintempl "github.com/codr1/qlick/internal/templates/components/admin"
	"github.com/codr1/qlick/internal/templates/layouts"
	"github.com/codr1/qlick/internal/themeprovider"
)

const themeQueryTimeout = 5 * time.Second

var (
	queries     models.ThemeScheduleQueries
	catalog     *models.Catalog
	provider    *themeprovider.Provider
	location    *time.Location
	now         = time.Now
	handlerOnce sync.Once
)

type scheduleThemeRequest struct {
	ThemeName string `json:"themeName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type currentThemeResponse struct {
	Theme string `json:"theme"`
}

type catalogResponse struct {
	Themes []*models.ThemeConfig `json:"themes"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q models.ThemeScheduleQueries, c *models.Catalog, p *themeprovider.Provider, loc *time.Location) {
	if q == nil || c == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = q
		catalog = c
		provider = p
		location = loc
	})
}

// POST /schedule-theme
func HandleScheduleTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	req, err := decodeScheduleThemeRequest(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	created, err := models.CreateThemeSchedule(ctx, q, models.CreateThemeScheduleParams{
		ThemeName: req.ThemeName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: now(),
	})
	if err != nil {
		if errors.Is(err, models.ErrPersistence) {
			logger.Error().Err(err).Str("theme", req.ThemeName).Msg("Failed to create theme schedule")
			writeError(w, r, http.StatusInternalServerError, "Failed to schedule theme")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	metrics.ThemeSchedulesCreatedTotal.WithLabelValues(themeLabel(created.ThemeName)).Inc()
	logger.Info().
		Int64("schedule_id", created.ID).
		Str("theme", created.ThemeName).
		Str("start_date", created.StartDate).
		Str("end_date", created.EndDate).
		Msg("Theme scheduled")

	if p := provider; p != nil {
		metrics.RecordActiveTheme(p.Refresh(r.Context()).Name)
	}

	if htmx.IsRequest(r) {
		w.Header().Set("HX-Trigger", "refreshThemeSchedules")
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, "Theme Scheduled!")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, created); err != nil {
		logger.Error().Err(err).Int64("schedule_id", created.ID).Msg("Failed to write theme schedule response")
	}
}

// GET /current-theme
func HandleCurrentTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	day := models.Today(now(), location)
	name, err := models.ActiveThemeName(ctx, q, day)
	if err != nil {
		logger.Error().Err(err).Str("day", day).Msg("Failed to resolve current theme")
		http.Error(w, "Failed to load current theme", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, currentThemeResponse{Theme: name}); err != nil {
		logger.Error().Err(err).Msg("Failed to write current theme response")
	}
}

// GET /api/v1/themes
func HandleThemesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := catalog
	if c == nil {
		logger.Error().Msg("Theme catalog not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	names := c.SortedNames()
	themes := make([]*models.ThemeConfig, 0, len(names))
	for _, name := range names {
		themes = append(themes, c.Get(name))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, catalogResponse{Themes: themes}); err != nil {
		logger.Error().Err(err).Msg("Failed to write themes list response")
	}
}

// GET /api/v1/theme-schedules
func HandleSchedulesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	schedules, err := models.ListThemeSchedules(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list theme schedules")
		http.Error(w, "Failed to load theme schedules", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		day := models.Today(now(), location)
		component := admintempl.SchedulesList(admintempl.NewSchedules(schedules, day))
		apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render theme schedules", "Failed to render list")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"schedules": schedules}); err != nil {
		logger.Error().Err(err).Msg("Failed to write theme schedules response")
	}
}

// GET /admin
func HandleAdminPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil || catalog == nil {
		logger.Error().Msg("Theme handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	schedules, err := models.ListThemeSchedules(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list theme schedules")
		http.Error(w, "Failed to load theme schedules", http.StatusInternalServerError)
		return
	}

	day := models.Today(now(), location)
	active := models.ResolveActiveTheme(day, schedules)
	data := admintempl.PageData{
		ThemeNames:    catalog.Names(),
		ActiveTheme:   catalog.Get(active).Name,
		ScheduledName: active,
		Schedules:     admintempl.NewSchedules(schedules, day),
	}

	theme := catalog.Get(active)
	if provider != nil {
		theme = provider.Ready(r.Context())
	}
	page := layouts.Base(admintempl.AdminPage(data), theme, "Qlick Admin")
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render admin page", "Failed to render page")
}

func decodeScheduleThemeRequest(r *http.Request) (scheduleThemeRequest, error) {
	if apiutil.IsJSONRequest(r) {
		var req scheduleThemeRequest
		return req, apiutil.DecodeJSON(r, &req)
	}

	if err := r.ParseForm(); err != nil {
		return scheduleThemeRequest{}, err
	}

	return scheduleThemeRequest{
		ThemeName: apiutil.FirstNonEmpty(r.FormValue("themeName"), r.FormValue("theme_name")),
		StartDate: apiutil.FirstNonEmpty(r.FormValue("startDate"), r.FormValue("start_date")),
		EndDate:   apiutil.FirstNonEmpty(r.FormValue("endDate"), r.FormValue("end_date")),
	}, nil
}

// themeLabel maps a scheduled name onto the bounded set of catalog names.
func themeLabel(name string) string {
	if c := catalog; c != nil {
		if theme, ok := c.Lookup(name); ok {
			return theme.Name
		}
	}
	return metrics.UnknownThemeLabel
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, status, message)
		return
	}
	http.Error(w, message, status)
}

func loadQueries() models.ThemeScheduleQueries {
	return queries
}
