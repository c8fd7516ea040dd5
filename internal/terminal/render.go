// Package terminal renders the storefront for a text terminal with the same
// theme rules the HTML pages use.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/presentation"
)

// Renderer formats storefront views for one theme.
type Renderer struct {
	theme *models.ThemeConfig
	lg    *lipgloss.Renderer

	title   lipgloss.Style
	body    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	badge   lipgloss.Style
	card    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// New builds a renderer. A nil lipgloss renderer uses the default stdout one.
func New(lg *lipgloss.Renderer, theme *models.ThemeConfig) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	if theme == nil {
		theme = &models.ThemeConfig{Name: models.DefaultThemeName}
	}
	return &Renderer{
		theme: theme,
		lg:    lg,
		title: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),
		body:   lg.NewStyle().Foreground(lipgloss.Color(theme.Text)),
		muted:  lg.NewStyle().Foreground(lipgloss.Color(theme.Subtext)),
		accent: lg.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		badge: lg.NewStyle().
			Foreground(lipgloss.Color(presentation.OnPrimary(theme))).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 1),
		card: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		success: lg.NewStyle().Foreground(lipgloss.Color(theme.Primary)),
		failure: lg.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

func (r *Renderer) Theme() *models.ThemeConfig {
	return r.theme
}

// Label colors text the way restaurant names are colored on the page: the
// tricolor split for the Independence theme, the body color otherwise.
func (r *Renderer) Label(text string) string {
	var builder strings.Builder
	for _, segment := range presentation.TextSegments(r.theme, text) {
		style := r.body
		if segment.Color != "" {
			style = r.lg.NewStyle().Foreground(lipgloss.Color(segment.Color))
		}
		builder.WriteString(style.Render(segment.Text))
	}
	return builder.String()
}

// ThemeSummary describes the active theme: name, status bar, sticker and
// banners.
func (r *Renderer) ThemeSummary() string {
	lines := []string{
		r.badge.Render(r.theme.Name),
		r.muted.Render("status bar: " + string(presentation.StatusBar(r.theme))),
	}
	if sticker, ok := presentation.Sticker(r.theme); ok {
		lines = append(lines, r.muted.Render("sticker: ")+r.accent.Render(sticker))
	}
	for i, banner := range presentation.Banners(r.theme) {
		lines = append(lines, r.muted.Render(fmt.Sprintf("banner %d: %s", i+1, banner)))
	}
	return strings.Join(lines, "\n")
}

// Menu renders listings as bordered cards in display order.
func (r *Renderer) Menu(listings []menu.Listing, filter menu.Filter, order menu.Sort) string {
	header := r.title.Render("All restaurants")
	if filter != menu.FilterNone {
		header += " " + r.muted.Render("filter: "+string(filter))
	}
	if order != menu.SortRelevance {
		header += " " + r.muted.Render("sort: "+order.Label())
	}

	if len(listings) == 0 {
		return header + "\n" + r.muted.Render("No dishes match right now.")
	}

	cards := make([]string, 0, len(listings))
	for _, listing := range listings {
		cards = append(cards, r.listingCard(listing))
	}
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (r *Renderer) listingCard(listing menu.Listing) string {
	details := r.muted.Render(fmt.Sprintf(
		"#%d  %s  %d mins  %.1f★  %d orders",
		listing.ID,
		presentation.FormatPrice(listing.Price),
		listing.Distance,
		listing.Rating,
		listing.OrderCount,
	))
	lines := []string{r.Label(presentation.RestaurantName(listing.Name)), details}
	if listing.Discount > 0 {
		lines = append(lines, r.accent.Render(fmt.Sprintf("%d%% OFF", listing.Discount)))
	}
	return r.card.Render(strings.Join(lines, "\n"))
}

// Feedback renders a one-line result message.
func (r *Renderer) Feedback(message string, ok bool) string {
	if ok {
		return r.success.Render(message)
	}
	return r.failure.Render(message)
}
