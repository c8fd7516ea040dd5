package layouts

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/presentation"
)

const baseStyles = `body{margin:0;font-family:system-ui,sans-serif;background:var(--theme-background);color:var(--theme-text)}` +
	`.card{background:var(--theme-card-bg);border:1px solid var(--theme-border);border-radius:12px}` +
	`.btn-primary{background:var(--theme-primary);color:var(--theme-on-primary);border:0;border-radius:8px;padding:8px 16px}` +
	`.btn-primary:hover{background:var(--theme-primary-dark)}` +
	`.chip{border:1px solid var(--theme-border);border-radius:999px;padding:4px 12px;color:var(--theme-subtext);text-decoration:none}` +
	`.chip-active{background:var(--theme-secondary);color:var(--theme-primary);border-color:var(--theme-primary)}` +
	`.subtext{color:var(--theme-subtext)}.accent{color:var(--theme-accent)}` +
	`.feedback-success{color:var(--theme-primary)}.feedback-error{color:#EF4444}`

// Base wraps content in the page shell with the theme's CSS variables. A nil
// theme renders with the zero palette.
func Base(content templ.Component, theme *models.ThemeConfig, title string) templ.Component {
	if theme == nil {
		theme = &models.ThemeConfig{Name: models.DefaultThemeName}
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		colorScheme := "light"
		if theme.IsDark {
			colorScheme = "dark"
		}
		head := fmt.Sprintf(
			`<!DOCTYPE html><html lang="en" data-theme="%s" data-status-bar="%s"><head><meta charset="utf-8"/>`+
				`<meta name="viewport" content="width=device-width, initial-scale=1"/>`+
				`<meta name="color-scheme" content="%s"/><meta name="theme-color" content="%s"/>`+
				`<title>%s</title><script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
				`<style>%s%s</style></head><body>`,
			html.EscapeString(theme.Name),
			presentation.StatusBar(theme),
			colorScheme,
			html.EscapeString(theme.Background),
			html.EscapeString(title),
			getThemeCssVars(theme),
			baseStyles,
		)
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
