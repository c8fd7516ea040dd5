package admin

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sections := []string{
			`<main class="admin" style="max-width:720px;margin:0 auto;padding:16px">`,
			`<header style="display:flex;justify-content:space-between;align-items:center"><h1>Admin Panel</h1><a class="chip" href="/">Storefront</a></header>`,
			activeThemeHTML(data),
			addFoodFormHTML(),
			scheduleThemeFormHTML(data.ThemeNames),
			`<section class="card" style="padding:16px;margin-top:16px"><h2>Scheduled themes</h2>`,
			`<div id="theme-schedules" hx-get="/api/v1/theme-schedules" hx-trigger="refreshThemeSchedules from:body" hx-swap="innerHTML">`,
			BuildSchedulesListHTML(data.Schedules),
			`</div></section></main>`,
		}
		for _, section := range sections {
			if _, err := io.WriteString(w, section); err != nil {
				return err
			}
		}
		return nil
	})
}

func activeThemeHTML(data PageData) string {
	note := ""
	if data.ScheduledName != "" && data.ScheduledName != data.ActiveTheme {
		note = fmt.Sprintf(` <span id="unknown-theme" class="feedback-error">(scheduled &quot;%s&quot; is not in the catalog)</span>`,
			html.EscapeString(data.ScheduledName))
	}
	return fmt.Sprintf(`<p class="subtext">Active theme today: <strong id="active-theme">%s</strong>%s</p>`,
		html.EscapeString(data.ActiveTheme), note)
}

func SchedulesList(schedules []Schedule) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, BuildSchedulesListHTML(schedules))
		return err
	})
}

func addFoodFormHTML() string {
	return `<section class="card" style="padding:16px;margin-top:16px"><h2>Add menu item</h2>` +
		`<div id="add-food-feedback"></div>` +
		`<form hx-post="/add-food" hx-target="#add-food-feedback" hx-swap="innerHTML">` +
		`<label>Name <input type="text" name="name" required/></label> ` +
		`<label>Price <input type="number" name="price" min="0" step="0.01" required/></label> ` +
		`<label>Image URL <input type="url" name="image" required/></label> ` +
		`<button type="submit" class="btn-primary">Add Food</button></form></section>`
}

func scheduleThemeFormHTML(themeNames []string) string {
	var builder strings.Builder
	builder.WriteString(`<section class="card" style="padding:16px;margin-top:16px"><h2>Schedule a theme</h2>`)
	builder.WriteString(`<div id="schedule-theme-feedback"></div>`)
	builder.WriteString(`<form hx-post="/schedule-theme" hx-target="#schedule-theme-feedback" hx-swap="innerHTML">`)
	builder.WriteString(`<label>Theme <select name="themeName">`)
	for _, name := range themeNames {
		escaped := html.EscapeString(name)
		builder.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`, escaped, escaped))
	}
	builder.WriteString(`</select></label> `)
	builder.WriteString(`<label>Start <input type="date" name="startDate" required/></label> `)
	builder.WriteString(`<label>End <input type="date" name="endDate" required/></label> `)
	builder.WriteString(`<button type="submit" class="btn-primary">Schedule</button></form></section>`)
	return builder.String()
}

func BuildSchedulesListHTML(schedules []Schedule) string {
	if len(schedules) == 0 {
		return `<div class="subtext">No themes scheduled.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<table style="width:100%"><thead><tr><th>Theme</th><th>Start</th><th>End</th><th>Created</th><th></th></tr></thead><tbody>`)
	for _, schedule := range schedules {
		status := ""
		if schedule.IsActive {
			status = `<span class="accent">Active</span>`
		}
		builder.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%s</td><td>%s</td><td class="subtext">%s</td><td>%s</td></tr>`,
			html.EscapeString(schedule.ThemeName),
			html.EscapeString(schedule.StartDate),
			html.EscapeString(schedule.EndDate),
			schedule.CreatedAt.UTC().Format("2006-01-02 15:04"),
			status,
		))
	}
	builder.WriteString(`</tbody></table>`)
	return builder.String()
}
