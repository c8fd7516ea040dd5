package layouts

import (
	"fmt"
	"strings"

	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/presentation"
)

func getThemeCssVars(theme *models.ThemeConfig) string {
	vars := []struct {
		name  string
		value string
	}{
		{"primary", theme.Primary},
		{"primary-dark", theme.PrimaryDark},
		{"secondary", theme.Secondary},
		{"background", theme.Background},
		{"card-bg", theme.CardBg},
		{"text", theme.Text},
		{"subtext", theme.Subtext},
		{"accent", theme.Accent},
		{"border", theme.Border},
		{"on-primary", presentation.OnPrimary(theme)},
	}

	var builder strings.Builder
	builder.WriteString(":root{")
	for _, v := range vars {
		builder.WriteString(fmt.Sprintf("--theme-%s:%s;", v.name, themeColorOrDefault(v.value, "#000000")))
	}
	builder.WriteString("}")
	return builder.String()
}

func themeColorOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	if !models.IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}
