// internal/models/themes.go
package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultThemeName is the catalog key used whenever no schedule is active or a
// scheduled name cannot be resolved.
const DefaultThemeName = "Default"

// Text on large UI surfaces only needs the AA large-text threshold.
const wcagAAMinContrastRatio = 3.0
const wcagAAContrastNote = "WCAG AA for large text/UI components"
const maxThemeNameLength = 100
const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var themeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ()-]*$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// ThemeConfig is the visual configuration of one catalog theme. Instances are
// owned by a Catalog and must be treated as read-only.
type ThemeConfig struct {
	Name        string   `json:"name"`
	Primary     string   `json:"primary"`
	PrimaryDark string   `json:"primaryDark"`
	Secondary   string   `json:"secondary"`
	Background  string   `json:"background"`
	CardBg      string   `json:"cardBg"`
	Text        string   `json:"text"`
	Subtext     string   `json:"subtext"`
	Accent      string   `json:"accent"`
	Border      string   `json:"border"`
	IsDark      bool     `json:"isDark"`
	BannerImage string   `json:"bannerImage,omitempty"`
	Banners     []string `json:"banners,omitempty"`
	Sticker     string   `json:"sticker,omitempty"`
}

// HasBanners reports whether the theme replaces the default carousel.
func (t ThemeConfig) HasBanners() bool {
	return len(t.Banners) > 0
}

func (t ThemeConfig) Validate() error {
	trimmedName := strings.TrimSpace(t.Name)
	if trimmedName == "" {
		return fmt.Errorf("name is required")
	}
	if trimmedName != t.Name {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}
	if len(trimmedName) > maxThemeNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxThemeNameLength)
	}
	if !themeNameRegex.MatchString(trimmedName) {
		return fmt.Errorf("name may only contain letters, numbers, spaces, hyphens, and parentheses")
	}

	colorFields := []struct {
		name  string
		value string
	}{
		{"primary", t.Primary},
		{"primary_dark", t.PrimaryDark},
		{"secondary", t.Secondary},
		{"background", t.Background},
		{"card_bg", t.CardBg},
		{"text", t.Text},
		{"subtext", t.Subtext},
		{"accent", t.Accent},
		{"border", t.Border},
	}
	for _, field := range colorFields {
		if !hexColorRegex.MatchString(field.value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", field.name)
		}
	}

	if err := validatePairContrast("text", t.Text, "background", t.Background); err != nil {
		return err
	}
	if err := validatePairContrast("text", t.Text, "card_bg", t.CardBg); err != nil {
		return err
	}

	lightText, err := prefersLightText(t.Background)
	if err != nil {
		return err
	}
	if lightText != t.IsDark {
		if t.IsDark {
			return fmt.Errorf("is_dark is set but background %s reads as a light surface", t.Background)
		}
		return fmt.Errorf("is_dark is not set but background %s reads as a dark surface", t.Background)
	}

	for i, banner := range t.Banners {
		if strings.TrimSpace(banner) == "" {
			return fmt.Errorf("banners[%d] must not be empty", i)
		}
	}
	return nil
}

func validatePairContrast(fgName, fg, bgName, bg string) error {
	ratio, err := contrastRatio(fg, bg)
	if err != nil {
		return err
	}
	if ratio < wcagAAMinContrastRatio {
		return fmt.Errorf(
			"%s must have contrast ratio >= %.1f against %s (%s); got %.2f",
			fgName,
			wcagAAMinContrastRatio,
			bgName,
			wcagAAContrastNote,
			ratio,
		)
	}
	return nil
}

// prefersLightText reports whether white text reads better than black text
// on the given background.
func prefersLightText(backgroundColor string) (bool, error) {
	withLight, err := contrastRatio(lightTextColor, backgroundColor)
	if err != nil {
		return false, err
	}
	withDark, err := contrastRatio(darkTextColor, backgroundColor)
	if err != nil {
		return false, err
	}
	return withLight > withDark, nil
}

func contrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func relativeLuminance(hexColor string) (float64, error) {
	r, g, b, err := parseHexColor(hexColor)
	if err != nil {
		return 0, err
	}

	rl := srgbToLinear(r)
	gl := srgbToLinear(g)
	bl := srgbToLinear(b)

	return 0.2126*rl + 0.7152*gl + 0.0722*bl, nil
}

func parseHexColor(hexColor string) (float64, float64, float64, error) {
	if !hexColorRegex.MatchString(hexColor) {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	hex := strings.TrimPrefix(hexColor, "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	r := float64((value >> 16) & 0xFF)
	g := float64((value >> 8) & 0xFF)
	b := float64(value & 0xFF)

	return r / 255, g / 255, b / 255, nil
}

func srgbToLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}
