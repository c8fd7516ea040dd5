// internal/models/catalog.go
package models

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/codr1/qlick/assets"
)

type catalogPalette struct {
	Primary     string `yaml:"primary"`
	PrimaryDark string `yaml:"primary_dark"`
	Secondary   string `yaml:"secondary"`
	Background  string `yaml:"background"`
	CardBg      string `yaml:"card_bg"`
	Text        string `yaml:"text"`
	Subtext     string `yaml:"subtext"`
	Accent      string `yaml:"accent"`
	Border      string `yaml:"border"`
}

type catalogEntry struct {
	Name        string         `yaml:"name"`
	Default     bool           `yaml:"default"`
	IsDark      bool           `yaml:"is_dark"`
	Palette     catalogPalette `yaml:"palette"`
	BannerImage string         `yaml:"banner_image"`
	Banners     []string       `yaml:"banners"`
	Sticker     string         `yaml:"sticker"`
}

// Catalog is the static name -> ThemeConfig mapping. It is immutable once
// built and safe for concurrent use.
type Catalog struct {
	themes      map[string]*ThemeConfig
	order       []string
	defaultName string
}

// LoadCatalog parses the embedded assets/themes.yaml.
func LoadCatalog() (*Catalog, error) {
	file, err := assets.ThemesFS.Open(assets.ThemesPath)
	if err != nil {
		return nil, fmt.Errorf("open embedded themes file: %w", err)
	}
	defer file.Close()

	return ParseCatalog(file)
}

// ParseCatalog reads a YAML theme list. Exactly one entry must be marked
// default and its name must be DefaultThemeName.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var entries []catalogEntry
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse themes file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("themes file defines no themes")
	}

	catalog := &Catalog{
		themes: make(map[string]*ThemeConfig, len(entries)),
		order:  make([]string, 0, len(entries)),
	}
	for i, entry := range entries {
		theme := entry.config()
		if err := theme.Validate(); err != nil {
			return nil, fmt.Errorf("invalid theme %q (entry %d): %w", entry.Name, i+1, err)
		}
		if _, exists := catalog.themes[theme.Name]; exists {
			return nil, fmt.Errorf("duplicate theme %q", theme.Name)
		}
		if entry.Default {
			if catalog.defaultName != "" {
				return nil, fmt.Errorf("multiple default themes: %q and %q", catalog.defaultName, theme.Name)
			}
			catalog.defaultName = theme.Name
		}
		catalog.themes[theme.Name] = theme
		catalog.order = append(catalog.order, theme.Name)
	}

	if catalog.defaultName == "" {
		return nil, fmt.Errorf("themes file has no default theme")
	}
	if catalog.defaultName != DefaultThemeName {
		return nil, fmt.Errorf("default theme must be named %q, got %q", DefaultThemeName, catalog.defaultName)
	}
	return catalog, nil
}

func (e catalogEntry) config() *ThemeConfig {
	var banners []string
	if len(e.Banners) > 0 {
		banners = append([]string(nil), e.Banners...)
	}
	return &ThemeConfig{
		Name:        e.Name,
		Primary:     e.Palette.Primary,
		PrimaryDark: e.Palette.PrimaryDark,
		Secondary:   e.Palette.Secondary,
		Background:  e.Palette.Background,
		CardBg:      e.Palette.CardBg,
		Text:        e.Palette.Text,
		Subtext:     e.Palette.Subtext,
		Accent:      e.Palette.Accent,
		Border:      e.Palette.Border,
		IsDark:      e.IsDark,
		BannerImage: e.BannerImage,
		Banners:     banners,
		Sticker:     e.Sticker,
	}
}

// Default returns the fallback theme.
func (c *Catalog) Default() *ThemeConfig {
	return c.themes[c.defaultName]
}

// Lookup returns the named theme and whether it exists.
func (c *Catalog) Lookup(name string) (*ThemeConfig, bool) {
	theme, ok := c.themes[name]
	return theme, ok
}

// Get never returns nil: unknown names resolve to the default theme.
func (c *Catalog) Get(name string) *ThemeConfig {
	if theme, ok := c.themes[name]; ok {
		return theme
	}
	return c.Default()
}

// Names returns theme names in file order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// SortedNames returns theme names alphabetically with the default first.
func (c *Catalog) SortedNames() []string {
	names := c.Names()
	sort.SliceStable(names, func(i, j int) bool {
		if names[i] == c.defaultName {
			return true
		}
		if names[j] == c.defaultName {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
