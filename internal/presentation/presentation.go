// internal/presentation/presentation.go
package presentation

import (
	"fmt"
	"math"

	"github.com/codr1/qlick/internal/models"
)

// DefaultBanners is the carousel shown when a theme brings no banners of its
// own.
var DefaultBanners = []string{
	"https://img.freepik.com/free-psd/food-menu-restaurant-web-banner-template_106176-1454.jpg",
	"https://img.freepik.com/free-psd/delicous-asian-food-web-banner-template_120329-1153.jpg",
	"https://img.freepik.com/free-psd/delicious-burger-food-menu-web-banner-template_106176-1150.jpg",
}

type Category struct {
	ID    string
	Name  string
	Image string
}

var Categories = []Category{
	{ID: "1", Name: "Healthy", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500&q=80"},
	{ID: "2", Name: "Pizza", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&q=80"},
	{ID: "3", Name: "Burger", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&q=80"},
	{ID: "4", Name: "Biryani", Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=500&q=80"},
	{ID: "5", Name: "Cake", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&q=80"},
	{ID: "6", Name: "Chicken", Image: "https://images.unsplash.com/photo-1615557960916-5f4791effe9d?w=500&q=80"},
	{ID: "7", Name: "Rolls", Image: "https://images.unsplash.com/photo-1679310290259-78d9eaa32700?w=600&auto=format&fit=crop&q=60"},
	{ID: "8", Name: "Thali", Image: "https://images.unsplash.com/photo-1680993032090-1ef7ea9b51e5?q=80&w=1074&auto=format&fit=crop"},
}

// Banners returns the carousel images for cfg. A theme's own banner list
// replaces the defaults outright; a single banner image is put in front of
// them.
func Banners(cfg *models.ThemeConfig) []string {
	if cfg != nil && cfg.Banners != nil {
		return append([]string(nil), cfg.Banners...)
	}
	if cfg != nil && cfg.BannerImage != "" {
		banners := make([]string, 0, len(DefaultBanners)+1)
		banners = append(banners, cfg.BannerImage)
		return append(banners, DefaultBanners...)
	}
	return append([]string(nil), DefaultBanners...)
}

// Sticker returns the badge to draw on category icons, if any.
func Sticker(cfg *models.ThemeConfig) (string, bool) {
	if cfg == nil || cfg.Sticker == "" {
		return "", false
	}
	return cfg.Sticker, true
}

type StatusBarStyle string

const (
	StatusBarLight StatusBarStyle = "light-content"
	StatusBarDark  StatusBarStyle = "dark-content"
)

// StatusBar picks light glyphs for dark themes and dark glyphs otherwise.
func StatusBar(cfg *models.ThemeConfig) StatusBarStyle {
	if cfg != nil && cfg.IsDark {
		return StatusBarLight
	}
	return StatusBarDark
}

// OnPrimary is the text color used on top of the primary color.
func OnPrimary(cfg *models.ThemeConfig) string {
	if cfg != nil && cfg.IsDark {
		return cfg.Text
	}
	return "#FFFFFF"
}

// RestaurantName is the label shown on restaurant cards.
func RestaurantName(foodName string) string {
	return foodName + " Palace"
}

// FormatPrice renders a menu price in rupees, dropping zero paise.
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return fmt.Sprintf("₹%.0f", price)
	}
	return fmt.Sprintf("₹%.2f", price)
}
