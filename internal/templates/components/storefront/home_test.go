package storefront

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/presentation"
)

func render(t *testing.T, data HomeData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := HomePage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func sampleListings() []menu.Listing {
	return []menu.Listing{
		{Food: models.Food{ID: 1, Name: "Pizza", Price: 15, Image: "https://example.com/pizza.jpg"}, Rating: 4.2, Distance: 25, Discount: 20, OrderCount: 300},
	}
}

func TestHomePageTricolorOnlyForIndependence(t *testing.T) {
	independence := &models.ThemeConfig{Name: presentation.TricolorThemeName, Text: "#1A1A1A"}
	body := render(t, HomeData{Theme: independence, Listings: sampleListings()})
	for _, want := range []string{
		`<span style="color:#FF9933">Pizz</span>`,
		`<span style="color:#FFFFFF">a Pa</span>`,
		`<span style="color:#138808">lace</span>`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %s", want)
		}
	}

	diwali := &models.ThemeConfig{Name: "Diwali", Text: "#3E2723"}
	body = render(t, HomeData{Theme: diwali, Listings: sampleListings()})
	if !strings.Contains(body, `<span style="color:#3E2723">Pizza Palace</span>`) {
		t.Fatal("Diwali page should render the restaurant name as one plain segment")
	}
}

func TestHomePageStickerAndBanners(t *testing.T) {
	theme := &models.ThemeConfig{Name: "Diwali", Sticker: "https://example.com/diya.png", BannerImage: "https://example.com/diwali.jpg"}
	body := render(t, HomeData{Theme: theme})
	if got := strings.Count(body, `class="sticker"`); got != len(presentation.Categories) {
		t.Fatalf("sticker count = %d, want %d", got, len(presentation.Categories))
	}
	if got := strings.Count(body, `class="banner card"`); got != len(presentation.DefaultBanners)+1 {
		t.Fatalf("banner count = %d, want %d", got, len(presentation.DefaultBanners)+1)
	}
	if !strings.Contains(body, "No dishes match right now.") {
		t.Fatal("empty listings message missing")
	}

	plain := render(t, HomeData{Theme: &models.ThemeConfig{Name: "Default"}})
	if strings.Contains(plain, `class="sticker"`) {
		t.Fatal("sticker rendered for theme without one")
	}
}

func TestFilterURLTogglesAndResetsSort(t *testing.T) {
	data := HomeData{Filter: menu.FilterOffers, Sort: menu.SortPriceHigh}
	if got := data.FilterURL(menu.FilterOffers); got != "/?filter=&sort=price_htl" {
		t.Fatalf("FilterURL(active) = %q", got)
	}
	if got := data.FilterURL(menu.FilterNearest); got != "/?filter=Nearest&sort=relevance" {
		t.Fatalf("FilterURL(Nearest) = %q", got)
	}
	if got := (HomeData{}).SortURL(menu.SortRelevance); got != "/?filter=&sort=relevance" {
		t.Fatalf("SortURL(relevance) = %q", got)
	}
}
