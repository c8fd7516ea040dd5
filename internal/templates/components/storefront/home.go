package storefront

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/presentation"
)

func HomePage(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sections := []string{
			`<main class="storefront" style="max-width:960px;margin:0 auto;padding:16px">`,
			buildHeaderHTML(),
			buildBannerCarouselHTML(data.Theme),
			buildCategoriesHTML(data.Theme),
			`<div id="menu-listings">`,
			buildFilterBarHTML(data),
			buildListingsHTML(data),
			`</div></main>`,
		}
		for _, section := range sections {
			if _, err := io.WriteString(w, section); err != nil {
				return err
			}
		}
		return nil
	})
}

// Listings renders only the swappable area (filter chips and listings) for
// HTMX requests.
func Listings(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildFilterBarHTML(data)+buildListingsHTML(data))
		return err
	})
}

func buildHeaderHTML() string {
	return `<header style="display:flex;justify-content:space-between;align-items:center;margin-bottom:16px">` +
		`<div><div style="font-weight:700">Home</div><div class="subtext">Block 4, Cyber City, Gurugram</div></div>` +
		`<a href="/admin" class="chip">Admin</a></header>`
}

func buildBannerCarouselHTML(theme *models.ThemeConfig) string {
	banners := presentation.Banners(theme)
	var builder strings.Builder
	builder.WriteString(`<section class="banners" style="display:flex;gap:12px;overflow-x:auto;margin-bottom:8px">`)
	for i, banner := range banners {
		builder.WriteString(fmt.Sprintf(
			`<img class="banner card" src="%s" alt="Banner %d" style="width:90%%;flex:none;height:160px;object-fit:cover"/>`,
			html.EscapeString(banner),
			i+1,
		))
	}
	builder.WriteString(`</section><div class="pagination" style="text-align:center">`)
	for i := range banners {
		class := "dot"
		if i == 0 {
			class = "dot dot-active accent"
		}
		builder.WriteString(fmt.Sprintf(`<span class="%s">&#9679;</span>`, class))
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func buildCategoriesHTML(theme *models.ThemeConfig) string {
	sticker, hasSticker := presentation.Sticker(theme)

	var builder strings.Builder
	builder.WriteString(`<section class="categories"><h2>Eat what makes you happy</h2><div style="display:flex;gap:16px;overflow-x:auto">`)
	for _, category := range presentation.Categories {
		builder.WriteString(`<div class="category" style="text-align:center;position:relative">`)
		builder.WriteString(fmt.Sprintf(
			`<img src="%s" alt="%s" style="width:72px;height:72px;border-radius:36px;object-fit:cover"/>`,
			html.EscapeString(category.Image),
			html.EscapeString(category.Name),
		))
		if hasSticker {
			builder.WriteString(fmt.Sprintf(
				`<img class="sticker" src="%s" alt="" style="position:absolute;top:0;right:0;width:24px;height:24px"/>`,
				html.EscapeString(sticker),
			))
		}
		builder.WriteString(fmt.Sprintf(`<div>%s</div></div>`, html.EscapeString(category.Name)))
	}
	builder.WriteString(`</div></section>`)
	return builder.String()
}

func buildFilterBarHTML(data HomeData) string {
	var builder strings.Builder
	builder.WriteString(`<nav class="filters" style="display:flex;gap:8px;flex-wrap:wrap;margin:16px 0">`)
	for _, order := range menu.Sorts {
		builder.WriteString(chipHTML(data.SortURL(order), order.Label(), data.Sort == order))
	}
	for _, filter := range menu.Filters {
		builder.WriteString(chipHTML(data.FilterURL(filter), string(filter), data.Filter == filter))
	}
	builder.WriteString(`</nav>`)
	return builder.String()
}

func chipHTML(href, label string, active bool) string {
	class := "chip"
	if active {
		class = "chip chip-active"
	}
	return fmt.Sprintf(
		`<a class="%s" href="%s" hx-get="%s" hx-target="#menu-listings" hx-push-url="true">%s</a>`,
		class,
		html.EscapeString(href),
		html.EscapeString(href),
		html.EscapeString(label),
	)
}

func buildListingsHTML(data HomeData) string {
	if len(data.Listings) == 0 {
		return `<div class="card subtext" style="padding:24px;text-align:center">No dishes match right now.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<section><h2>Recommended for you</h2><div style="display:flex;gap:12px;overflow-x:auto">`)
	for _, listing := range data.Recommended() {
		builder.WriteString(buildRecommendedCardHTML(listing))
	}
	builder.WriteString(`</div></section><section><h2>All restaurants</h2>`)
	for _, listing := range data.Listings {
		builder.WriteString(buildRestaurantCardHTML(data.Theme, listing))
	}
	builder.WriteString(`</section>`)
	return builder.String()
}

func buildRecommendedCardHTML(listing menu.Listing) string {
	return fmt.Sprintf(
		`<article class="card recommended" style="width:220px;flex:none;overflow:hidden">`+
			`<img src="%s" alt="%s" style="width:100%%;height:120px;object-fit:cover"/>`+
			`<div style="padding:8px"><strong>%s</strong> <span class="accent">%.1f&#9733;</span>`+
			`<div class="subtext">%s &middot; %d mins</div>%s`+
			`<div class="subtext">%d orders</div>`+
			`<button class="btn-primary" hx-post="/order" hx-vals='{"foodId": %d}' hx-target="closest article" hx-swap="beforeend">ADD +</button>`+
			`</div></article>`,
		html.EscapeString(listing.Image),
		html.EscapeString(listing.Name),
		html.EscapeString(listing.Name),
		listing.Rating,
		presentation.FormatPrice(listing.Price),
		listing.Distance,
		discountHTML(listing.Discount),
		listing.OrderCount,
		listing.ID,
	)
}

func buildRestaurantCardHTML(theme *models.ThemeConfig, listing menu.Listing) string {
	return fmt.Sprintf(
		`<article class="card restaurant" style="margin-bottom:16px;overflow:hidden">`+
			`<img src="%s" alt="%s" style="width:100%%;height:180px;object-fit:cover"/>`+
			`<div style="padding:12px"><h3 style="margin:0">%s</h3>`+
			`<div class="subtext">North Indian &middot; Chinese &middot; %s &middot; %d mins &middot; %.1f&#9733;</div>%s`+
			`</div></article>`,
		html.EscapeString(listing.Image),
		html.EscapeString(listing.Name),
		SegmentsHTML(presentation.TextSegments(theme, presentation.RestaurantName(listing.Name))),
		presentation.FormatPrice(listing.Price),
		listing.Distance,
		listing.Rating,
		discountHTML(listing.Discount),
	)
}

func discountHTML(discount int) string {
	if discount <= 0 {
		return ""
	}
	return fmt.Sprintf(`<div class="accent">%d%% OFF</div>`, discount)
}

// SegmentsHTML renders colored text runs as adjacent spans.
func SegmentsHTML(segments []presentation.Segment) string {
	var builder strings.Builder
	for _, segment := range segments {
		if segment.Color == "" {
			builder.WriteString(fmt.Sprintf(`<span>%s</span>`, html.EscapeString(segment.Text)))
			continue
		}
		builder.WriteString(fmt.Sprintf(
			`<span style="color:%s">%s</span>`,
			html.EscapeString(segment.Color),
			html.EscapeString(segment.Text),
		))
	}
	return builder.String()
}
