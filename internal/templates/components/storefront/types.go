package storefront

import (
	"net/url"

	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
)

type HomeData struct {
	Theme    *models.ThemeConfig
	Listings []menu.Listing
	Filter   menu.Filter
	Sort     menu.Sort
}

// Recommended is the horizontal strip above the full list.
func (d HomeData) Recommended() []menu.Listing {
	const maxRecommended = 5
	if len(d.Listings) <= maxRecommended {
		return d.Listings
	}
	return d.Listings[:maxRecommended]
}

// FilterURL toggles filter off when it is already active.
func (d HomeData) FilterURL(filter menu.Filter) string {
	next := filter
	if d.Filter == filter {
		next = menu.FilterNone
	}
	order := d.Sort
	if next == menu.FilterNearest {
		order = menu.SortRelevance
	}
	return homeURL(next, order)
}

func (d HomeData) SortURL(order menu.Sort) string {
	return homeURL(d.Filter, order)
}

// homeURL always carries both keys so an HTMX swap never inherits a stale
// value from HX-Current-URL.
func homeURL(filter menu.Filter, order menu.Sort) string {
	values := url.Values{}
	values.Set("filter", string(filter))
	values.Set("sort", string(order))
	return "/?" + values.Encode()
}
