package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/menu"
)

// QueryValue reads key from the request query, falling back to the page URL
// HTMX reports in HX-Current-URL when the key is absent. A key present with an
// empty value does not fall back.
func QueryValue(r *http.Request, key string) string {
	query := r.URL.Query()
	if query.Has(key) {
		return strings.TrimSpace(query.Get(key))
	}

	currentURL := strings.TrimSpace(r.Header.Get("HX-Current-URL"))
	if currentURL == "" {
		return ""
	}

	parsed, err := url.Parse(currentURL)
	if err != nil {
		log.Ctx(r.Context()).
			Debug().
			Err(err).
			Str("hx_current_url", currentURL).
			Msg("Failed to parse HX-Current-URL")
		return ""
	}

	return strings.TrimSpace(parsed.Query().Get(key))
}

// MenuOptions returns the storefront filter and sort for r. Unknown values
// fall back to no filter and relevance order.
func MenuOptions(r *http.Request) (menu.Filter, menu.Sort) {
	return menu.ParseFilter(QueryValue(r, "filter")), menu.ParseSort(QueryValue(r, "sort"))
}
