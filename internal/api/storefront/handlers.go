// internal/api/storefront/handlers.go
package storefront

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/api/apiutil"
	"github.com/codr1/qlick/internal/api/htmx"
	"github.com/codr1/qlick/internal/menu"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/request"
	storefronttempl "github.com/codr1/qlick/internal/templates/components/storefront"
	"github.com/codr1/qlick/internal/templates/layouts"
	"github.com/codr1/qlick/internal/themeprovider"
)

const menuQueryTimeout = 5 * time.Second

var (
	queries     models.FoodQueries
	provider    *themeprovider.Provider
	enrichSeed  int64
	handlerOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
// Listing attributes are derived from seed so they stay put between page
// loads of the same process.
func InitHandlers(q models.FoodQueries, p *themeprovider.Provider, seed int64) {
	if q == nil || p == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = q
		provider = p
		enrichSeed = seed
	})
}

// GET /{$}
func HandleHomePage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil || provider == nil {
		logger.Error().Msg("Storefront handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	filter, order := request.MenuOptions(r)

	ctx, cancel := context.WithTimeout(r.Context(), menuQueryTimeout)
	defer cancel()

	foods, err := models.ListFoods(ctx, queries)
	if err != nil {
		// The page still renders; the list is simply empty.
		logger.Warn().Err(err).Msg("Failed to load menu")
		foods = nil
	}

	listings := menu.Enrich(foods, rand.New(rand.NewSource(enrichSeed)))
	data := storefronttempl.HomeData{
		Theme:    provider.Ready(r.Context()),
		Listings: menu.Apply(listings, filter, order),
		Filter:   filter,
		Sort:     order,
	}

	if htmx.IsRequest(r) {
		apiutil.RenderHTMLComponent(r.Context(), w, storefronttempl.Listings(data), nil, "Failed to render menu listings", "Failed to render menu")
		return
	}

	page := layouts.Base(storefronttempl.HomePage(data), data.Theme, "Qlick")
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render storefront", "Failed to render page")
}
