// internal/api/foods/handlers.go
package foods

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/api/apiutil"
	"github.com/codr1/qlick/internal/api/htmx"
	"github.com/codr1/qlick/internal/metrics"
	"github.com/codr1/qlick/internal/models"
)

const foodQueryTimeout = 5 * time.Second

var (
	queries     models.FoodQueries
	queriesOnce sync.Once
)

type addFoodRequest struct {
	Name  string                 `json:"name"`
	Price apiutil.FlexibleNumber `json:"price"`
	Image string                 `json:"image"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q models.FoodQueries) {
	if q == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = q
	})
}

// GET /foods
func HandleFoodsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), foodQueryTimeout)
	defer cancel()

	foods, err := models.ListFoods(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list foods")
		http.Error(w, "Failed to load foods", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, foods); err != nil {
		logger.Error().Err(err).Msg("Failed to write foods response")
	}
}

// POST /add-food
func HandleFoodCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	food, err := decodeAddFoodRequest(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), foodQueryTimeout)
	defer cancel()

	created, err := models.CreateFood(ctx, q, food)
	if err != nil {
		if errors.Is(err, models.ErrPersistence) {
			logger.Error().Err(err).Str("name", food.Name).Msg("Failed to create food")
			writeError(w, r, http.StatusInternalServerError, "Failed to add food")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	metrics.FoodsCreatedTotal.Inc()
	logger.Info().Int64("food_id", created.ID).Str("name", created.Name).Msg("Food added")

	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, "Food Added!")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, created); err != nil {
		logger.Error().Err(err).Int64("food_id", created.ID).Msg("Failed to write food create response")
	}
}

func decodeAddFoodRequest(r *http.Request) (models.Food, error) {
	var req addFoodRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return models.Food{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return models.Food{}, err
		}
		req = addFoodRequest{
			Name:  apiutil.FirstNonEmpty(r.FormValue("name")),
			Price: apiutil.FlexibleNumber(apiutil.FirstNonEmpty(r.FormValue("price"))),
			Image: apiutil.FirstNonEmpty(r.FormValue("image")),
		}
	}

	price, err := apiutil.ParsePriceField(req.Price.String(), "price")
	if err != nil {
		return models.Food{}, err
	}
	return models.Food{
		Name:  req.Name,
		Price: price,
		Image: req.Image,
	}, nil
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, status, message)
		return
	}
	http.Error(w, message, status)
}

func loadQueries() models.FoodQueries {
	return queries
}
