// internal/api/orders/handlers.go
package orders

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/api/apiutil"
	"github.com/codr1/qlick/internal/api/htmx"
)

// OrderSuccessMessage is returned for every accepted order. Orders are not
// persisted.
const OrderSuccessMessage = "Order Success"

type orderRequest struct {
	FoodID apiutil.FlexibleNumber `json:"foodId"`
}

type orderResponse struct {
	Message string `json:"message"`
}

// POST /order
//
// Every order that arrives in a readable body is acknowledged. A missing or
// unusable foodId is logged but does not fail the request.
func HandleOrder(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	raw, err := decodeOrderRequest(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	foodID, err := apiutil.ParsePositiveInt64Field(raw, "foodId")
	if err != nil {
		logger.Warn().Err(err).Str("food_id", raw).Msg("Order received without a usable food ID")
	} else {
		logger.Info().Int64("food_id", foodID).Msg("Order received")
	}

	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, http.StatusOK, OrderSuccessMessage)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, orderResponse{Message: OrderSuccessMessage}); err != nil {
		logger.Error().Err(err).Str("food_id", raw).Msg("Failed to write order response")
	}
}

func decodeOrderRequest(r *http.Request) (string, error) {
	var req orderRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return "", err
		}
		return req.FoodID.String(), nil
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return apiutil.FirstNonEmpty(r.FormValue("foodId"), r.FormValue("food_id")), nil
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, status, message)
		return
	}
	http.Error(w, message, status)
}
