// internal/menu/menu.go
package menu

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/codr1/qlick/internal/models"
)

// Listing is a menu item decorated with the demo storefront attributes.
type Listing struct {
	models.Food
	Rating     float64 `json:"rating"`
	Distance   int     `json:"distance"`
	Discount   int     `json:"discount"`
	OrderCount int     `json:"orderCount"`
}

type Filter string

const (
	FilterNone    Filter = ""
	FilterNearest Filter = "Nearest"
	FilterRating  Filter = "Rating"
	FilterOffers  Filter = "Offers"
)

var Filters = []Filter{FilterNearest, FilterRating, FilterOffers}

type Sort string

const (
	SortRelevance Sort = "relevance"
	SortRating    Sort = "rating"
	SortTime      Sort = "time"
	SortPriceLow  Sort = "price_lth"
	SortPriceHigh Sort = "price_htl"
)

var Sorts = []Sort{SortRelevance, SortRating, SortTime, SortPriceLow, SortPriceHigh}

func ParseFilter(raw string) Filter {
	for _, f := range Filters {
		if strings.EqualFold(raw, string(f)) {
			return f
		}
	}
	return FilterNone
}

func ParseSort(raw string) Sort {
	for _, s := range Sorts {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}
	return SortRelevance
}

func (s Sort) Label() string {
	switch s {
	case SortRating:
		return "Rating: High to Low"
	case SortTime:
		return "Delivery Time"
	case SortPriceLow:
		return "Cost: Low to High"
	case SortPriceHigh:
		return "Cost: High to Low"
	default:
		return "Relevance"
	}
}

// Enrich attaches random rating, delivery time, discount and order count to
// each food. Ratings fall in [3.5, 5.0] with one decimal, distance in 15-59
// minutes, discount is 0 or 10-59 percent, and order count 100-2099.
func Enrich(foods []models.Food, rng *rand.Rand) []Listing {
	listings := make([]Listing, 0, len(foods))
	for _, food := range foods {
		discount := 0
		if rng.Float64() > 0.5 {
			discount = rng.Intn(50) + 10
		}
		listings = append(listings, Listing{
			Food:       food,
			Rating:     math.Round((rng.Float64()*1.5+3.5)*10) / 10,
			Distance:   rng.Intn(45) + 15,
			Discount:   discount,
			OrderCount: rng.Intn(2000) + 100,
		})
	}
	return listings
}

// Apply returns a filtered and sorted copy of listings. The Nearest filter
// orders by delivery time; a non-relevance sort is applied after it. Sorting
// is stable so relevance keeps the incoming order.
func Apply(listings []Listing, filter Filter, order Sort) []Listing {
	result := make([]Listing, 0, len(listings))
	for _, listing := range listings {
		switch filter {
		case FilterRating:
			if listing.Rating < 4.0 {
				continue
			}
		case FilterOffers:
			if listing.Discount <= 0 {
				continue
			}
		}
		result = append(result, listing)
	}

	if filter == FilterNearest {
		sort.SliceStable(result, func(i, j int) bool { return result[i].Distance < result[j].Distance })
	}

	switch order {
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortTime:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Distance < result[j].Distance })
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}
	return result
}
