// internal/models/food_store.go
package models

import (
	"context"
	"fmt"
	"strings"

	dbgen "github.com/codr1/qlick/internal/db/generated"
)

type FoodQueries interface {
	CreateFood(ctx context.Context, arg dbgen.CreateFoodParams) (dbgen.Food, error)
	ListFoods(ctx context.Context) ([]dbgen.Food, error)
}

func ListFoods(ctx context.Context, q FoodQueries) ([]Food, error) {
	rows, err := q.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w: %w", ErrPersistence, err)
	}
	foods := make([]Food, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, FoodFromDB(row))
	}
	return foods, nil
}

// CreateFood validates and persists a menu item.
func CreateFood(ctx context.Context, q FoodQueries, food Food) (Food, error) {
	if err := food.Validate(); err != nil {
		return Food{}, err
	}
	row, err := q.CreateFood(ctx, dbgen.CreateFoodParams{
		Name:  strings.TrimSpace(food.Name),
		Price: food.Price,
		Image: strings.TrimSpace(food.Image),
	})
	if err != nil {
		return Food{}, fmt.Errorf("create food: %w: %w", ErrPersistence, err)
	}
	return FoodFromDB(row), nil
}

func FoodFromDB(row dbgen.Food) Food {
	return Food{
		ID:    row.ID,
		Name:  row.Name,
		Price: row.Price,
		Image: row.Image,
	}
}
