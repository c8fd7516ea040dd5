// internal/db/seed.go
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	dbgen "github.com/codr1/qlick/internal/db/generated"
)

// demoMenu backs fresh development databases so the storefront has something
// to render before an admin adds items.
var demoMenu = []dbgen.CreateFoodParams{
	{Name: "Burger", Price: 12, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=999&auto=format&fit=crop"},
	{Name: "Pizza", Price: 15, Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=1000&auto=format&fit=crop"},
	{Name: "Sushi", Price: 22, Image: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=1000&auto=format&fit=crop"},
	{Name: "Biryani", Price: 18, Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=500&q=80"},
	{Name: "Cake", Price: 8, Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&q=80"},
}

// SeedDemoMenu inserts the demo menu when the foods table is empty. It returns
// the number of rows inserted.
func (db *DB) SeedDemoMenu(ctx context.Context) (int, error) {
	inserted := 0
	err := db.RunInTx(ctx, func(tx *DB) error {
		count, err := tx.Queries.CountFoods(ctx)
		if err != nil {
			return fmt.Errorf("count foods: %w", err)
		}
		if count > 0 {
			log.Debug().Int64("foods", count).Msg("Demo menu seed skipped")
			return nil
		}
		for _, item := range demoMenu {
			if _, err := tx.Queries.CreateFood(ctx, item); err != nil {
				return fmt.Errorf("insert demo food %q: %w", item.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		log.Info().Int("foods", inserted).Msg("Seeded demo menu")
	}
	return inserted, nil
}
