// internal/models/foods.go
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxFoodNameLength = 200

// Food is a menu item as stored by the backend.
type Food struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (f Food) Validate() error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if !utf8.ValidString(f.Name) {
		return fmt.Errorf("name must be valid UTF-8")
	}
	if len(name) > maxFoodNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxFoodNameLength)
	}
	if f.Price < 0 {
		return fmt.Errorf("price must be 0 or greater")
	}
	if strings.TrimSpace(f.Image) == "" {
		return fmt.Errorf("image is required")
	}
	if !utf8.ValidString(f.Image) {
		return fmt.Errorf("image must be valid UTF-8")
	}
	return nil
}
