package entity

import (
	"gorm.io/gorm"
)

// Menu is a cook's container for food items. It is created lazily the
// first time the cook adds an item; current flows never create a second
// one per cook, though the schema permits it.
type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	CookID uint `json:"cookId"`
	Cook   User `json:"-"`

	FoodItems []FoodItem `json:"foodItems,omitempty"`
}
