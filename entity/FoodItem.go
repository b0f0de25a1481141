package entity

import (
	"time"

	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents; always > 0

	Available bool `json:"available"`

	// Optional availability window; both set or both unset.
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	Servings     int `json:"servings"`     // total offered, >= 1
	ServingsSold int `json:"servingsSold"` // cumulative, starts at 0

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	CookID uint `json:"cookId"`
	Cook   User `json:"-"`

	Images     []Image     `json:"images,omitempty"`
	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}

// Remaining servings still offerable.
func (f *FoodItem) Remaining() int {
	return f.Servings - f.ServingsSold
}
